package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-api/internal/people/domain"
)

// CreatePersonCommand represents the command to create a character
type CreatePersonCommand struct {
	Name      string
	Height    *string
	Mass      *string
	HairColor *string
	EyeColor  *string
	BirthYear *string
	Gender    *string
}

// CreatePersonHandler handles character creation
type CreatePersonHandler struct {
	repo domain.PeopleRepository
}

// NewCreatePersonHandler creates a new create person handler
func NewCreatePersonHandler(repo domain.PeopleRepository) *CreatePersonHandler {
	return &CreatePersonHandler{repo: repo}
}

// Handle executes the create person command. The existence pre-check keeps
// the source behavior; the unique index on name remains authoritative under
// concurrent inserts.
func (h *CreatePersonHandler) Handle(ctx context.Context, cmd CreatePersonCommand) (*domain.People, error) {
	if cmd.Name == "" {
		return nil, domain.ErrNameRequired
	}

	if _, err := h.repo.FindByName(ctx, cmd.Name); err == nil {
		return nil, domain.ErrDuplicateName
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check name: %w", err)
	}

	person := &domain.People{
		Name:      cmd.Name,
		Height:    cmd.Height,
		Mass:      cmd.Mass,
		HairColor: cmd.HairColor,
		EyeColor:  cmd.EyeColor,
		BirthYear: cmd.BirthYear,
		Gender:    cmd.Gender,
	}

	if err := h.repo.Create(ctx, person); err != nil {
		return nil, err
	}

	return person, nil
}
