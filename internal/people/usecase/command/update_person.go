package command

import (
	"context"

	"github.com/tair/starwars-api/internal/people/domain"
)

// UpdatePersonCommand represents a partial update: nil fields keep their
// previous value. Name uniqueness is deliberately not pre-checked on update;
// the unique index still rejects a collision at the storage layer.
type UpdatePersonCommand struct {
	ID        uint
	Name      *string
	Height    *string
	Mass      *string
	HairColor *string
	EyeColor  *string
	BirthYear *string
	Gender    *string
}

// UpdatePersonHandler handles partial character updates
type UpdatePersonHandler struct {
	repo domain.PeopleRepository
}

// NewUpdatePersonHandler creates a new update person handler
func NewUpdatePersonHandler(repo domain.PeopleRepository) *UpdatePersonHandler {
	return &UpdatePersonHandler{repo: repo}
}

// Handle executes the update person command
func (h *UpdatePersonHandler) Handle(ctx context.Context, cmd UpdatePersonCommand) (*domain.People, error) {
	person, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		person.Name = *cmd.Name
	}
	if cmd.Height != nil {
		person.Height = cmd.Height
	}
	if cmd.Mass != nil {
		person.Mass = cmd.Mass
	}
	if cmd.HairColor != nil {
		person.HairColor = cmd.HairColor
	}
	if cmd.EyeColor != nil {
		person.EyeColor = cmd.EyeColor
	}
	if cmd.Gender != nil {
		person.Gender = cmd.Gender
	}
	if cmd.BirthYear != nil {
		person.BirthYear = cmd.BirthYear
	}

	if err := h.repo.Update(ctx, person); err != nil {
		return nil, err
	}

	return person, nil
}
