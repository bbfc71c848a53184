package query

import (
	"context"

	"github.com/tair/starwars-api/internal/people/domain"
)

// GetPersonQuery represents the query to get a character by ID
type GetPersonQuery struct {
	ID uint
}

// GetPersonHandler handles get person query
type GetPersonHandler struct {
	repo domain.PeopleRepository
}

// NewGetPersonHandler creates a new get person handler
func NewGetPersonHandler(repo domain.PeopleRepository) *GetPersonHandler {
	return &GetPersonHandler{repo: repo}
}

// Handle executes the get person query
func (h *GetPersonHandler) Handle(ctx context.Context, q GetPersonQuery) (*domain.People, error) {
	return h.repo.FindByID(ctx, q.ID)
}
