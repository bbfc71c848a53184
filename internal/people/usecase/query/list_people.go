package query

import (
	"context"

	"github.com/tair/starwars-api/internal/people/domain"
)

// ListPeopleQuery represents the query to list all characters
type ListPeopleQuery struct{}

// ListPeopleHandler handles list people query
type ListPeopleHandler struct {
	repo domain.PeopleRepository
}

// NewListPeopleHandler creates a new list people handler
func NewListPeopleHandler(repo domain.PeopleRepository) *ListPeopleHandler {
	return &ListPeopleHandler{repo: repo}
}

// Handle executes the list people query
func (h *ListPeopleHandler) Handle(ctx context.Context, _ ListPeopleQuery) ([]domain.People, error) {
	return h.repo.FindAll(ctx)
}
