package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/starwars-api/internal/user/domain"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Username string
	Email    string
	Password string
}

// CreateUserHandler handles user creation
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, domain.ErrUsernameRequired
	}
	if cmd.Email == "" {
		return nil, domain.ErrEmailRequired
	}
	if cmd.Password == "" {
		return nil, domain.ErrPasswordRequired
	}

	if _, err := h.repo.FindByUsername(ctx, cmd.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := h.repo.FindByEmail(ctx, cmd.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	user := &domain.User{
		Username: cmd.Username,
		Email:    cmd.Email,
		Password: cmd.Password,
		IsActive: true,
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
