package httpUsecase

import (
	"context"
	"fmt"
	"strings"

	"quiz-service/domain"
)

type CreateUserUseCase interface {
	Execute(ctx context.Context, user domain.User) error
}

type createUserUseCase struct {
	repository PostgresRepository
}

func NewCreateUserUseCase(repository PostgresRepository) CreateUserUseCase {
	return &createUserUseCase{
		repository: repository,
	}
}

func (u *createUserUseCase) Execute(ctx context.Context, user domain.User) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if user.DisplayName == "" {
		user.DisplayName = user.Username
	}
	return u.repository.UpsertUser(ctx, user)
}
