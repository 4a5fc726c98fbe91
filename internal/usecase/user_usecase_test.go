package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/iho/networth/internal/domain"
	"github.com/iho/networth/internal/usecase"
	"github.com/iho/networth/internal/usecase/mocks"
)

func TestUserUseCase_CreateUser(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateUserInput
		expectError bool
	}{
		{
			name: "successful creation",
			input: usecase.CreateUserInput{
				Email:    "alice@example.com",
				Name:     "Alice",
				Password: "s3cret-pass",
				Role:     domain.RoleUser,
			},
		},
		{
			name: "invalid email",
			input: usecase.CreateUserInput{
				Email:    "not-an-email",
				Password: "s3cret-pass",
				Role:     domain.RoleUser,
			},
			expectError: true,
		},
		{
			name: "weak password",
			input: usecase.CreateUserInput{
				Email:    "bob@example.com",
				Password: "short",
				Role:     domain.RoleUser,
			},
			expectError: true,
		},
		{
			name: "invalid role",
			input: usecase.CreateUserInput{
				Email:    "carol@example.com",
				Password: "s3cret-pass",
				Role:     domain.Role("superuser"),
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockUserRepository()
			uc := usecase.NewUserUseCase(repo, mocks.NewSequentialIDGenerator("user"))

			user, err := uc.CreateUser(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.HashedPassword != "" {
				t.Error("hashed password must not leak out of the use case")
			}
			if !user.Active {
				t.Error("expected new user active")
			}

			stored, err := repo.GetByID(context.Background(), user.ID)
			if err != nil {
				t.Fatalf("expected user stored: %v", err)
			}
			if stored.Email != tt.input.Email {
				t.Errorf("expected email %q, got %q", tt.input.Email, stored.Email)
			}
		})
	}
}

func TestUserUseCase_CreateUserDuplicateEmail(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewSequentialIDGenerator("user"))

	input := usecase.CreateUserInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleUser,
	}
	if _, err := uc.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CreateUser(context.Background(), input); err == nil {
		t.Error("expected duplicate email rejected")
	}
}

func TestUserUseCase_Authenticate(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewSequentialIDGenerator("user"))

	created, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != created.ID {
		t.Errorf("expected user %s, got %s", created.ID, user.ID)
	}
	if user.HashedPassword != "" {
		t.Error("hashed password must not leak out of authentication")
	}

	if _, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "alice@example.com",
		Password: "wrong-pass",
	}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}

	if _, err := uc.Authenticate(context.Background(), usecase.AuthenticateInput{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUserUseCase_UpdateUser(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewSequentialIDGenerator("user"))

	created, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Alice B"
	role := domain.RoleAdmin
	active := false
	updated, err := uc.UpdateUser(context.Background(), usecase.UpdateUserInput{
		ID:     created.ID,
		Name:   &name,
		Role:   &role,
		Active: &active,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Name != name || updated.Role != role || updated.Active {
		t.Errorf("unexpected user after update: %+v", updated)
	}
}

func TestUserUseCase_DeleteAndList(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewSequentialIDGenerator("user"))

	created, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	users, err := uc.ListUsers(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}

	if err := uc.DeleteUser(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	users, _ = uc.ListUsers(context.Background(), 10, 0)
	if len(users) != 0 {
		t.Errorf("expected 0 users, got %d", len(users))
	}
}
