package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/club-manager/internal/domain/user"
	usermock "github.com/riskibarqy/club-manager/internal/mocks/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	account := user.User{ID: 1, Username: "admin", PasswordHash: string(hash), Role: user.RoleAdmin}

	t.Run("valid credentials", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		repo.On("GetByUsername", mock.Anything, "admin").Return(account, true, nil).Once()

		got, err := NewAuthService(repo, logging.NewNop()).Login(context.Background(), " admin ", "admin123")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if got.ID != 1 || got.Role != user.RoleAdmin {
			t.Fatalf("unexpected user: %+v", got)
		}
		if got.PasswordHash != "" {
			t.Fatalf("password hash must not leave the service")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		repo.On("GetByUsername", mock.Anything, "admin").Return(account, true, nil).Once()

		_, err := NewAuthService(repo, logging.NewNop()).Login(context.Background(), "admin", "nope")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := usermock.NewRepository(t)
		repo.On("GetByUsername", mock.Anything, "ghost").Return(user.User{}, false, nil).Once()

		_, err := NewAuthService(repo, logging.NewNop()).Login(context.Background(), "ghost", "admin123")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := NewAuthService(usermock.NewRepository(t), logging.NewNop()).Login(context.Background(), "", "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
