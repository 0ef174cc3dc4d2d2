package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/riskibarqy/club-manager/internal/domain/user"
	"github.com/riskibarqy/club-manager/internal/platform/logging"
	"golang.org/x/crypto/bcrypt"
)

var (
	decoyHashOnce sync.Once
	decoyHash     []byte
)

// decoy keeps the unknown-username path as slow as a real hash comparison.
func decoy() []byte {
	decoyHashOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("club-manager-decoy"), bcrypt.DefaultCost)
	})
	return decoyHash
}

type AuthService struct {
	userRepo user.Repository
	logger   *logging.Logger
}

func NewAuthService(userRepo user.Repository, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{userRepo: userRepo, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService", "Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return user.User{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	account, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return user.User{}, classifyStoreError(err, "get user")
	}

	hash := decoy()
	if exists {
		hash = []byte(account.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !exists {
		s.logger.WarnContext(ctx, "login rejected", "username", username)
		return user.User{}, fmt.Errorf("%w: invalid username or password", ErrUnauthorized)
	}

	account.PasswordHash = ""
	return account, nil
}
