package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/auction-marketplace/internal/core/domain"
	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.AuthRepository
	tokens   *TokenIssuer
	activity ports.ActivityRecorder
}

func NewAuthService(repo ports.AuthRepository, tokens *TokenIssuer, activity ports.ActivityRecorder) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, activity: activity}
}

// Register creates a regular (non-admin) user. Admins are provisioned directly in the database.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	createdAt := now()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", username, err)
	}

	s.activity.Record(domain.ActivityEvent{
		Action:     domain.ActionUserRegistered,
		Resource:   "user",
		ResourceID: created.ID,
		ActorID:    created.ID,
		OccurredAt: createdAt,
	})
	return created, nil
}

// Login checks the password and issues a token. An unknown username is
// reported as ErrInvalidCredentials so usernames can't be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Verify satisfies ports.TokenVerifier so the auth middleware can depend on the service.
func (s *AuthService) Verify(token string) (domain.Identity, error) {
	return s.tokens.Verify(token)
}
