// Package auth implements assessor login and account creation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/akarpov/resilience-backend/internal/domain"
)

type assessorRepo interface {
	Create(ctx context.Context, a domain.Assessor) (domain.Assessor, error)
	GetByName(ctx context.Context, name string) (domain.Assessor, error)
}

type jwtManager interface {
	GenerateAccessToken(assessorID uuid.UUID, name string) (string, error)
}

const minPasswordLength = 8

// Service provides authentication operations.
type Service struct {
	assessors assessorRepo
	jwt       jwtManager
	log       *slog.Logger
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, assessors assessorRepo, jwt jwtManager) *Service {
	return &Service{
		assessors: assessors,
		jwt:       jwt,
		log:       log.With("service", "auth"),
	}
}

// LoginResult is a successful authentication: the assessor plus a signed
// access token.
type LoginResult struct {
	Assessor domain.Assessor
	Token    string
}

// Login verifies name/password and issues an access token.
// Both an unknown name and a wrong password yield domain.ErrUnauthorized,
// never a hint which of the two failed.
func (s *Service) Login(ctx context.Context, name, password string) (LoginResult, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return LoginResult{}, domain.ErrUnauthorized
	}

	assessor, err := s.assessors.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return LoginResult{}, domain.ErrUnauthorized
		}
		return LoginResult{}, fmt.Errorf("get assessor: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(assessor.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, domain.ErrUnauthorized
	}

	token, err := s.jwt.GenerateAccessToken(assessor.ID, assessor.Name)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate token: %w", err)
	}

	s.log.InfoContext(ctx, "assessor logged in", slog.String("assessor_id", assessor.ID.String()))

	return LoginResult{Assessor: assessor, Token: token}, nil
}

// Register creates a new assessor account with a bcrypt password hash.
func (s *Service) Register(ctx context.Context, name, password string) (domain.Assessor, error) {
	var errs []domain.FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	if len(password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	}
	if len(errs) > 0 {
		return domain.Assessor{}, &domain.ValidationError{Errors: errs}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Assessor{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.assessors.Create(ctx, domain.Assessor{
		Name:         name,
		PasswordHash: string(hash),
	})
	if err != nil {
		return domain.Assessor{}, fmt.Errorf("create assessor: %w", err)
	}

	s.log.InfoContext(ctx, "assessor registered",
		slog.String("assessor_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
