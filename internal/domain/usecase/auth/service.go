package auth

import (
	"context"
	"errors"
	"time"

	"github.com/corepay/payroll-ledger/internal/domain/entity"
	errs "github.com/corepay/payroll-ledger/internal/domain/error"
	coreport "github.com/corepay/payroll-ledger/internal/domain/port/core"
	"github.com/corepay/payroll-ledger/internal/domain/port/persistence"
)

// Service is the identity collaborator: it verifies credentials and issues
// tokens carrying a principal. The ledger core trusts the principal and never
// sees credentials.
type Service struct {
	userRepo     persistence.UserRepository
	hasher       coreport.PasswordHasher
	tokens       coreport.TokenIssuer
	tokenTTL     time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates an auth service
func NewService(
	userRepo persistence.UserRepository,
	hasher coreport.PasswordHasher,
	tokens coreport.TokenIssuer,
	tokenTTL time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		userRepo:     userRepo,
		hasher:       hasher,
		tokens:       tokens,
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Login verifies credentials and returns a signed token with its principal.
// Unknown emails and wrong passwords both map to ErrInvalidCredentials so the
// response doesn't leak which one failed.
func (s *Service) Login(ctx context.Context, email, password string) (string, entity.Principal, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return "", entity.Principal{}, errs.ErrInvalidCredentials
		}
		return "", entity.Principal{}, err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("Login rejected, bad password", map[string]any{
			"email": email,
		})
		return "", entity.Principal{}, errs.ErrInvalidCredentials
	}

	principal := entity.Principal{Email: user.Email, Role: user.Role}
	token, err := s.tokens.Issue(principal, s.tokenTTL)
	if err != nil {
		return "", entity.Principal{}, err
	}

	return token, principal, nil
}

// Register creates a new user with a hashed password
func (s *Service) Register(ctx context.Context, email, password, role string) (*entity.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(email, hash, role, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"email": user.Email,
		"role":  user.Role,
	})
	return user, nil
}

// EnsureAdmin seeds the admin user at startup when it doesn't exist yet
func (s *Service) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	if _, err := s.Register(ctx, email, password, entity.RoleAdmin); err != nil {
		// A concurrent boot may have won the insert
		if errors.Is(err, errs.ErrDuplicateUser) {
			return nil
		}
		return err
	}
	return nil
}
