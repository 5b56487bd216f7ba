package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/repository"
)

const MinPasswordLength = 6

var (
	ErrDuplicateUsername  = fmt.Errorf("%w: username already exists", repository.ErrConstraint)
	ErrDuplicateEmail     = fmt.Errorf("%w: email already exists", repository.ErrConstraint)
	ErrWeakPassword       = fmt.Errorf("%w: password must be at least %d characters", repository.ErrValidation, MinPasswordLength)
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// CredentialStore registers users and checks their passwords.
type CredentialStore struct {
	users  repository.UserRepositoryInterface
	hasher PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

func NewCredentialStore(users repository.UserRepositoryInterface, hasher PasswordHasher) *CredentialStore {
	return &CredentialStore{users: users, hasher: hasher}
}

// Register creates a user after checking that neither the username nor the
// email is taken. A username collision is reported before an email one.
func (s *CredentialStore) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", repository.ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Username == username {
			return nil, ErrDuplicateUsername
		}
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %w", repository.ErrStorage, err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns ErrInvalidCredentials for an unknown user and for a
// wrong password alike.
func (s *CredentialStore) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Spend the same bcrypt work as a real check.
		_ = s.hasher.Verify(s.dummy(), password)
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Verify(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *CredentialStore) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("tusday-dummy-password")
	})
	return s.dummyHash
}
