// Package session tracks who is signed in and which screen is showing.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type State int

const (
	StateLogin State = iota
	StateSignup
	StateDashboard
)

func (s State) String() string {
	switch s {
	case StateSignup:
		return "signup"
	case StateDashboard:
		return "dashboard"
	}
	return "login"
}

var (
	ErrMissingFields    = fmt.Errorf("%w: please fill in all fields", repository.ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords do not match", repository.ErrValidation)
)

// Credentials is satisfied by *auth.CredentialStore.
type Credentials interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
}

// StoreFactory builds the persistent store of a signed-in user.
type StoreFactory func(userID int64) repository.Store

func GormStores(db *gorm.DB) StoreFactory {
	return func(userID int64) repository.Store {
		return repository.NewGormStore(db, userID)
	}
}

// Shell is the navigation state machine: Login <-> Signup, Login -> Dashboard
// and back on Logout. It owns the Store of the active session.
type Shell struct {
	creds  Credentials
	stores StoreFactory
	sink   notify.Sink

	state State
	user  model.User
	guest bool
	store *repository.Store
}

func NewShell(creds Credentials, stores StoreFactory, sink notify.Sink) *Shell {
	return &Shell{creds: creds, stores: stores, sink: sink}
}

func (s *Shell) State() State { return s.state }

func (s *Shell) User() model.User { return s.user }

func (s *Shell) IsGuest() bool { return s.guest }

// Store returns the active session's store. ok is false outside the
// dashboard.
func (s *Shell) Store() (store repository.Store, ok bool) {
	if s.store == nil {
		return repository.Store{}, false
	}
	return *s.store, true
}

func (s *Shell) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		notify.Error(s.sink, ErrMissingFields)
		return ErrMissingFields
	}

	user, err := s.creds.Authenticate(ctx, username, password)
	if err != nil {
		notify.Error(s.sink, err)
		return err
	}

	store := s.stores(user.ID)
	s.enter(*user, false, store)
	notify.Info(s.sink, fmt.Sprintf("Welcome back, %s!", user.Username))
	return nil
}

// ContinueAsGuest opens a dashboard backed by a fresh memory store.
func (s *Shell) ContinueAsGuest() model.User {
	guest := model.User{
		Username:   "Guest",
		Email:      "guest@example.com",
		SessionTag: uuid.NewString(),
	}
	s.enter(guest, true, repository.NewMemoryStore())
	notify.Info(s.sink, "Guest mode: nothing will be saved")
	return guest
}

// Signup registers an account and returns to the login screen.
func (s *Shell) Signup(ctx context.Context, username, email, password, confirm string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" || confirm == "" {
		notify.Error(s.sink, ErrMissingFields)
		return ErrMissingFields
	}
	if password != confirm {
		notify.Error(s.sink, ErrPasswordMismatch)
		return ErrPasswordMismatch
	}

	if _, err := s.creds.Register(ctx, username, email, password); err != nil {
		notify.Error(s.sink, err)
		return err
	}
	s.state = StateLogin
	notify.Info(s.sink, "Account created successfully! Please login.")
	return nil
}

func (s *Shell) ShowSignup() {
	if s.state == StateLogin {
		s.state = StateSignup
	}
}

func (s *Shell) ShowLogin() {
	if s.state == StateSignup {
		s.state = StateLogin
	}
}

// Logout drops the session store. For a guest that is all of their data.
func (s *Shell) Logout() {
	s.state = StateLogin
	s.user = model.User{}
	s.guest = false
	s.store = nil
}

func (s *Shell) enter(user model.User, guest bool, store repository.Store) {
	s.state = StateDashboard
	s.user = user
	s.guest = guest
	s.store = &store
}
