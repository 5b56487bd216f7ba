package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Thiccblique/Tusday.com/internal/auth"
	"github.com/Thiccblique/Tusday.com/internal/database"
	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"
	"github.com/Thiccblique/Tusday.com/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type MockCredentials struct {
	mock.Mock
}

func (m *MockCredentials) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	args := m.Called(ctx, username, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockCredentials) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func memoryStores(calls *[]int64) session.StoreFactory {
	return func(userID int64) repository.Store {
		*calls = append(*calls, userID)
		return repository.NewMemoryStore()
	}
}

func TestShell_StartsOnLogin(t *testing.T) {
	shell := session.NewShell(new(MockCredentials), nil, notify.Discard)

	assert.Equal(t, session.StateLogin, shell.State())
	_, ok := shell.Store()
	assert.False(t, ok)
}

func TestShell_LoginRequiresBothFields(t *testing.T) {
	creds := new(MockCredentials)
	rec := &notify.Recorder{}
	shell := session.NewShell(creds, nil, rec)

	err := shell.Login(context.Background(), "  ", "secret1")

	assert.ErrorIs(t, err, repository.ErrValidation)
	assert.Equal(t, session.StateLogin, shell.State())
	assert.Equal(t, "Please fill in all fields", rec.Last().Text)
	creds.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
}

func TestShell_LoginFailureStaysOnLogin(t *testing.T) {
	ctx := context.Background()
	creds := new(MockCredentials)
	creds.On("Authenticate", ctx, "alice", "wrong").Return(nil, auth.ErrInvalidCredentials)
	rec := &notify.Recorder{}
	shell := session.NewShell(creds, nil, rec)

	err := shell.Login(ctx, "alice", "wrong")

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, session.StateLogin, shell.State())
	assert.Equal(t, "Invalid username or password", rec.Last().Text)
}

func TestShell_LoginOpensUserStore(t *testing.T) {
	ctx := context.Background()
	creds := new(MockCredentials)
	creds.On("Authenticate", ctx, "alice", "secret1").
		Return(&model.User{ID: 9, Username: "alice", Email: "alice@example.com"}, nil)
	var calls []int64
	rec := &notify.Recorder{}
	shell := session.NewShell(creds, memoryStores(&calls), rec)

	require.NoError(t, shell.Login(ctx, "alice", "secret1"))

	assert.Equal(t, session.StateDashboard, shell.State())
	assert.False(t, shell.IsGuest())
	assert.Equal(t, int64(9), shell.User().ID)
	assert.Equal(t, []int64{9}, calls)
	_, ok := shell.Store()
	assert.True(t, ok)
	assert.Equal(t, "Welcome back, alice!", rec.Last().Text)
}

func TestShell_GuestSessionIsDiscardedOnLogout(t *testing.T) {
	ctx := context.Background()
	shell := session.NewShell(new(MockCredentials), nil, notify.Discard)

	guest := shell.ContinueAsGuest()
	assert.Equal(t, "Guest", guest.Username)
	assert.Equal(t, "guest@example.com", guest.Email)
	assert.True(t, guest.IsGuest())
	assert.True(t, shell.IsGuest())
	assert.Equal(t, session.StateDashboard, shell.State())

	store, ok := shell.Store()
	require.True(t, ok)
	_, err := store.Boards.Create(ctx, "Scratch")
	require.NoError(t, err)

	shell.Logout()
	assert.Equal(t, session.StateLogin, shell.State())
	assert.False(t, shell.IsGuest())
	_, ok = shell.Store()
	assert.False(t, ok)

	again := shell.ContinueAsGuest()
	assert.NotEqual(t, guest.SessionTag, again.SessionTag)
	store, ok = shell.Store()
	require.True(t, ok)
	boards, err := store.Boards.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestShell_SignupValidation(t *testing.T) {
	tests := []struct {
		name                       string
		username, email, pw, again string
		wantErr                    error
	}{
		{"missing username", "", "a@example.com", "secret1", "secret1", session.ErrMissingFields},
		{"missing confirm", "alice", "a@example.com", "secret1", "", session.ErrMissingFields},
		{"mismatch", "alice", "a@example.com", "secret1", "secret2", session.ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := new(MockCredentials)
			shell := session.NewShell(creds, nil, notify.Discard)
			shell.ShowSignup()

			err := shell.Signup(context.Background(), tt.username, tt.email, tt.pw, tt.again)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, repository.ErrValidation)
			assert.Equal(t, session.StateSignup, shell.State())
			creds.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestShell_SignupReturnsToLogin(t *testing.T) {
	ctx := context.Background()
	creds := new(MockCredentials)
	creds.On("Register", ctx, "alice", "alice@example.com", "secret1").
		Return(&model.User{ID: 1, Username: "alice"}, nil)
	rec := &notify.Recorder{}
	shell := session.NewShell(creds, nil, rec)
	shell.ShowSignup()
	require.Equal(t, session.StateSignup, shell.State())

	require.NoError(t, shell.Signup(ctx, "alice", "alice@example.com", "secret1", "secret1"))

	assert.Equal(t, session.StateLogin, shell.State())
	assert.Equal(t, "Account created successfully! Please login.", rec.Last().Text)
	creds.AssertExpectations(t)
}

func TestShell_ScreenSwitching(t *testing.T) {
	shell := session.NewShell(new(MockCredentials), nil, notify.Discard)

	shell.ShowSignup()
	assert.Equal(t, session.StateSignup, shell.State())
	shell.ShowLogin()
	assert.Equal(t, session.StateLogin, shell.State())

	shell.ContinueAsGuest()
	shell.ShowSignup()
	assert.Equal(t, session.StateDashboard, shell.State())
}

func setupSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session_test.db")
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(path)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestShell_PersistentRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupSQLite(t)
	creds := auth.NewCredentialStore(repository.NewUserRepository(db), auth.BcryptHasher{Cost: bcrypt.MinCost})
	rec := &notify.Recorder{}
	shell := session.NewShell(creds, session.GormStores(db), rec)

	shell.ShowSignup()
	require.NoError(t, shell.Signup(ctx, "alice", "alice@example.com", "secret1", "secret1"))

	shell.ShowSignup()
	err := shell.Signup(ctx, "alice", "other@example.com", "secret1", "secret1")
	assert.ErrorIs(t, err, auth.ErrDuplicateUsername)
	assert.Equal(t, "Username already exists", rec.Last().Text)
	err = shell.Signup(ctx, "bob", "alice@example.com", "secret1", "secret1")
	assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
	assert.Equal(t, "Email already exists", rec.Last().Text)
	shell.ShowLogin()

	require.NoError(t, shell.Login(ctx, "alice", "secret1"))
	store, ok := shell.Store()
	require.True(t, ok)
	_, err = store.Boards.Create(ctx, "Roadmap")
	require.NoError(t, err)
	shell.Logout()

	require.NoError(t, shell.Login(ctx, "alice", "secret1"))
	store, ok = shell.Store()
	require.True(t, ok)
	boards, err := store.Boards.List(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Roadmap", boards[0].Name)
}
