package notify_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Thiccblique/Tusday.com/internal/auth"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"duplicate username", auth.ErrDuplicateUsername, "Username already exists"},
		{"duplicate email", auth.ErrDuplicateEmail, "Email already exists"},
		{"weak password", auth.ErrWeakPassword, "Password must be at least 6 characters"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid username or password"},
		{"validation", fmt.Errorf("%w: board name is required", repository.ErrValidation), "Board name is required"},
		{"not found", fmt.Errorf("task 4: %w", repository.ErrNotFound), "That item no longer exists"},
		{"storage keeps driver text", fmt.Errorf("%w: disk I/O error", repository.ErrStorage), "storage error: disk I/O error"},
		{"unknown", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, notify.Describe(tt.err))
		})
	}
}

func TestRecorder(t *testing.T) {
	var r notify.Recorder
	assert.Equal(t, notify.Message{}, r.Last())

	notify.Info(&r, "Board created")
	notify.Error(&r, auth.ErrDuplicateEmail)

	assert.Len(t, r.Messages(), 2)
	assert.Equal(t, notify.Message{Level: notify.LevelError, Text: "Email already exists"}, r.Last())
	assert.Equal(t, "info", r.Messages()[0].Level.String())
}
