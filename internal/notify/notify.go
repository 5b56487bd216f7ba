// Package notify carries user-facing feedback from the controllers to
// whatever front end shows it.
package notify

import (
	"errors"
	"strings"
	"sync"

	"github.com/Thiccblique/Tusday.com/internal/auth"
	"github.com/Thiccblique/Tusday.com/internal/repository"
)

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	if l == LevelError {
		return "error"
	}
	return "info"
}

type Message struct {
	Level Level
	Text  string
}

// Sink receives one message per user action.
type Sink interface {
	Notify(Message)
}

type SinkFunc func(Message)

func (f SinkFunc) Notify(m Message) { f(m) }

// Discard drops every message.
var Discard Sink = SinkFunc(func(Message) {})

func Info(s Sink, text string) {
	s.Notify(Message{Level: LevelInfo, Text: text})
}

func Error(s Sink, err error) {
	s.Notify(Message{Level: LevelError, Text: Describe(err)})
}

// Describe turns an error into the sentence shown to the user.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, auth.ErrDuplicateUsername):
		return "Username already exists"
	case errors.Is(err, auth.ErrDuplicateEmail):
		return "Email already exists"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, repository.ErrValidation):
		return capitalize(strings.TrimPrefix(err.Error(), repository.ErrValidation.Error()+": "))
	case errors.Is(err, repository.ErrNotFound):
		return "That item no longer exists"
	case errors.Is(err, repository.ErrConstraint):
		return "That value is already taken"
	}
	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Recorder keeps every message it receives. It is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
}

func (r *Recorder) Notify(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
}

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Last returns the most recent message, or the zero Message.
func (r *Recorder) Last() Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return Message{}
	}
	return r.messages[len(r.messages)-1]
}
