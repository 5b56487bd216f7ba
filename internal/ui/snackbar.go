package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/ui/styles"
)

const snackTTL = 3 * time.Second

type clearSnackMsg struct {
	seq int
}

// Snackbar is the notify.Sink of the TUI. It shows the latest message on the
// bottom line until snackTTL passes or another message replaces it.
type Snackbar struct {
	mu      sync.Mutex
	current notify.Message
	seq     int
	pending bool
}

var _ notify.Sink = (*Snackbar)(nil)

func (s *Snackbar) Notify(m notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = m
	s.seq++
	s.pending = true
}

// Expire returns the timer command for a message that arrived since the last
// call, or nil.
func (s *Snackbar) Expire() tea.Cmd {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.pending {
		return nil
	}
	s.pending = false
	seq := s.seq
	return tea.Tick(snackTTL, func(time.Time) tea.Msg {
		return clearSnackMsg{seq: seq}
	})
}

// Clear drops the message if it is still the one numbered seq.
func (s *Snackbar) Clear(seq int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.seq {
		s.current = notify.Message{}
	}
}

func (s *Snackbar) Current() notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Snackbar) View(st *styles.Styles) string {
	m := s.Current()
	if m.Text == "" {
		return ""
	}
	if m.Level == notify.LevelError {
		return st.SnackErr.Render("✗ " + m.Text)
	}
	return st.SnackOK.Render("✓ " + m.Text)
}
