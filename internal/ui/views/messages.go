package views

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Thiccblique/Tusday.com/internal/controller"
)

// SessionStarted is sent once the shell has entered the dashboard.
type SessionStarted struct{}

// ScreenChanged is sent after a login/signup switch in the shell.
type ScreenChanged struct{}

type LoggedOut struct{}

type OpenBoard struct {
	Table *controller.Table
}

type BackToBoards struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
