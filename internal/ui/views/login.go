package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Thiccblique/Tusday.com/internal/session"
	"github.com/Thiccblique/Tusday.com/internal/ui/keys"
	"github.com/Thiccblique/Tusday.com/internal/ui/styles"
)

type LoginView struct {
	ctx    context.Context
	shell  *session.Shell
	styles *styles.Styles
	keys   keys.KeyMap

	username textinput.Model
	password textinput.Model
	focusIdx int // 0=username, 1=password

	width  int
	height int
}

func NewLoginView(ctx context.Context, shell *session.Shell) *LoginView {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 50
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return &LoginView{
		ctx:      ctx,
		shell:    shell,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		username: username,
		password: password,
	}
}

func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit), key.Matches(msg, v.keys.Back):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Signup):
			v.shell.ShowSignup()
			return v, emit(ScreenChanged{})
		case key.Matches(msg, v.keys.Guest):
			v.shell.ContinueAsGuest()
			return v, emit(SessionStarted{})
		case key.Matches(msg, v.keys.Tab), msg.String() == "shift+tab":
			v.focus(1 - v.focusIdx)
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			if v.focusIdx == 0 {
				v.focus(1)
				return v, nil
			}
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	if v.focusIdx == 0 {
		v.username, cmd = v.username.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

func (v *LoginView) submit() tea.Cmd {
	err := v.shell.Login(v.ctx, v.username.Value(), v.password.Value())
	v.password.Reset()
	if err != nil {
		return nil
	}
	return emit(SessionStarted{})
}

func (v *LoginView) focus(idx int) {
	v.focusIdx = idx
	v.username.Blur()
	v.password.Blur()
	if idx == 0 {
		v.username.Focus()
	} else {
		v.password.Focus()
	}
}

func (v *LoginView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 40)

	userStyle, passStyle := s.Input, s.Input
	if v.focusIdx == 0 {
		userStyle = s.InputFocused
	} else {
		passStyle = s.InputFocused
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Tusday"),
		s.TitleMuted.Render("Sign in to your boards"),
		"",
		"Username:",
		userStyle.Width(inputWidth).Render(v.username.View()),
		"Password:",
		passStyle.Width(inputWidth).Render(v.password.View()),
		"",
		s.ButtonPrimary.Render(" Login "),
		"",
		helpLine(s, "tab", "next", "↵", "login", "ctrl+n", "sign up", "ctrl+g", "guest", "esc", "quit"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
