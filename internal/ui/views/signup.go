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

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldConfirm
	signupFields
)

type SignupView struct {
	ctx    context.Context
	shell  *session.Shell
	styles *styles.Styles
	keys   keys.KeyMap

	inputs   [signupFields]textinput.Model
	focusIdx int

	width  int
	height int
}

func NewSignupView(ctx context.Context, shell *session.Shell) *SignupView {
	var inputs [signupFields]textinput.Model
	placeholders := [signupFields]string{"Username", "Email", "Password", "Confirm password"}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 100
		if i == fieldPassword || i == fieldConfirm {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		inputs[i] = in
	}
	inputs[fieldUsername].CharLimit = 50
	inputs[fieldUsername].Focus()

	return &SignupView{
		ctx:    ctx,
		shell:  shell,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		inputs: inputs,
	}
}

func (v *SignupView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *SignupView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Back):
			v.shell.ShowLogin()
			return v, emit(ScreenChanged{})
		case msg.String() == "shift+tab":
			v.focus((v.focusIdx + signupFields - 1) % signupFields)
			return v, nil
		case key.Matches(msg, v.keys.Tab):
			v.focus((v.focusIdx + 1) % signupFields)
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			if v.focusIdx < fieldConfirm {
				v.focus(v.focusIdx + 1)
				return v, nil
			}
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.inputs[v.focusIdx], cmd = v.inputs[v.focusIdx].Update(msg)
	return v, cmd
}

func (v *SignupView) submit() tea.Cmd {
	err := v.shell.Signup(v.ctx,
		v.inputs[fieldUsername].Value(),
		v.inputs[fieldEmail].Value(),
		v.inputs[fieldPassword].Value(),
		v.inputs[fieldConfirm].Value(),
	)
	if err != nil {
		return nil
	}
	for i := range v.inputs {
		v.inputs[i].Reset()
	}
	v.focus(fieldUsername)
	return emit(ScreenChanged{})
}

func (v *SignupView) focus(idx int) {
	v.focusIdx = idx
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
	v.inputs[idx].Focus()
}

func (v *SignupView) View() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 40)
	labels := [signupFields]string{"Username:", "Email:", "Password:", "Confirm password:"}

	rows := []string{s.Title.Render("Create account"), ""}
	for i, in := range v.inputs {
		style := s.Input
		if i == v.focusIdx {
			style = s.InputFocused
		}
		rows = append(rows, labels[i], style.Width(inputWidth).Render(in.View()))
	}
	rows = append(rows,
		"",
		s.ButtonPrimary.Render(" Sign up "),
		"",
		helpLine(s, "tab", "next", "↵", "sign up", "esc", "back to login"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return styles.CenterView(centered, v.width, v.height)
}
