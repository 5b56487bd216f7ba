package ui

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Thiccblique/Tusday.com/internal/controller"
	"github.com/Thiccblique/Tusday.com/internal/session"
	"github.com/Thiccblique/Tusday.com/internal/ui/styles"
	"github.com/Thiccblique/Tusday.com/internal/ui/views"
)

// Screen is the view currently drawn.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenBoards
	ScreenBoard
)

type App struct {
	ctx    context.Context
	shell  *session.Shell
	snack  *Snackbar
	styles *styles.Styles

	screen Screen
	login  *views.LoginView
	signup *views.SignupView
	boards *views.DashboardView
	board  *views.BoardView

	width  int
	height int
}

// NewApp wires a session shell to the TUI. stores builds the persistent store
// of a user once they log in.
func NewApp(ctx context.Context, creds session.Credentials, stores session.StoreFactory) *App {
	snack := &Snackbar{}
	shell := session.NewShell(creds, stores, snack)
	return &App{
		ctx:    ctx,
		shell:  shell,
		snack:  snack,
		styles: styles.NewStyles(),
		screen: ScreenLogin,
		login:  views.NewLoginView(ctx, shell),
	}
}

func (a *App) Init() tea.Cmd {
	return a.login.Init()
}

func (a *App) Screen() Screen { return a.screen }

func (a *App) Shell() *session.Shell { return a.shell }

func (a *App) Snackbar() *Snackbar { return a.snack }

func (a *App) resize() tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: a.width, Height: a.height}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	return a, tea.Batch(cmd, a.snack.Expire())
}

func (a *App) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case clearSnackMsg:
		a.snack.Clear(msg.seq)
		return nil

	case views.SessionStarted:
		return a.openDashboard()

	case views.ScreenChanged:
		return a.followShell()

	case views.LoggedOut:
		a.shell.Logout()
		log.Println("session closed")
		return a.followShell()

	case views.OpenBoard:
		a.screen = ScreenBoard
		a.board = views.NewBoardView(a.ctx, msg.Table)
		return tea.Batch(a.board.Init(), a.resize())

	case views.BackToBoards:
		a.screen = ScreenBoards
		a.board = nil
		a.boards.Reload()
		return a.resize()
	}

	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		_, cmd = a.login.Update(msg)
	case ScreenSignup:
		_, cmd = a.signup.Update(msg)
	case ScreenBoards:
		_, cmd = a.boards.Update(msg)
	case ScreenBoard:
		_, cmd = a.board.Update(msg)
	}
	return cmd
}

func (a *App) openDashboard() tea.Cmd {
	store, ok := a.shell.Store()
	if !ok {
		return a.followShell()
	}
	dash, err := controller.NewDashboard(a.ctx, store, a.snack)
	if err != nil {
		a.shell.Logout()
		return a.followShell()
	}
	user := a.shell.User()
	log.Printf("session started for %s (guest=%t)", user.Username, a.shell.IsGuest())

	a.screen = ScreenBoards
	a.boards = views.NewDashboardView(a.ctx, dash, user, a.shell.IsGuest())
	return tea.Batch(a.boards.Init(), a.resize())
}

// followShell shows the login or signup screen that matches the shell state.
func (a *App) followShell() tea.Cmd {
	a.boards = nil
	a.board = nil
	switch a.shell.State() {
	case session.StateSignup:
		a.screen = ScreenSignup
		a.signup = views.NewSignupView(a.ctx, a.shell)
		return tea.Batch(a.signup.Init(), a.resize())
	case session.StateDashboard:
		return a.openDashboard()
	}
	a.screen = ScreenLogin
	a.login = views.NewLoginView(a.ctx, a.shell)
	return tea.Batch(a.login.Init(), a.resize())
}

func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenSignup:
		content = a.signup.View()
	case ScreenBoards:
		content = a.boards.View()
	case ScreenBoard:
		content = a.board.View()
	default:
		content = a.login.View()
	}

	if bar := a.snack.View(a.styles); bar != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, bar)
	}
	return content
}
