package views

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Thiccblique/Tusday.com/internal/controller"
	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/ui/keys"
	"github.com/Thiccblique/Tusday.com/internal/ui/styles"
)

type boardItem struct {
	board model.Board
}

func (i boardItem) Title() string       { return i.board.Name }
func (i boardItem) Description() string { return "Updated " + i.board.UpdatedAt.Format("2006-01-02 15:04") }
func (i boardItem) FilterValue() string { return i.board.Name }

type boardDelegate struct {
	styles *styles.Styles
	width  int
}

func (d boardDelegate) Height() int                               { return 2 }
func (d boardDelegate) Spacing() int                              { return 1 }
func (d boardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d boardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	b, ok := item.(boardItem)
	if !ok {
		return
	}

	width := max(d.width-4, 20)
	titleStyle := d.styles.ListItem.Width(width)
	if index == m.Index() {
		titleStyle = d.styles.ListSelected.Width(width)
	}
	descStyle := titleStyle.Foreground(styles.Current.ForegroundDim).Bold(false)

	fmt.Fprintf(w, "%s\n%s", titleStyle.Render("📋 "+b.Title()), descStyle.Render(b.Description()))
}

type dashboardMode int

const (
	modeBrowse dashboardMode = iota
	modeCreate
	modeRename
	modeConfirmDelete
)

// DashboardView lists the session's boards.
type DashboardView struct {
	ctx    context.Context
	dash   *controller.Dashboard
	user   model.User
	guest  bool
	styles *styles.Styles
	keys   keys.KeyMap

	list     list.Model
	delegate *boardDelegate
	mode     dashboardMode
	name     textinput.Model
	target   model.Board

	width  int
	height int
}

func NewDashboardView(ctx context.Context, dash *controller.Dashboard, user model.User, guest bool) *DashboardView {
	s := styles.NewStyles()

	name := textinput.New()
	name.Placeholder = "Board name"
	name.CharLimit = 100

	delegate := &boardDelegate{styles: s, width: styles.MaxWidth}
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "My Boards"
	l.Styles.Title = s.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	v := &DashboardView{
		ctx:      ctx,
		dash:     dash,
		user:     user,
		guest:    guest,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
		list:     l,
		delegate: delegate,
		name:     name,
	}
	v.refresh()
	return v
}

func (v *DashboardView) Init() tea.Cmd {
	return nil
}

// Reload re-reads the board list, keeping the cursor where it was.
func (v *DashboardView) Reload() {
	_ = v.dash.Reload(v.ctx)
	v.refresh()
}

func (v *DashboardView) refresh() {
	boards := v.dash.Boards()
	items := make([]list.Item, len(boards))
	for i, b := range boards {
		items[i] = boardItem{board: b}
	}
	v.list.SetItems(items)
}

func (v *DashboardView) selected() (model.Board, bool) {
	item, ok := v.list.SelectedItem().(boardItem)
	return item.board, ok
}

// selectBoard moves the cursor to the board with the given id.
func (v *DashboardView) selectBoard(id int64) {
	for i, item := range v.list.Items() {
		if b, ok := item.(boardItem); ok && b.board.ID == id {
			v.list.Select(i)
			return
		}
	}
}

func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-6)
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case modeCreate, modeRename:
			return v.updatePrompt(msg)
		case modeConfirmDelete:
			return v.updateConfirmDelete(msg)
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Logout):
			return v, emit(LoggedOut{})
		case key.Matches(msg, v.keys.New):
			v.mode = modeCreate
			v.name.Reset()
			v.name.Focus()
			return v, textinput.Blink
		case key.Matches(msg, v.keys.Rename):
			if b, ok := v.selected(); ok {
				v.mode = modeRename
				v.target = b
				v.name.SetValue(b.Name)
				v.name.CursorEnd()
				v.name.Focus()
				return v, textinput.Blink
			}
			return v, nil
		case key.Matches(msg, v.keys.Delete):
			if b, ok := v.selected(); ok {
				v.mode = modeConfirmDelete
				v.target = b
			}
			return v, nil
		case key.Matches(msg, v.keys.Enter):
			if b, ok := v.selected(); ok {
				table, err := v.dash.Select(v.ctx, b.ID)
				if err != nil {
					v.refresh()
					return v, nil
				}
				return v, emit(OpenBoard{Table: table})
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *DashboardView) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = modeBrowse
		v.name.Blur()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		var err error
		if v.mode == modeCreate {
			var board *model.Board
			board, err = v.dash.CreateBoard(v.ctx, v.name.Value())
			if err == nil {
				v.refresh()
				v.selectBoard(board.ID)
			}
		} else {
			err = v.dash.RenameBoard(v.ctx, v.target.ID, v.name.Value())
			v.refresh()
		}
		if err == nil {
			v.mode = modeBrowse
			v.name.Blur()
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.name, cmd = v.name.Update(msg)
	return v, cmd
}

func (v *DashboardView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		_ = v.dash.DeleteBoard(v.ctx, v.target.ID)
		v.refresh()
		v.mode = modeBrowse
	case "n", "N", "esc":
		v.mode = modeBrowse
	}
	return v, nil
}

func (v *DashboardView) View() string {
	s := v.styles
	who := "👤 " + v.user.Username
	if v.guest {
		who += " (Guest)"
	}
	header := s.Header.Render(who)

	var body string
	switch {
	case v.mode == modeCreate || v.mode == modeRename:
		body = v.renderPrompt()
	case v.mode == modeConfirmDelete:
		body = v.renderDeleteConfirm()
	case len(v.list.Items()) == 0:
		body = lipgloss.JoinVertical(lipgloss.Left,
			"",
			s.Title.Render("No boards yet"),
			s.TitleMuted.Render("Press 'n' to create your first board"),
		)
	default:
		body = v.list.View()
	}

	logout := "logout"
	if v.guest {
		logout = "exit guest"
	}
	help := s.Help.Render(helpLine(s, "↵", "open", "n", "new", "r", "rename", "d", "delete", "ctrl+l", logout))
	content := lipgloss.JoinVertical(lipgloss.Left, header, body, help)
	return styles.CenterView(content, v.width, v.height)
}

func (v *DashboardView) renderPrompt() string {
	s := v.styles
	title := "New Board"
	if v.mode == modeRename {
		title = "Rename Board"
	}
	inputWidth := clamp(styles.ContentWidth(v.width)-6, 20, 50)
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		s.Title.Render(title),
		"",
		s.InputFocused.Width(inputWidth).Render(v.name.View()),
		"",
		s.TitleMuted.Render("↵: save • Esc: cancel"),
	)
}

func (v *DashboardView) renderDeleteConfirm() string {
	s := v.styles
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		s.Title.Foreground(styles.Current.Error).Render("Delete Board?"),
		"",
		s.TitleMuted.Render(fmt.Sprintf("\"%s\" and all of its tasks will be removed.", v.target.Name)),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)
}
