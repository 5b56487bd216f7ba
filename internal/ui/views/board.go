package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Thiccblique/Tusday.com/internal/controller"
	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/ui/keys"
	"github.com/Thiccblique/Tusday.com/internal/ui/styles"
)

var columnTypes = []model.ColumnType{model.ColumnText, model.ColumnStatus, model.ColumnDate}

type boardMode int

const (
	boardBrowse boardMode = iota
	boardEdit
	boardAddColumn
	boardConfirmRow
	boardConfirmColumn
)

// BoardView shows one board as a grid. Column 0 of the cursor is the task
// name; column i > 0 is Grid().Columns[i-1].
type BoardView struct {
	ctx    context.Context
	table  *controller.Table
	styles *styles.Styles
	keys   keys.KeyMap

	row, col int
	mode     boardMode
	input    textinput.Model
	typeIdx  int

	width  int
	height int
}

func NewBoardView(ctx context.Context, t *controller.Table) *BoardView {
	input := textinput.New()
	input.CharLimit = 200

	return &BoardView{
		ctx:    ctx,
		table:  t,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		input:  input,
	}
}

func (v *BoardView) Init() tea.Cmd {
	return nil
}

// Cursor returns the selected row and grid column.
func (v *BoardView) Cursor() (row, col int) {
	return v.row, v.col
}

func (v *BoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		switch v.mode {
		case boardEdit:
			return v.updateEdit(msg)
		case boardAddColumn:
			return v.updateAddColumn(msg)
		case boardConfirmRow, boardConfirmColumn:
			return v.updateConfirm(msg)
		}
		return v.updateBrowse(msg)
	}
	return v, nil
}

func (v *BoardView) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	grid := v.table.Grid()

	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Back):
		return v, emit(BackToBoards{})
	case key.Matches(msg, v.keys.Logout):
		return v, emit(LoggedOut{})

	case key.Matches(msg, v.keys.Up):
		v.row = max(v.row-1, 0)
	case key.Matches(msg, v.keys.Down):
		v.row = clamp(v.row+1, 0, max(len(grid.Rows)-1, 0))
	case key.Matches(msg, v.keys.Left):
		v.col = max(v.col-1, 0)
	case key.Matches(msg, v.keys.Right):
		v.col = clamp(v.col+1, 0, len(grid.Columns))

	case key.Matches(msg, v.keys.AddTask):
		if _, err := v.table.AddTask(v.ctx); err == nil {
			v.row = len(v.table.Grid().Rows) - 1
		}
	case key.Matches(msg, v.keys.AddColumn):
		v.mode = boardAddColumn
		v.typeIdx = 0
		v.input.Reset()
		v.input.Placeholder = "Column name"
		v.input.Focus()
		return v, textinput.Blink
	case key.Matches(msg, v.keys.DeleteRow):
		if len(grid.Rows) > 0 {
			v.mode = boardConfirmRow
		}
	case key.Matches(msg, v.keys.DeleteColumn):
		if v.col > 0 {
			v.mode = boardConfirmColumn
		}

	case key.Matches(msg, v.keys.Enter):
		return v, v.activate()
	}
	return v, nil
}

// activate cycles a status cell or opens the editor for anything else.
func (v *BoardView) activate() tea.Cmd {
	grid := v.table.Grid()
	if v.row >= len(grid.Rows) {
		return nil
	}
	row := grid.Rows[v.row]

	if v.col == 0 {
		v.startEdit(row.Task.Name, "Task name")
		return textinput.Blink
	}
	col := grid.Columns[v.col-1]
	if col.Type == model.ColumnStatus {
		_, _ = v.table.CycleStatus(v.ctx, row.Task.ID, col.ID)
		return nil
	}
	placeholder := ""
	if col.Type == model.ColumnDate {
		placeholder = controller.DatePlaceholder
	}
	v.startEdit(row.Values[col.ID], placeholder)
	return textinput.Blink
}

func (v *BoardView) startEdit(value, placeholder string) {
	v.mode = boardEdit
	v.input.SetValue(value)
	v.input.Placeholder = placeholder
	v.input.CursorEnd()
	v.input.Focus()
}

// updateEdit saves on enter and on esc alike: leaving the field commits it.
func (v *BoardView) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, v.keys.Enter) || key.Matches(msg, v.keys.Back) {
		v.commitEdit()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *BoardView) commitEdit() {
	grid := v.table.Grid()
	if v.row < len(grid.Rows) && v.col <= len(grid.Columns) {
		task := grid.Rows[v.row].Task
		if v.col == 0 {
			_ = v.table.RenameTask(v.ctx, task.ID, v.input.Value())
		} else {
			_ = v.table.SetCell(v.ctx, task.ID, grid.Columns[v.col-1].ID, v.input.Value())
		}
	}
	v.stopInput()
	v.clampCursor()
}

func (v *BoardView) updateAddColumn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.stopInput()
		return v, nil
	case key.Matches(msg, v.keys.Tab):
		v.typeIdx = (v.typeIdx + 1) % len(columnTypes)
		return v, nil
	case msg.String() == "shift+tab":
		v.typeIdx = (v.typeIdx + len(columnTypes) - 1) % len(columnTypes)
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		if _, err := v.table.AddColumn(v.ctx, v.input.Value(), columnTypes[v.typeIdx]); err == nil {
			v.stopInput()
			v.col = len(v.table.Grid().Columns)
		}
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *BoardView) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		grid := v.table.Grid()
		if v.mode == boardConfirmRow && v.row < len(grid.Rows) {
			_ = v.table.DeleteTask(v.ctx, grid.Rows[v.row].Task.ID)
		}
		if v.mode == boardConfirmColumn && v.col > 0 && v.col <= len(grid.Columns) {
			_ = v.table.DeleteColumn(v.ctx, grid.Columns[v.col-1].ID)
		}
		v.mode = boardBrowse
		v.clampCursor()
	case "n", "N", "esc":
		v.mode = boardBrowse
	}
	return v, nil
}

func (v *BoardView) stopInput() {
	v.mode = boardBrowse
	v.input.Blur()
	v.input.Reset()
}

func (v *BoardView) clampCursor() {
	grid := v.table.Grid()
	v.row = clamp(v.row, 0, max(len(grid.Rows)-1, 0))
	v.col = clamp(v.col, 0, len(grid.Columns))
}

func (v *BoardView) View() string {
	s := v.styles
	grid := v.table.Grid()

	var body string
	switch v.mode {
	case boardAddColumn:
		body = v.renderAddColumn()
	case boardConfirmRow:
		body = v.renderConfirm("Delete task?", fmt.Sprintf("\"%s\" will be removed.", grid.Rows[v.row].Task.Name))
	case boardConfirmColumn:
		body = v.renderConfirm("Delete column?", fmt.Sprintf("\"%s\" and its values will be removed.", grid.Columns[v.col-1].Name))
	default:
		body = v.renderTable(grid)
		if len(grid.Rows) == 0 {
			body += "\n" + s.Placeholder.Render("No tasks yet. Press 'a' to get started!")
		}
		if v.mode == boardEdit {
			body += "\n" + s.InputFocused.Width(clamp(v.width-6, 20, 60)).Render(v.input.View())
		}
	}

	help := s.Help.Render(helpLine(s,
		"a", "add task", "c", "add column", "↵", "edit/cycle",
		"x", "del row", "X", "del column", "esc", "boards", "ctrl+l", "logout"))
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Header.Render("📋 "+grid.Board.Name),
		body,
		help,
	)
}

func (v *BoardView) renderTable(grid controller.Grid) string {
	s := v.styles

	headers := make([]string, 0, len(grid.Columns)+1)
	headers = append(headers, "Task Name")
	for _, c := range grid.Columns {
		headers = append(headers, c.Name)
	}

	rows := make([][]string, len(grid.Rows))
	for i, r := range grid.Rows {
		cells := make([]string, 0, len(grid.Columns)+1)
		cells = append(cells, r.Task.Name)
		for j := range grid.Columns {
			cells = append(cells, v.table.Cell(i, j))
		}
		rows[i] = cells
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.Current.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			selected := row == v.row && col == v.col
			if col == 0 || row >= len(grid.Rows) {
				if selected {
					return s.TableCursor
				}
				return s.TableCell
			}

			column := grid.Columns[col-1]
			value := grid.Rows[row].Values[column.ID]
			style := s.TableCell
			switch {
			case column.Type == model.ColumnStatus:
				style = s.Status.Background(styles.StatusColor(value))
			case value == "":
				style = s.TableCell.Inherit(s.Placeholder)
			}
			if selected {
				style = style.Underline(true).Reverse(true)
			}
			return style
		}).
		String()
}

func (v *BoardView) renderAddColumn() string {
	s := v.styles
	types := make([]string, len(columnTypes))
	for i, t := range columnTypes {
		label := strings.ToUpper(string(t[:1])) + string(t[1:])
		if i == v.typeIdx {
			types[i] = s.ButtonFocused.Render(label)
		} else {
			types[i] = s.Button.Render(label)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		s.Title.Render("Add New Column"),
		"",
		"Column Name:",
		s.InputFocused.Width(clamp(styles.ContentWidth(v.width)-6, 20, 50)).Render(v.input.View()),
		"Column Type:",
		lipgloss.JoinHorizontal(lipgloss.Center, types...),
		"",
		s.TitleMuted.Render("Tab: change type • ↵: add • Esc: cancel"),
	)
}

func (v *BoardView) renderConfirm(title, detail string) string {
	s := v.styles
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		s.Title.Foreground(styles.Current.Error).Render(title),
		"",
		s.TitleMuted.Render(detail),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)
}
