// Package controller holds the screen logic that sits between a front end and
// a repository.Store. Nothing here knows how it is drawn.
package controller

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"
)

const (
	StatusPlaceholder = "Not set"
	DatePlaceholder   = "YYYY-MM-DD"
)

type Row struct {
	Task   model.Task
	Values map[int64]string // keyed by column id
}

// Grid is a snapshot of one board: columns by position, one row per task.
type Grid struct {
	Board   model.Board
	Columns []model.Column
	Rows    []Row
}

// Table edits the grid of a single board. Every successful mutation reloads
// the whole grid and reports to the sink.
type Table struct {
	store repository.Store
	sink  notify.Sink
	grid  Grid
}

// NewTable seeds the default columns when the board has none and loads the
// grid.
func NewTable(ctx context.Context, store repository.Store, board model.Board, sink notify.Sink) (*Table, error) {
	t := &Table{
		store: store,
		sink:  sink,
		grid:  Grid{Board: board},
	}
	if _, err := store.Columns.EnsureDefaults(ctx, board.ID); err != nil {
		notify.Error(sink, err)
		return nil, err
	}
	if err := t.Reload(ctx); err != nil {
		notify.Error(sink, err)
		return nil, err
	}
	return t, nil
}

func (t *Table) Grid() Grid {
	return t.grid
}

func (t *Table) BoardID() int64 {
	return t.grid.Board.ID
}

// Reload reads the board, its columns, tasks and all cell values.
func (t *Table) Reload(ctx context.Context) error {
	board, err := t.store.Boards.Get(ctx, t.grid.Board.ID)
	if err != nil {
		return err
	}
	columns, err := t.store.Columns.List(ctx, board.ID)
	if err != nil {
		return err
	}
	tasks, err := t.store.Tasks.List(ctx, board.ID)
	if err != nil {
		return err
	}
	values, err := t.store.Cells.ListByBoard(ctx, board.ID)
	if err != nil {
		return err
	}

	rows := make([]Row, len(tasks))
	for i, task := range tasks {
		row := Row{Task: task, Values: make(map[int64]string, len(columns))}
		for _, col := range columns {
			row.Values[col.ID] = values[model.CellKey{TaskID: task.ID, ColumnID: col.ID}]
		}
		rows[i] = row
	}

	t.grid = Grid{Board: *board, Columns: columns, Rows: rows}
	return nil
}

func (t *Table) AddTask(ctx context.Context) (*model.Task, error) {
	task, err := t.store.Tasks.Create(ctx, t.grid.Board.ID)
	if err != nil {
		return nil, t.fail(ctx, err)
	}
	return task, t.done(ctx, "Task added!")
}

// RenameTask ignores blank names.
func (t *Table) RenameTask(ctx context.Context, taskID int64, name string) error {
	if _, err := t.store.Tasks.Rename(ctx, taskID, name); err != nil {
		return t.fail(ctx, err)
	}
	return t.done(ctx, "")
}

func (t *Table) DeleteTask(ctx context.Context, taskID int64) error {
	if err := t.store.Tasks.Delete(ctx, taskID); err != nil {
		return t.fail(ctx, err)
	}
	return t.done(ctx, "Task deleted")
}

func (t *Table) AddColumn(ctx context.Context, name string, typ model.ColumnType) (*model.Column, error) {
	col, err := t.store.Columns.Create(ctx, t.grid.Board.ID, name, typ)
	if err != nil {
		return nil, t.fail(ctx, err)
	}
	return col, t.done(ctx, fmt.Sprintf("Column '%s' added!", col.Name))
}

func (t *Table) DeleteColumn(ctx context.Context, columnID int64) error {
	col, err := t.store.Columns.Get(ctx, columnID)
	if err != nil {
		return t.fail(ctx, err)
	}
	if err := t.store.Columns.Delete(ctx, columnID); err != nil {
		return t.fail(ctx, err)
	}
	return t.done(ctx, fmt.Sprintf("Column '%s' deleted", col.Name))
}

// SetCell stores value as typed. Dates are not parsed.
func (t *Table) SetCell(ctx context.Context, taskID, columnID int64, value string) error {
	if err := t.onBoard(taskID, columnID); err != nil {
		return t.fail(ctx, err)
	}
	if err := t.store.Cells.Set(ctx, taskID, columnID, value); err != nil {
		return t.fail(ctx, err)
	}
	return t.done(ctx, "")
}

// CycleStatus advances a status cell and returns the new value.
func (t *Table) CycleStatus(ctx context.Context, taskID, columnID int64) (string, error) {
	if err := t.onBoard(taskID, columnID); err != nil {
		return "", t.fail(ctx, err)
	}
	col, err := t.store.Columns.Get(ctx, columnID)
	if err != nil {
		return "", t.fail(ctx, err)
	}
	if col.Type != model.ColumnStatus {
		return "", t.fail(ctx, fmt.Errorf("%w: column '%s' is not a status column", repository.ErrValidation, col.Name))
	}

	next, err := repository.CycleStatus(ctx, t.store.Cells, taskID, columnID)
	if err != nil {
		return "", t.fail(ctx, err)
	}
	return next, t.done(ctx, "")
}

// onBoard rejects a task or column that is not part of the loaded grid.
func (t *Table) onBoard(taskID, columnID int64) error {
	hasTask := slices.ContainsFunc(t.grid.Rows, func(r Row) bool { return r.Task.ID == taskID })
	hasColumn := slices.ContainsFunc(t.grid.Columns, func(c model.Column) bool { return c.ID == columnID })
	if !hasTask || !hasColumn {
		return fmt.Errorf("%w: cell is not on board '%s'", repository.ErrValidation, t.grid.Board.Name)
	}
	return nil
}

// Cell returns the text shown at (row, col) of the current grid, or "" when
// either index is out of range.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.grid.Rows) || col < 0 || col >= len(t.grid.Columns) {
		return ""
	}
	column := t.grid.Columns[col]
	text, _ := DisplayValue(column, t.grid.Rows[row].Values[column.ID])
	return text
}

// DisplayValue returns the text for a stored value and whether it is a
// placeholder rather than real content.
func DisplayValue(col model.Column, value string) (string, bool) {
	if value != "" {
		return value, false
	}
	switch col.Type {
	case model.ColumnStatus:
		return StatusPlaceholder, true
	case model.ColumnDate:
		return DatePlaceholder, true
	}
	return "", false
}

// done reloads after a successful write and sends msg when it is not empty.
func (t *Table) done(ctx context.Context, msg string) error {
	if err := t.Reload(ctx); err != nil {
		notify.Error(t.sink, err)
		return err
	}
	if msg != "" {
		notify.Info(t.sink, msg)
	}
	return nil
}

// fail reports err. A vanished row still triggers a reload so the grid stops
// showing it.
func (t *Table) fail(ctx context.Context, err error) error {
	notify.Error(t.sink, err)
	if errors.Is(err, repository.ErrNotFound) {
		_ = t.Reload(ctx)
	}
	return err
}
