package repository

import (
	"context"

	"github.com/Thiccblique/Tusday.com/internal/model"
)

// BoardRepository manages the boards visible to one session.
type BoardRepository interface {
	List(ctx context.Context) ([]model.Board, error)
	Get(ctx context.Context, id int64) (*model.Board, error)
	Create(ctx context.Context, name string) (*model.Board, error)
	Rename(ctx context.Context, id int64, name string) (*model.Board, error)
	// Delete removes the board with its columns, tasks and cells.
	Delete(ctx context.Context, id int64) error
}

// ColumnRepository manages board columns. Columns are append-only: a new
// column takes position = current column count.
type ColumnRepository interface {
	List(ctx context.Context, boardID int64) ([]model.Column, error)
	Get(ctx context.Context, id int64) (*model.Column, error)
	Create(ctx context.Context, boardID int64, name string, typ model.ColumnType) (*model.Column, error)
	// Delete removes the column and every cell in it.
	Delete(ctx context.Context, id int64) error
	// EnsureDefaults seeds model.DefaultColumns when the board has no columns
	// and returns the board's columns either way.
	EnsureDefaults(ctx context.Context, boardID int64) ([]model.Column, error)
}

// TaskRepository manages the rows of a board.
type TaskRepository interface {
	List(ctx context.Context, boardID int64) ([]model.Task, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	Create(ctx context.Context, boardID int64) (*model.Task, error)
	// Rename ignores blank names and returns the task unchanged.
	Rename(ctx context.Context, id int64, name string) (*model.Task, error)
	// Delete removes the task and every cell in its row.
	Delete(ctx context.Context, id int64) error
}

// CellRepository reads and writes cell values.
type CellRepository interface {
	// Value returns "" when nothing was written for the pair.
	Value(ctx context.Context, taskID, columnID int64) (string, error)
	// Set inserts or updates the single cell for (taskID, columnID).
	Set(ctx context.Context, taskID, columnID int64, value string) error
	// ListByBoard returns every stored value of a board in one read.
	ListByBoard(ctx context.Context, boardID int64) (map[model.CellKey]string, error)
}

// Store groups the repositories of one session. Callers pick the backend once
// (NewGormStore or NewMemoryStore) and never branch on it again.
type Store struct {
	Boards  BoardRepository
	Columns ColumnRepository
	Tasks   TaskRepository
	Cells   CellRepository
}

// CycleStatus advances the status cell of (taskID, columnID) to the next value
// of model.Statuses and returns it.
func CycleStatus(ctx context.Context, cells CellRepository, taskID, columnID int64) (string, error) {
	current, err := cells.Value(ctx, taskID, columnID)
	if err != nil {
		return "", err
	}

	next := model.NextStatus(current)
	if err := cells.Set(ctx, taskID, columnID, next); err != nil {
		return "", err
	}
	return next, nil
}
