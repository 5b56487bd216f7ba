package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Thiccblique/Tusday.com/internal/controller"
	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/notify"
	"github.com/Thiccblique/Tusday.com/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T) (*controller.Table, repository.Store, *notify.Recorder) {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	board, err := store.Boards.Create(ctx, "Sprint")
	require.NoError(t, err)

	rec := &notify.Recorder{}
	table, err := controller.NewTable(ctx, store, *board, rec)
	require.NoError(t, err)
	return table, store, rec
}

func TestNewTable_SeedsDefaultColumns(t *testing.T) {
	table, _, rec := newTable(t)

	grid := table.Grid()
	require.Len(t, grid.Columns, 3)
	assert.Equal(t, "Status", grid.Columns[0].Name)
	assert.Equal(t, model.ColumnStatus, grid.Columns[0].Type)
	assert.Equal(t, "Notes", grid.Columns[1].Name)
	assert.Equal(t, "Due Date", grid.Columns[2].Name)
	assert.Empty(t, grid.Rows)
	assert.Empty(t, rec.Messages())
}

func TestNewTable_ReopenDoesNotReseed(t *testing.T) {
	ctx := context.Background()
	table, store, rec := newTable(t)
	require.NoError(t, table.DeleteColumn(ctx, table.Grid().Columns[1].ID))

	again, err := controller.NewTable(ctx, store, table.Grid().Board, rec)
	require.NoError(t, err)

	assert.Len(t, again.Grid().Columns, 2)
}

func TestTable_AddTask(t *testing.T) {
	ctx := context.Background()
	table, _, rec := newTable(t)

	for i := 0; i < 3; i++ {
		_, err := table.AddTask(ctx)
		require.NoError(t, err)
	}

	rows := table.Grid().Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "New Task 3", rows[2].Task.Name)
	assert.Equal(t, 2, rows[2].Task.Position)
	assert.Equal(t, notify.Message{Level: notify.LevelInfo, Text: "Task added!"}, rec.Last())
}

func TestTable_CellDisplay(t *testing.T) {
	ctx := context.Background()
	table, _, _ := newTable(t)
	task, err := table.AddTask(ctx)
	require.NoError(t, err)
	cols := table.Grid().Columns

	assert.Equal(t, controller.StatusPlaceholder, table.Cell(0, 0))
	assert.Equal(t, "", table.Cell(0, 1))
	assert.Equal(t, controller.DatePlaceholder, table.Cell(0, 2))
	assert.Equal(t, "", table.Cell(5, 0))

	require.NoError(t, table.SetCell(ctx, task.ID, cols[1].ID, "call vendor"))
	require.NoError(t, table.SetCell(ctx, task.ID, cols[2].ID, "tomorrow"))

	assert.Equal(t, "call vendor", table.Cell(0, 1))
	assert.Equal(t, "tomorrow", table.Cell(0, 2))
}

func TestTable_CycleStatus(t *testing.T) {
	ctx := context.Background()
	table, _, _ := newTable(t)
	task, err := table.AddTask(ctx)
	require.NoError(t, err)
	status := table.Grid().Columns[0]

	for _, want := range []string{"Done", "Working On It", "Stuck", "", "Done"} {
		got, err := table.CycleStatus(ctx, task.ID, status.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want, table.Grid().Rows[0].Values[status.ID])
	}
}

func TestTable_CycleStatusRejectsOtherColumns(t *testing.T) {
	ctx := context.Background()
	table, _, rec := newTable(t)
	task, err := table.AddTask(ctx)
	require.NoError(t, err)

	_, err = table.CycleStatus(ctx, task.ID, table.Grid().Columns[1].ID)

	assert.ErrorIs(t, err, repository.ErrValidation)
	assert.Equal(t, notify.LevelError, rec.Last().Level)
	assert.Equal(t, "", table.Grid().Rows[0].Values[table.Grid().Columns[1].ID])
}

func TestTable_RenameTask(t *testing.T) {
	ctx := context.Background()
	table, _, _ := newTable(t)
	task, err := table.AddTask(ctx)
	require.NoError(t, err)

	require.NoError(t, table.RenameTask(ctx, task.ID, "  Write docs "))
	assert.Equal(t, "Write docs", table.Grid().Rows[0].Task.Name)

	require.NoError(t, table.RenameTask(ctx, task.ID, "   "))
	assert.Equal(t, "Write docs", table.Grid().Rows[0].Task.Name)
}

func TestTable_AddAndDeleteColumn(t *testing.T) {
	ctx := context.Background()
	table, _, rec := newTable(t)
	task, err := table.AddTask(ctx)
	require.NoError(t, err)

	col, err := table.AddColumn(ctx, "Owner", model.ColumnText)
	require.NoError(t, err)
	assert.Equal(t, 3, col.Position)
	assert.Equal(t, "Column 'Owner' added!", rec.Last().Text)
	require.NoError(t, table.SetCell(ctx, task.ID, col.ID, "sam"))

	require.NoError(t, table.DeleteColumn(ctx, col.ID))
	assert.Equal(t, "Column 'Owner' deleted", rec.Last().Text)
	assert.Len(t, table.Grid().Columns, 3)
	_, ok := table.Grid().Rows[0].Values[col.ID]
	assert.False(t, ok)
}

func TestTable_AddColumnValidation(t *testing.T) {
	ctx := context.Background()
	table, _, rec := newTable(t)

	_, err := table.AddColumn(ctx, "  ", model.ColumnText)
	assert.ErrorIs(t, err, repository.ErrValidation)
	assert.Equal(t, notify.Message{Level: notify.LevelError, Text: "Column name is required"}, rec.Last())

	_, err = table.AddColumn(ctx, "Priority", model.ColumnType("number"))
	assert.ErrorIs(t, err, repository.ErrValidation)

	assert.Len(t, table.Grid().Columns, 3)
}

func TestTable_DeleteTask(t *testing.T) {
	ctx := context.Background()
	table, store, rec := newTable(t)
	first, err := table.AddTask(ctx)
	require.NoError(t, err)
	_, err = table.AddTask(ctx)
	require.NoError(t, err)

	require.NoError(t, table.DeleteTask(ctx, first.ID))

	assert.Equal(t, "Task deleted", rec.Last().Text)
	require.Len(t, table.Grid().Rows, 1)
	assert.Equal(t, "New Task 2", table.Grid().Rows[0].Task.Name)

	_, err = store.Tasks.Get(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTable_VanishedRowReloads(t *testing.T) {
	ctx := context.Background()
	table, store, rec := newTable(t)
	task, err := table.AddTask(ctx)
	require.NoError(t, err)

	// Deleted behind the table's back.
	require.NoError(t, store.Tasks.Delete(ctx, task.ID))

	err = table.SetCell(ctx, task.ID, table.Grid().Columns[1].ID, "x")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, "That item no longer exists", rec.Last().Text)
	assert.Empty(t, table.Grid().Rows)
}

func TestTable_RejectsCellsOfOtherBoards(t *testing.T) {
	ctx := context.Background()
	table, store, rec := newTable(t)
	own, err := table.AddTask(ctx)
	require.NoError(t, err)

	other, err := store.Boards.Create(ctx, "Backlog")
	require.NoError(t, err)
	otherCols, err := store.Columns.EnsureDefaults(ctx, other.ID)
	require.NoError(t, err)
	otherTask, err := store.Tasks.Create(ctx, other.ID)
	require.NoError(t, err)

	err = table.SetCell(ctx, otherTask.ID, otherCols[1].ID, "x")
	assert.ErrorIs(t, err, repository.ErrValidation)
	assert.Equal(t, "Cell is not on board 'Sprint'", rec.Last().Text)

	_, err = table.CycleStatus(ctx, otherTask.ID, otherCols[0].ID)
	assert.ErrorIs(t, err, repository.ErrValidation)

	err = table.SetCell(ctx, own.ID, otherCols[1].ID, "x")
	assert.ErrorIs(t, err, repository.ErrValidation)

	value, err := store.Cells.Value(ctx, otherTask.ID, otherCols[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "", value)
	value, err = store.Cells.Value(ctx, otherTask.ID, otherCols[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

type failingCells struct {
	repository.CellRepository
}

func (failingCells) Set(context.Context, int64, int64, string) error {
	return errors.New("storage error: disk full")
}

func TestTable_StorageFailureKeepsGrid(t *testing.T) {
	ctx := context.Background()
	table, store, rec := newTable(t)
	task, err := table.AddTask(ctx)
	require.NoError(t, err)

	store.Cells = failingCells{store.Cells}
	broken, err := controller.NewTable(ctx, store, table.Grid().Board, rec)
	require.NoError(t, err)

	err = broken.SetCell(ctx, task.ID, broken.Grid().Columns[1].ID, "x")

	assert.Error(t, err)
	assert.Equal(t, notify.Message{Level: notify.LevelError, Text: "storage error: disk full"}, rec.Last())
	assert.Equal(t, "", broken.Grid().Rows[0].Values[broken.Grid().Columns[1].ID])
}
