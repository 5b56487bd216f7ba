package repository_test

import (
	"context"
	"testing"

	"github.com/Thiccblique/Tusday.com/internal/model"
	"github.com/Thiccblique/Tusday.com/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behaviour both backends must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) repository.Store) {
	ctx := context.Background()

	t.Run("DefaultColumnsSeededOnce", func(t *testing.T) {
		s := newStore(t)
		board, err := s.Boards.Create(ctx, "Roadmap")
		require.NoError(t, err)

		first, err := s.Columns.EnsureDefaults(ctx, board.ID)
		require.NoError(t, err)
		require.Len(t, first, 3)
		assert.Equal(t, "Status", first[0].Name)
		assert.Equal(t, model.ColumnStatus, first[0].Type)
		assert.Equal(t, "Notes", first[1].Name)
		assert.Equal(t, model.ColumnText, first[1].Type)
		assert.Equal(t, "Due Date", first[2].Name)
		assert.Equal(t, model.ColumnDate, first[2].Type)
		for i, c := range first {
			assert.Equal(t, i, c.Position)
		}

		second, err := s.Columns.EnsureDefaults(ctx, board.ID)
		require.NoError(t, err)
		assert.Equal(t, columnIDs(first), columnIDs(second))

		listed, err := s.Columns.List(ctx, board.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 3)
	})

	t.Run("DefaultsSkippedWhenBoardHasColumns", func(t *testing.T) {
		s := newStore(t)
		board, err := s.Boards.Create(ctx, "Custom")
		require.NoError(t, err)
		_, err = s.Columns.Create(ctx, board.ID, "Owner", model.ColumnText)
		require.NoError(t, err)

		cols, err := s.Columns.EnsureDefaults(ctx, board.ID)
		require.NoError(t, err)
		require.Len(t, cols, 1)
		assert.Equal(t, "Owner", cols[0].Name)
	})

	t.Run("CellRoundTripKeepsLatestOnly", func(t *testing.T) {
		s := newStore(t)
		board, task, cols := seedBoard(t, s)

		value, err := s.Cells.Value(ctx, task.ID, cols[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "", value)

		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[1].ID, "first draft"))
		value, err = s.Cells.Value(ctx, task.ID, cols[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "first draft", value)

		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[1].ID, "final"))
		value, err = s.Cells.Value(ctx, task.ID, cols[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "final", value)

		all, err := s.Cells.ListByBoard(ctx, board.ID)
		require.NoError(t, err)
		assert.Equal(t, map[model.CellKey]string{
			{TaskID: task.ID, ColumnID: cols[1].ID}: "final",
		}, all)
	})

	t.Run("InvalidDateStoredVerbatim", func(t *testing.T) {
		s := newStore(t)
		_, task, cols := seedBoard(t, s)

		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[2].ID, "next tuesday-ish"))
		value, err := s.Cells.Value(ctx, task.ID, cols[2].ID)
		require.NoError(t, err)
		assert.Equal(t, "next tuesday-ish", value)
	})

	t.Run("CycleStatusWalksTheCycle", func(t *testing.T) {
		s := newStore(t)
		_, task, cols := seedBoard(t, s)
		status := cols[0]

		var seen []string
		for i := 0; i < 5; i++ {
			next, err := repository.CycleStatus(ctx, s.Cells, task.ID, status.ID)
			require.NoError(t, err)
			seen = append(seen, next)
		}
		assert.Equal(t, []string{"Done", "Working On It", "Stuck", "", "Done"}, seen)

		stored, err := s.Cells.Value(ctx, task.ID, status.ID)
		require.NoError(t, err)
		assert.Equal(t, "Done", stored)
	})

	t.Run("CycleStatusResetsUnknownValue", func(t *testing.T) {
		s := newStore(t)
		_, task, cols := seedBoard(t, s)
		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[0].ID, "Blocked??"))

		next, err := repository.CycleStatus(ctx, s.Cells, task.ID, cols[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Done", next)
	})

	t.Run("CreateTaskNamesAndPositions", func(t *testing.T) {
		s := newStore(t)
		board, err := s.Boards.Create(ctx, "Sprint")
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			_, err := s.Tasks.Create(ctx, board.ID)
			require.NoError(t, err)
		}
		third, err := s.Tasks.Create(ctx, board.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Task 3", third.Name)
		assert.Equal(t, 2, third.Position)

		tasks, err := s.Tasks.List(ctx, board.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "New Task 1", tasks[0].Name)
		assert.Equal(t, third.ID, tasks[2].ID)
	})

	t.Run("CreateColumnAppends", func(t *testing.T) {
		s := newStore(t)
		board, _, _ := seedBoard(t, s)

		col, err := s.Columns.Create(ctx, board.ID, "  Owner ", model.ColumnText)
		require.NoError(t, err)
		assert.Equal(t, "Owner", col.Name)
		assert.Equal(t, 3, col.Position)

		_, err = s.Columns.Create(ctx, board.ID, "   ", model.ColumnText)
		assert.ErrorIs(t, err, repository.ErrValidation)

		_, err = s.Columns.Create(ctx, board.ID, "Budget", model.ColumnType("number"))
		assert.ErrorIs(t, err, repository.ErrValidation)

		cols, err := s.Columns.List(ctx, board.ID)
		require.NoError(t, err)
		assert.Len(t, cols, 4)
	})

	t.Run("DeleteColumnRemovesItsCells", func(t *testing.T) {
		s := newStore(t)
		board, task, cols := seedBoard(t, s)
		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[0].ID, "Done"))
		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[1].ID, "keep me"))

		require.NoError(t, s.Columns.Delete(ctx, cols[0].ID))

		all, err := s.Cells.ListByBoard(ctx, board.ID)
		require.NoError(t, err)
		assert.Equal(t, map[model.CellKey]string{
			{TaskID: task.ID, ColumnID: cols[1].ID}: "keep me",
		}, all)

		_, err = s.Columns.Get(ctx, cols[0].ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, s.Columns.Delete(ctx, cols[0].ID), repository.ErrNotFound)
	})

	t.Run("DeleteTaskRemovesItsCells", func(t *testing.T) {
		s := newStore(t)
		board, task, cols := seedBoard(t, s)
		other, err := s.Tasks.Create(ctx, board.ID)
		require.NoError(t, err)
		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[1].ID, "gone"))
		require.NoError(t, s.Cells.Set(ctx, other.ID, cols[1].ID, "stays"))

		require.NoError(t, s.Tasks.Delete(ctx, task.ID))

		all, err := s.Cells.ListByBoard(ctx, board.ID)
		require.NoError(t, err)
		assert.Equal(t, map[model.CellKey]string{
			{TaskID: other.ID, ColumnID: cols[1].ID}: "stays",
		}, all)

		_, err = s.Tasks.Get(ctx, task.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("RenameTaskIgnoresBlank", func(t *testing.T) {
		s := newStore(t)
		_, task, _ := seedBoard(t, s)

		renamed, err := s.Tasks.Rename(ctx, task.ID, "  Write docs  ")
		require.NoError(t, err)
		assert.Equal(t, "Write docs", renamed.Name)

		unchanged, err := s.Tasks.Rename(ctx, task.ID, " \t ")
		require.NoError(t, err)
		assert.Equal(t, "Write docs", unchanged.Name)

		got, err := s.Tasks.Get(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Write docs", got.Name)

		_, err = s.Tasks.Rename(ctx, 9999, "ghost")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("BoardValidationAndRename", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Boards.Create(ctx, "")
		assert.ErrorIs(t, err, repository.ErrValidation)

		board, err := s.Boards.Create(ctx, "Draft")
		require.NoError(t, err)

		renamed, err := s.Boards.Rename(ctx, board.ID, "Launch")
		require.NoError(t, err)
		assert.Equal(t, "Launch", renamed.Name)
		assert.False(t, renamed.UpdatedAt.Before(board.UpdatedAt))

		_, err = s.Boards.Rename(ctx, board.ID, " ")
		assert.ErrorIs(t, err, repository.ErrValidation)

		got, err := s.Boards.Get(ctx, board.ID)
		require.NoError(t, err)
		assert.Equal(t, "Launch", got.Name)

		_, err = s.Boards.Rename(ctx, 9999, "ghost")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, s.Boards.Delete(ctx, 9999), repository.ErrNotFound)
	})

	t.Run("DeleteBoardLeavesNoOrphans", func(t *testing.T) {
		s := newStore(t)
		board, task, cols := seedBoard(t, s)
		require.NoError(t, s.Cells.Set(ctx, task.ID, cols[0].ID, "Stuck"))
		keep, keepTask, keepCols := seedBoard(t, s)
		require.NoError(t, s.Cells.Set(ctx, keepTask.ID, keepCols[0].ID, "Done"))

		require.NoError(t, s.Boards.Delete(ctx, board.ID))

		_, err := s.Boards.Get(ctx, board.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = s.Tasks.Get(ctx, task.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		for _, c := range cols {
			_, err = s.Columns.Get(ctx, c.ID)
			assert.ErrorIs(t, err, repository.ErrNotFound)
		}
		_, err = s.Cells.Value(ctx, task.ID, cols[0].ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = s.Columns.List(ctx, board.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = s.Tasks.List(ctx, board.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = s.Cells.ListByBoard(ctx, board.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		value, err := s.Cells.Value(ctx, keepTask.ID, keepCols[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Done", value)
		boards, err := s.Boards.List(ctx)
		require.NoError(t, err)
		require.Len(t, boards, 1)
		assert.Equal(t, keep.ID, boards[0].ID)
	})

	t.Run("CrossBoardCellWriteRejected", func(t *testing.T) {
		s := newStore(t)
		_, task, _ := seedBoard(t, s)
		_, _, otherCols := seedBoard(t, s)

		err := s.Cells.Set(ctx, task.ID, otherCols[1].ID, "nope")
		assert.ErrorIs(t, err, repository.ErrValidation)
	})

	t.Run("MissingParentsAreNotFound", func(t *testing.T) {
		s := newStore(t)

		_, err := s.Tasks.Create(ctx, 4242)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = s.Columns.Create(ctx, 4242, "Notes", model.ColumnText)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = s.Columns.EnsureDefaults(ctx, 4242)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, s.Cells.Set(ctx, 1, 1, "x"), repository.ErrNotFound)
	})
}

// seedBoard creates a board with default columns and one task.
func seedBoard(t *testing.T, s repository.Store) (*model.Board, *model.Task, []model.Column) {
	t.Helper()
	ctx := context.Background()

	board, err := s.Boards.Create(ctx, "Board")
	require.NoError(t, err)
	cols, err := s.Columns.EnsureDefaults(ctx, board.ID)
	require.NoError(t, err)
	task, err := s.Tasks.Create(ctx, board.ID)
	require.NoError(t, err)
	return board, task, cols
}

func columnIDs(cols []model.Column) []int64 {
	ids := make([]int64, len(cols))
	for i, c := range cols {
		ids[i] = c.ID
	}
	return ids
}
