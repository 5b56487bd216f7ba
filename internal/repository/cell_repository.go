package repository

import (
	"context"
	"errors"

	"github.com/Thiccblique/Tusday.com/internal/model"

	"gorm.io/gorm"
)

type GormCellRepository struct {
	db      *gorm.DB
	ownerID int64
}

var _ CellRepository = (*GormCellRepository)(nil)

func NewCellRepository(db *gorm.DB, ownerID int64) *GormCellRepository {
	return &GormCellRepository{db: db, ownerID: ownerID}
}

func (r *GormCellRepository) Value(ctx context.Context, taskID, columnID int64) (string, error) {
	db := r.db.WithContext(ctx)
	if _, _, err := r.pair(db, taskID, columnID); err != nil {
		return "", err
	}

	var cell model.Cell
	err := db.Where("task_id = ? AND column_id = ?", taskID, columnID).First(&cell).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", wrapDBError(err)
	}
	return cell.Text(), nil
}

// Set looks the cell up before writing so a (task, column) pair never gets a
// second row.
func (r *GormCellRepository) Set(ctx context.Context, taskID, columnID int64, value string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, _, err := r.pair(tx, taskID, columnID); err != nil {
			return err
		}

		var existing model.Cell
		err := tx.Where("task_id = ? AND column_id = ?", taskID, columnID).First(&existing).Error
		if err == nil {
			existing.Value = &value
			return tx.Save(&existing).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&model.Cell{TaskID: taskID, ColumnID: columnID, Value: &value}).Error
	})
	return wrapDBError(err)
}

// ListByBoard loads every cell of the board with a single query.
func (r *GormCellRepository) ListByBoard(ctx context.Context, boardID int64) (map[model.CellKey]string, error) {
	db := r.db.WithContext(ctx)
	if _, err := ownedBoard(db, r.ownerID, boardID); err != nil {
		return nil, err
	}

	var cells []model.Cell
	boardTasks := db.Session(&gorm.Session{NewDB: true}).
		Model(&model.Task{}).
		Select("id").
		Where("board_id = ?", boardID)
	if err := db.Where("task_id IN (?)", boardTasks).Find(&cells).Error; err != nil {
		return nil, wrapDBError(err)
	}

	values := make(map[model.CellKey]string, len(cells))
	for _, c := range cells {
		values[model.CellKey{TaskID: c.TaskID, ColumnID: c.ColumnID}] = c.Text()
	}
	return values, nil
}

// pair loads the task and column and checks they share a board.
func (r *GormCellRepository) pair(tx *gorm.DB, taskID, columnID int64) (*model.Task, *model.Column, error) {
	task, err := visibleTask(tx, r.ownerID, taskID)
	if err != nil {
		return nil, nil, err
	}
	column, err := visibleColumn(tx, r.ownerID, columnID)
	if err != nil {
		return nil, nil, err
	}
	if task.BoardID != column.BoardID {
		return nil, nil, validationError("task and column belong to different boards")
	}
	return task, column, nil
}
