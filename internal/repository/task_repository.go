package repository

import (
	"context"
	"strings"

	"github.com/Thiccblique/Tusday.com/internal/model"

	"gorm.io/gorm"
)

type GormTaskRepository struct {
	db      *gorm.DB
	ownerID int64
}

var _ TaskRepository = (*GormTaskRepository)(nil)

func NewTaskRepository(db *gorm.DB, ownerID int64) *GormTaskRepository {
	return &GormTaskRepository{db: db, ownerID: ownerID}
}

// List returns the board's tasks in row order.
func (r *GormTaskRepository) List(ctx context.Context, boardID int64) ([]model.Task, error) {
	db := r.db.WithContext(ctx)
	if _, err := ownedBoard(db, r.ownerID, boardID); err != nil {
		return nil, err
	}

	var tasks []model.Task
	err := db.Where("board_id = ?", boardID).Order("position").Order("id").Find(&tasks).Error
	return tasks, wrapDBError(err)
}

// Get retrieves a task by its ID
func (r *GormTaskRepository) Get(ctx context.Context, id int64) (*model.Task, error) {
	return visibleTask(r.db.WithContext(ctx), r.ownerID, id)
}

// Create appends a task named after the current row count.
func (r *GormTaskRepository) Create(ctx context.Context, boardID int64) (*model.Task, error) {
	task := &model.Task{BoardID: boardID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedBoard(tx, r.ownerID, boardID); err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Task{}).Where("board_id = ?", boardID).Count(&count).Error; err != nil {
			return err
		}
		task.Name = model.NewTaskName(int(count))
		task.Position = int(count)
		return tx.Create(task).Error
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	return task, nil
}

func (r *GormTaskRepository) Rename(ctx context.Context, id int64, name string) (*model.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r.Get(ctx, id)
	}

	var task *model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := visibleTask(tx, r.ownerID, id)
		if err != nil {
			return err
		}
		t.Name = name
		if err := tx.Save(t).Error; err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	return task, nil
}

// Delete removes a task and its cells
func (r *GormTaskRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := visibleTask(tx, r.ownerID, id); err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.Cell{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, id).Error
	})
	return wrapDBError(err)
}
