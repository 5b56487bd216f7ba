package repository

import (
	"context"
	"strings"

	"github.com/Thiccblique/Tusday.com/internal/model"

	"gorm.io/gorm"
)

type GormBoardRepository struct {
	db      *gorm.DB
	ownerID int64
}

var _ BoardRepository = (*GormBoardRepository)(nil)

func NewBoardRepository(db *gorm.DB, ownerID int64) *GormBoardRepository {
	return &GormBoardRepository{db: db, ownerID: ownerID}
}

// List returns the owner's boards, most recently updated first.
func (r *GormBoardRepository) List(ctx context.Context) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Where("user_id = ?", r.ownerID).
		Order("updated_at DESC").
		Order("id DESC").
		Find(&boards).Error
	if err != nil {
		return nil, wrapDBError(err)
	}
	return boards, nil
}

func (r *GormBoardRepository) Get(ctx context.Context, id int64) (*model.Board, error) {
	return ownedBoard(r.db.WithContext(ctx), r.ownerID, id)
}

func (r *GormBoardRepository) Create(ctx context.Context, name string) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("board name is required")
	}

	board := &model.Board{Name: name, UserID: r.ownerID}
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return nil, wrapDBError(err)
	}
	return board, nil
}

func (r *GormBoardRepository) Rename(ctx context.Context, id int64, name string) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("board name is required")
	}

	var board *model.Board
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b, err := ownedBoard(tx, r.ownerID, id)
		if err != nil {
			return err
		}
		b.Name = name
		if err := tx.Save(b).Error; err != nil {
			return err
		}
		board = b
		return nil
	})
	if err != nil {
		return nil, wrapDBError(err)
	}
	return board, nil
}

// Delete removes the board and its children explicitly, so the cascade holds
// even on a sqlite connection opened without foreign key enforcement.
func (r *GormBoardRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedBoard(tx, r.ownerID, id); err != nil {
			return err
		}

		boardTasks := tx.Session(&gorm.Session{NewDB: true}).Model(&model.Task{}).Select("id").Where("board_id = ?", id)
		if err := tx.Where("task_id IN (?)", boardTasks).Delete(&model.Cell{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&model.Column{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Board{}, id).Error
	})
	return wrapDBError(err)
}
