package repository

import (
	"errors"

	"github.com/Thiccblique/Tusday.com/internal/model"

	"gorm.io/gorm"
)

// Every gorm repository is bound to one owner. Rows under another owner's
// boards are reported as ErrNotFound.

// ownedBoard loads board id if it belongs to ownerID.
func ownedBoard(tx *gorm.DB, ownerID, id int64) (*model.Board, error) {
	var board model.Board
	err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("board", id)
		}
		return nil, wrapDBError(err)
	}
	return &board, nil
}

// ownedBoardIDs is a subquery selecting the ids of ownerID's boards.
func ownedBoardIDs(tx *gorm.DB, ownerID int64) *gorm.DB {
	return tx.Session(&gorm.Session{NewDB: true}).
		Model(&model.Board{}).
		Select("id").
		Where("user_id = ?", ownerID)
}

// visibleColumn loads column id if its board belongs to ownerID.
func visibleColumn(tx *gorm.DB, ownerID, id int64) (*model.Column, error) {
	var column model.Column
	err := tx.Where("id = ? AND board_id IN (?)", id, ownedBoardIDs(tx, ownerID)).First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("column", id)
		}
		return nil, wrapDBError(err)
	}
	return &column, nil
}

func listColumns(tx *gorm.DB, boardID int64) ([]model.Column, error) {
	var columns []model.Column
	err := tx.Where("board_id = ?", boardID).Order("position").Order("id").Find(&columns).Error
	return columns, wrapDBError(err)
}

// visibleTask loads task id if its board belongs to ownerID.
func visibleTask(tx *gorm.DB, ownerID, id int64) (*model.Task, error) {
	var task model.Task
	err := tx.Where("id = ? AND board_id IN (?)", id, ownedBoardIDs(tx, ownerID)).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("task", id)
		}
		return nil, wrapDBError(err)
	}
	return &task, nil
}
