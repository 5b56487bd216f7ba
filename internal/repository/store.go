package repository

import (
	"gorm.io/gorm"
)

// NewGormStore returns a persistent Store scoped to the boards of ownerID.
func NewGormStore(db *gorm.DB, ownerID int64) Store {
	return Store{
		Boards:  NewBoardRepository(db, ownerID),
		Columns: NewColumnRepository(db, ownerID),
		Tasks:   NewTaskRepository(db, ownerID),
		Cells:   NewCellRepository(db, ownerID),
	}
}
