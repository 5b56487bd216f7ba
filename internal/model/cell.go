package model

import (
	"time"
)

// Cell holds the value of one task in one column. A missing cell reads as "".
type Cell struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	TaskID    int64   `gorm:"not null;uniqueIndex:idx_task_cells_task_column"`
	ColumnID  int64   `gorm:"not null;uniqueIndex:idx_task_cells_task_column"`
	Value     *string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cell) TableName() string {
	return "task_cells"
}

// Text returns the stored value, or "" when none was written.
func (c Cell) Text() string {
	if c.Value == nil {
		return ""
	}
	return *c.Value
}

// CellKey addresses a cell within a board.
type CellKey struct {
	TaskID   int64
	ColumnID int64
}
