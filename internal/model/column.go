package model

import (
	"strings"
	"time"
)

// ColumnType selects how a column's cells are edited and displayed.
type ColumnType string

const (
	ColumnText   ColumnType = "text"
	ColumnStatus ColumnType = "status"
	ColumnDate   ColumnType = "date"
)

// Valid reports whether t is one of the known column types.
func (t ColumnType) Valid() bool {
	switch t {
	case ColumnText, ColumnStatus, ColumnDate:
		return true
	}
	return false
}

// ParseColumnType maps user input ("Status", " date ") to a ColumnType.
func ParseColumnType(s string) (ColumnType, bool) {
	t := ColumnType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.Valid()
}

// Column is a board column. The table is named board_columns to stay clear of
// the reserved word.
type Column struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	BoardID   int64      `gorm:"not null;index"`
	Name      string     `gorm:"size:100;not null"`
	Type      ColumnType `gorm:"column:column_type;size:20;not null"`
	Position  int        `gorm:"not null;default:0"`
	CreatedAt time.Time

	Cells []Cell `gorm:"foreignKey:ColumnID;constraint:OnDelete:CASCADE"`
}

func (Column) TableName() string {
	return "board_columns"
}

// DefaultColumns are seeded into a board that has no columns yet.
func DefaultColumns(boardID int64) []Column {
	return []Column{
		{BoardID: boardID, Name: "Status", Type: ColumnStatus, Position: 0},
		{BoardID: boardID, Name: "Notes", Type: ColumnText, Position: 1},
		{BoardID: boardID, Name: "Due Date", Type: ColumnDate, Position: 2},
	}
}
