package model

import (
	"fmt"
	"time"
)

type Task struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	BoardID   int64  `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	Position  int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Cells []Cell `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// NewTaskName is the generated name for a task appended after count others.
func NewTaskName(count int) string {
	return fmt.Sprintf("New Task %d", count+1)
}
