package model

import (
	"time"
)

type Board struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Columns []Column `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
	Tasks   []Task   `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}
