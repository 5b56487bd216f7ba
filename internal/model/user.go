package model

import (
	"time"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"size:50;uniqueIndex;not null"`
	Email        string    `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`

	// SessionTag identifies a guest session in logs. It is never persisted.
	SessionTag string `gorm:"-"`

	Boards []Board `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsGuest reports whether u is a throwaway guest identity.
func (u User) IsGuest() bool {
	return u.ID == 0 && u.SessionTag != ""
}
