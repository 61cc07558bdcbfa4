package models

import "time"

// User represents an account in the workout log.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `json:"created_at"`

	// Workouts owned by this user. Deleting the user cascades to these rows.
	Workouts []Workout `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
