package domain

import "time"

type Student struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	Mobile       string       `json:"mobile"`
	PasswordHash string       `gorm:"not null" json:"-"`
	IsVerified   bool         `gorm:"not null;default:false" json:"is_verified"`
	IsBlocked    bool         `gorm:"not null;default:false" json:"is_blocked"`
	Enrollments  []Enrollment `gorm:"foreignKey:StudentID" json:"enrollments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
