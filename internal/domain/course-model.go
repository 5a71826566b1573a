package domain

import "time"

type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	ImageURL    string    `gorm:"not null" json:"image_url"`
	Description string    `gorm:"not null" json:"description"`
	Price       int64     `gorm:"not null" json:"price"` // whole INR
	AdminID     uint      `gorm:"index;not null" json:"admin_id"`
	BuyCount    int64     `gorm:"not null;default:0" json:"buy_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
