package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:130;not null" json:"nome"`
	Price float64 `gorm:"not null" json:"preco"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
