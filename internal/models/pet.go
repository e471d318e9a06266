package models

import "time"

type Pet struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"not null" json:"clienteId"`

	Name      string     `gorm:"size:100;not null" json:"nome"`
	Type      string     `gorm:"size:50;not null" json:"tipo"`
	Size      string     `gorm:"size:20;not null" json:"porte"`
	BirthDate *time.Time `json:"dataNasc"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
