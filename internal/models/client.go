package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"nome"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20;not null" json:"telefone"`

	Address *Address `gorm:"constraint:OnDelete:CASCADE;" json:"endereco,omitempty"`
	Pets    []Pet    `gorm:"constraint:OnDelete:CASCADE;" json:"pets,omitempty"`
	Orders  []Order  `gorm:"constraint:OnDelete:CASCADE;" json:"pedidos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
