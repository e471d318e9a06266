package models

import "time"

// Endereço do cliente, criado junto com o cadastro (1:1)
type Address struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	ClientID uint `gorm:"uniqueIndex" json:"clienteId"`

	UF     string `gorm:"size:2;not null" json:"uf"`
	City   string `gorm:"size:100;not null" json:"cidade"`
	CEP    string `gorm:"size:9;not null" json:"cep"`
	Street string `gorm:"size:150;not null" json:"rua"`
	Number int    `gorm:"not null" json:"numero"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
