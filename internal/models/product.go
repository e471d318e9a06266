package models

import "time"

// Categorias aceitas para produtos
const (
	CategoryHygiene = "Higiene"
	CategoryToys    = "Brinquedos"
	CategoryComfort = "Conforto"
)

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string    `gorm:"size:100;not null" json:"nome"`
	Price        float64   `gorm:"not null" json:"preco"`
	Description  string    `gorm:"size:150;not null" json:"descricao"`
	Discount     float64   `gorm:"not null" json:"desconto"`
	DiscountEnds time.Time `gorm:"not null" json:"dataDesconto"`
	Category     string    `gorm:"size:50;not null" json:"categoria"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
