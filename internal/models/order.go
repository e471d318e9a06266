package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	Code     string `gorm:"size:36;primaryKey" json:"codigo"`
	Quantity int    `gorm:"not null" json:"quantidade"`

	ClientID uint    `gorm:"not null" json:"clienteId"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cliente,omitempty"`

	ProductID uint     `gorm:"not null" json:"produtoId"`
	Product   *Product `gorm:"constraint:OnUpdate:CASCADE;" json:"produto,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Code == "" {
		o.Code = uuid.NewString()
	}
	return nil
}
