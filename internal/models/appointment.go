package models

import "time"

// Agendamento liga um pet a um serviço numa data. Também é a
// tabela de junção da relação N:M entre Pet e Service.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ScheduledDate time.Time `gorm:"not null" json:"dataAgendada"`
	Done          bool      `gorm:"default:false" json:"realizado"`

	PetID uint `gorm:"not null" json:"petId"`
	Pet   *Pet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet,omitempty"`

	ServiceID uint     `gorm:"not null" json:"servicoId"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"servico,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
