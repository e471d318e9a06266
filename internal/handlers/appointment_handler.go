package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petmanage/petshop-api/internal/httperr"
	"github.com/petmanage/petshop-api/internal/models"
	"github.com/petmanage/petshop-api/internal/validation"
)

type AppointmentHandler struct {
	db *gorm.DB
}

func NewAppointmentHandler(db *gorm.DB) *AppointmentHandler {
	return &AppointmentHandler{db: db}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	DataAgendada string `json:"dataAgendada" validate:"required,data"`
	Realizado    *bool  `json:"realizado"`
	PetID        uint   `json:"petId" validate:"required,gt=0"`
	ServicoID    uint   `json:"servicoId" validate:"required,gt=0"`
}

type UpdateAppointmentRequest struct {
	ID           uint   `json:"id" validate:"required,gt=0"`
	DataAgendada string `json:"dataAgendada" validate:"required,data"`
	Realizado    *bool  `json:"realizado"`
	PetID        uint   `json:"petId" validate:"required,gt=0"`
	ServicoID    uint   `json:"servicoId" validate:"required,gt=0"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	var appointments []models.Appointment
	if err := h.db.Order("id ASC").Find(&appointments).Error; err != nil {
		internalErr(c, "failed_to_list_appointments", err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	var appointment models.Appointment
	err := h.db.Preload("Pet").Preload("Service").
		First(&appointment, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_appointment", err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// Create aceita um agendamento ou um array. O lote roda numa única
// transação, sem sucesso parcial: a primeira referência ausente
// desfaz tudo que já tinha entrado.
func (h *AppointmentHandler) Create(c *gin.Context) {
	reqs, isBatch, err := bindOneOrMany[CreateAppointmentRequest](c)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if len(reqs) == 0 {
		httperr.BadRequest(c, "invalid_request", "O corpo não pode ser vazio.")
		return
	}

	if isBatch {
		if errs := validation.Slice(reqs); errs != nil {
			httperr.BadRequest(c, "validation_failed", errs)
			return
		}
	} else if errs := validation.Struct(reqs[0]); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	appointments := make([]models.Appointment, 0, len(reqs))
	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		for _, req := range reqs {
			ap, err := h.buildAppointment(tx, req)
			if err != nil {
				return err
			}
			if err := tx.Create(ap).Error; err != nil {
				return err
			}
			appointments = append(appointments, *ap)
		}
		return nil
	})
	if txErr != nil {
		if re, ok := httperr.AsRef(txErr); ok {
			httperr.NotFound(c, "reference_not_found", re.Error())
			return
		}
		internalErr(c, "failed_to_create_appointment", txErr)
		return
	}

	if isBatch {
		c.JSON(http.StatusCreated, appointments)
		return
	}
	c.JSON(http.StatusCreated, appointments[0])
}

func (h *AppointmentHandler) buildAppointment(tx *gorm.DB, req CreateAppointmentRequest) (*models.Appointment, error) {
	if _, err := findRef[models.Pet](tx, req.PetID, "Pet"); err != nil {
		return nil, err
	}
	if _, err := findRef[models.Service](tx, req.ServicoID, "Serviço"); err != nil {
		return nil, err
	}

	date, err := validation.ParseDate(req.DataAgendada)
	if err != nil {
		return nil, err
	}

	ap := models.Appointment{
		ScheduledDate: date,
		PetID:         req.PetID,
		ServiceID:     req.ServicoID,
	}
	if req.Realizado != nil {
		ap.Done = *req.Realizado
	}
	return &ap, nil
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var appointment models.Appointment
	if err := h.db.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_appointment", err)
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	if err := h.applyUpdate(h.db, &appointment, req); err != nil {
		if re, ok := httperr.AsRef(err); ok {
			httperr.NotFound(c, "reference_not_found", re.Error())
			return
		}
		internalErr(c, "failed_to_update_appointment", err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateBatch edita vários agendamentos de uma vez; cada item carrega
// o próprio id. Mesma regra do lote de criação: tudo ou nada.
func (h *AppointmentHandler) UpdateBatch(c *gin.Context) {
	var reqs []UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if len(reqs) == 0 {
		httperr.BadRequest(c, "invalid_request", "O corpo não pode ser vazio.")
		return
	}

	if errs := validation.Slice(reqs); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	appointments := make([]models.Appointment, 0, len(reqs))
	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		for _, req := range reqs {
			ap, err := findRef[models.Appointment](tx, req.ID, "Agendamento")
			if err != nil {
				return err
			}
			if err := h.applyUpdate(tx, ap, CreateAppointmentRequest{
				DataAgendada: req.DataAgendada,
				Realizado:    req.Realizado,
				PetID:        req.PetID,
				ServicoID:    req.ServicoID,
			}); err != nil {
				return err
			}
			appointments = append(appointments, *ap)
		}
		return nil
	})
	if txErr != nil {
		if re, ok := httperr.AsRef(txErr); ok {
			httperr.NotFound(c, "reference_not_found", re.Error())
			return
		}
		internalErr(c, "failed_to_update_appointments", txErr)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) applyUpdate(tx *gorm.DB, ap *models.Appointment, req CreateAppointmentRequest) error {
	if _, err := findRef[models.Pet](tx, req.PetID, "Pet"); err != nil {
		return err
	}
	if _, err := findRef[models.Service](tx, req.ServicoID, "Serviço"); err != nil {
		return err
	}

	date, err := validation.ParseDate(req.DataAgendada)
	if err != nil {
		return err
	}

	ap.ScheduledDate = date
	ap.PetID = req.PetID
	ap.ServiceID = req.ServicoID
	if req.Realizado != nil {
		ap.Done = *req.Realizado
	}

	return tx.Omit("Pet", "Service").Save(ap).Error
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	var appointment models.Appointment
	if err := h.db.First(&appointment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_appointment", err)
		return
	}

	if err := h.db.Delete(&appointment).Error; err != nil {
		internalErr(c, "failed_to_delete_appointment", err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}
