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

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceRequest struct {
	Nome  string   `json:"nome" validate:"required,max=130"`
	Preco *float64 `json:"preco" validate:"required,gte=0"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		internalErr(c, "failed_to_list_services", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_service", err)
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	service := models.Service{
		Name:  req.Nome,
		Price: *req.Preco,
	}

	if err := h.db.Create(&service).Error; err != nil {
		internalErr(c, "failed_to_create_service", err)
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_service", err)
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	service.Name = req.Nome
	service.Price = *req.Preco

	if err := h.db.Save(&service).Error; err != nil {
		internalErr(c, "failed_to_update_service", err)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	var service models.Service
	if err := h.db.First(&service, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_service", err)
		return
	}

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", service.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&service).Error
	})
	if txErr != nil {
		internalErr(c, "failed_to_delete_service", txErr)
		return
	}

	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) DeleteAll(c *gin.Context) {
	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Service{}).Error
	})
	if txErr != nil {
		internalErr(c, "failed_to_delete_services", txErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todos os serviços foram removidos."})
}
