package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petmanage/petshop-api/internal/httperr"
	"github.com/petmanage/petshop-api/internal/models"
	"github.com/petmanage/petshop-api/internal/validation"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

// --------- Requests ---------

type CreatePetRequest struct {
	Nome      string `json:"nome" validate:"required"`
	Tipo      string `json:"tipo" validate:"required"`
	Porte     string `json:"porte" validate:"required"`
	DataNasc  string `json:"dataNasc" validate:"omitempty,data"`
	ClienteID uint   `json:"clienteId" validate:"required,gt=0"`
}

type UpdatePetRequest struct {
	Nome      string `json:"nome" validate:"required"`
	Tipo      string `json:"tipo" validate:"required"`
	Porte     string `json:"porte" validate:"required"`
	DataNasc  string `json:"dataNasc" validate:"omitempty,data"`
	ClienteID uint   `json:"clienteId" validate:"omitempty,gt=0"`
}

func parseBirthDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := validation.ParseDate(s)
	if err != nil {
		return nil
	}
	return &t
}

// --------- Handlers ---------

func (h *PetHandler) List(c *gin.Context) {
	var pets []models.Pet
	if err := h.db.Order("id ASC").Find(&pets).Error; err != nil {
		internalErr(c, "failed_to_list_pets", err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_pet", err)
		return
	}
	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	if _, err := findRef[models.Client](h.db, req.ClienteID, "Cliente"); err != nil {
		writeFindErr(c, err, "failed_to_create_pet")
		return
	}

	pet := models.Pet{
		ClientID:  req.ClienteID,
		Name:      req.Nome,
		Type:      req.Tipo,
		Size:      req.Porte,
		BirthDate: parseBirthDate(req.DataNasc),
	}

	if err := h.db.Create(&pet).Error; err != nil {
		internalErr(c, "failed_to_create_pet", err)
		return
	}

	c.JSON(http.StatusCreated, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_pet", err)
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	if req.ClienteID != 0 {
		if _, err := findRef[models.Client](h.db, req.ClienteID, "Cliente"); err != nil {
			writeFindErr(c, err, "failed_to_update_pet")
			return
		}
		pet.ClientID = req.ClienteID
	}

	pet.Name = req.Nome
	pet.Type = req.Tipo
	pet.Size = req.Porte
	pet.BirthDate = parseBirthDate(req.DataNasc)

	if err := h.db.Save(&pet).Error; err != nil {
		internalErr(c, "failed_to_update_pet", err)
		return
	}

	c.JSON(http.StatusOK, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	var pet models.Pet
	if err := h.db.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "pet_not_found", "Pet não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_pet", err)
		return
	}

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", pet.ID).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pet).Error
	})
	if txErr != nil {
		internalErr(c, "failed_to_delete_pet", txErr)
		return
	}

	c.JSON(http.StatusOK, pet)
}
