package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/petmanage/petshop-api/internal/db"
	"github.com/petmanage/petshop-api/internal/httperr"
	"github.com/petmanage/petshop-api/internal/models"
	"github.com/petmanage/petshop-api/internal/validation"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type AddressRequest struct {
	UF     string `json:"uf" validate:"required,len=2"`
	Cidade string `json:"cidade" validate:"required"`
	CEP    string `json:"cep" validate:"required,cep"`
	Rua    string `json:"rua" validate:"required"`
	Numero int    `json:"numero" validate:"required,gt=0"`
}

type ClientRequest struct {
	Nome     string          `json:"nome" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Telefone string          `json:"telefone" validate:"required"`
	Endereco *AddressRequest `json:"endereco" validate:"required"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.Order("id ASC").Find(&clients).Error; err != nil {
		internalErr(c, "failed_to_list_clients", err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) Get(c *gin.Context) {
	var client models.Client
	err := h.db.Preload("Address").First(&client, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_client", err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) GetAddress(c *gin.Context) {
	var address models.Address
	err := h.db.First(&address, "client_id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "address_not_found", "Cliente não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_address", err)
		return
	}
	c.JSON(http.StatusOK, address)
}

func (h *ClientHandler) ListPets(c *gin.Context) {
	if _, err := findRef[models.Client](h.db, c.Param("id"), "Cliente"); err != nil {
		writeFindErr(c, err, "failed_to_list_pets")
		return
	}

	var pets []models.Pet
	if err := h.db.Where("client_id = ?", c.Param("id")).Find(&pets).Error; err != nil {
		internalErr(c, "failed_to_list_pets", err)
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	client := models.Client{
		Name:  req.Nome,
		Email: req.Email,
		Phone: req.Telefone,
		Address: &models.Address{
			UF:     req.Endereco.UF,
			City:   req.Endereco.Cidade,
			CEP:    req.Endereco.CEP,
			Street: req.Endereco.Rua,
			Number: req.Endereco.Numero,
		},
	}

	if err := h.db.Create(&client).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			httperr.Conflict(c, "email_taken", "Já existe um cliente com o e-mail informado.")
			return
		}
		internalErr(c, "failed_to_create_client", err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var client models.Client
	err := h.db.Preload("Address").First(&client, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_client", err)
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	client.Name = req.Nome
	client.Email = req.Email
	client.Phone = req.Telefone

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).
			Where("client_id = ?", client.ID).
			Updates(map[string]any{
				"uf":     req.Endereco.UF,
				"city":   req.Endereco.Cidade,
				"cep":    req.Endereco.CEP,
				"street": req.Endereco.Rua,
				"number": req.Endereco.Numero,
			}).Error; err != nil {
			return err
		}
		return tx.Omit("Address").Save(&client).Error
	})
	if txErr != nil {
		if dbpkg.IsUniqueViolation(txErr) {
			httperr.Conflict(c, "email_taken", "Já existe um cliente com o e-mail informado.")
			return
		}
		internalErr(c, "failed_to_update_client", txErr)
		return
	}

	if client.Address != nil {
		client.Address.UF = req.Endereco.UF
		client.Address.City = req.Endereco.Cidade
		client.Address.CEP = req.Endereco.CEP
		client.Address.Street = req.Endereco.Rua
		client.Address.Number = req.Endereco.Numero
	}

	c.JSON(http.StatusOK, client)
}

// Delete remove o cliente e tudo que depende dele: endereço, pets,
// pedidos e os agendamentos dos pets removidos.
func (h *ClientHandler) Delete(c *gin.Context) {
	var client models.Client
	err := h.db.Preload("Address").First(&client, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_client", err)
		return
	}

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(
			"pet_id IN (?)",
			tx.Model(&models.Pet{}).Select("id").Where("client_id = ?", client.ID),
		).Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Pet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		return tx.Delete(&client).Error
	})
	if txErr != nil {
		internalErr(c, "failed_to_delete_client", txErr)
		return
	}

	c.JSON(http.StatusOK, client)
}

func writeFindErr(c *gin.Context, err error, internalCode string) {
	if re, ok := httperr.AsRef(err); ok {
		httperr.NotFound(c, "reference_not_found", re.Error())
		return
	}
	internalErr(c, internalCode, err)
}
