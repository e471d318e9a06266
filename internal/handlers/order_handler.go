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

type OrderHandler struct {
	db *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

// --------- Requests ---------

type OrderRequest struct {
	Codigo     string `json:"codigo" validate:"omitempty,uuid4"`
	Quantidade int    `json:"quantidade" validate:"required,gt=0"`
	ClienteID  uint   `json:"clienteId" validate:"required,gt=0"`
	ProdutoID  uint   `json:"produtoId" validate:"required,gt=0"`
}

// --------- Handlers ---------

func (h *OrderHandler) List(c *gin.Context) {
	var orders []models.Order
	if err := h.db.Order("created_at ASC").Find(&orders).Error; err != nil {
		internalErr(c, "failed_to_list_orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	var order models.Order
	if err := h.db.First(&order, "code = ?", c.Param("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListByProduct lista os pedidos que contêm o produto. Para as rotas de
// travessia, resultado vazio vale 404.
func (h *OrderHandler) ListByProduct(c *gin.Context) {
	var orders []models.Order
	err := h.db.Preload("Client").Preload("Product").
		Where("product_id = ?", c.Param("id")).
		Find(&orders).Error
	if err != nil {
		internalErr(c, "failed_to_list_orders", err)
		return
	}
	if len(orders) == 0 {
		httperr.NotFound(c, "orders_not_found", "Nenhum pedido encontrado com o produto especificado.")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ListByClient(c *gin.Context) {
	var orders []models.Order
	err := h.db.Preload("Client").Preload("Product").
		Where("client_id = ?", c.Param("id")).
		Find(&orders).Error
	if err != nil {
		internalErr(c, "failed_to_list_orders", err)
		return
	}
	if len(orders) == 0 {
		httperr.NotFound(c, "orders_not_found", "Nenhum pedido encontrado com o cliente especificado.")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create aceita um pedido ou um array de pedidos. O lote inteiro roda
// numa única transação: ou tudo entra, ou nada entra.
func (h *OrderHandler) Create(c *gin.Context) {
	reqs, isBatch, err := bindOneOrMany[OrderRequest](c)
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

	orders := make([]models.Order, 0, len(reqs))
	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		for _, req := range reqs {
			if _, err := findRef[models.Client](tx, req.ClienteID, "Cliente"); err != nil {
				return err
			}
			if _, err := findRef[models.Product](tx, req.ProdutoID, "Produto"); err != nil {
				return err
			}

			order := models.Order{
				Code:      req.Codigo,
				Quantity:  req.Quantidade,
				ClientID:  req.ClienteID,
				ProductID: req.ProdutoID,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			orders = append(orders, order)
		}
		return nil
	})
	if txErr != nil {
		if re, ok := httperr.AsRef(txErr); ok {
			httperr.NotFound(c, "reference_not_found", re.Error())
			return
		}
		if dbpkg.IsUniqueViolation(txErr) {
			httperr.Conflict(c, "code_taken", "Já existe um pedido com o código informado.")
			return
		}
		internalErr(c, "failed_to_create_order", txErr)
		return
	}

	if isBatch {
		c.JSON(http.StatusCreated, orders)
		return
	}
	c.JSON(http.StatusCreated, orders[0])
}

func (h *OrderHandler) Update(c *gin.Context) {
	var order models.Order
	if err := h.db.First(&order, "code = ?", c.Param("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_order", err)
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	if _, err := findRef[models.Client](h.db, req.ClienteID, "Cliente"); err != nil {
		writeFindErr(c, err, "failed_to_update_order")
		return
	}
	if _, err := findRef[models.Product](h.db, req.ProdutoID, "Produto"); err != nil {
		writeFindErr(c, err, "failed_to_update_order")
		return
	}

	order.Quantity = req.Quantidade
	order.ClientID = req.ClienteID
	order.ProductID = req.ProdutoID

	if err := h.db.Omit("Client", "Product").Save(&order).Error; err != nil {
		internalErr(c, "failed_to_update_order", err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	var order models.Order
	if err := h.db.First(&order, "code = ?", c.Param("code")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "order_not_found", "Pedido não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_order", err)
		return
	}

	if err := h.db.Delete(&order).Error; err != nil {
		internalErr(c, "failed_to_delete_order", err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteByClient(c *gin.Context) {
	if _, err := findRef[models.Client](h.db, c.Param("id"), "Cliente"); err != nil {
		writeFindErr(c, err, "failed_to_delete_orders")
		return
	}

	res := h.db.Where("client_id = ?", c.Param("id")).Delete(&models.Order{})
	if res.Error != nil {
		internalErr(c, "failed_to_delete_orders", res.Error)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pedidos do cliente removidos.",
		"total":   res.RowsAffected,
	})
}

func (h *OrderHandler) DeleteByProduct(c *gin.Context) {
	if _, err := findRef[models.Product](h.db, c.Param("id"), "Produto"); err != nil {
		writeFindErr(c, err, "failed_to_delete_orders")
		return
	}

	res := h.db.Where("product_id = ?", c.Param("id")).Delete(&models.Order{})
	if res.Error != nil {
		internalErr(c, "failed_to_delete_orders", res.Error)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Pedidos do produto removidos.",
		"total":   res.RowsAffected,
	})
}
