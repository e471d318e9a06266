package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petmanage/petshop-api/internal/httperr"
	"github.com/petmanage/petshop-api/internal/models"
	"github.com/petmanage/petshop-api/internal/validation"
)

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// --------- Requests ---------

type ProductRequest struct {
	Nome         string   `json:"nome" validate:"required"`
	Preco        *float64 `json:"preco" validate:"required,gte=0"`
	Descricao    string   `json:"descricao" validate:"required,max=150"`
	Desconto     *float64 `json:"desconto" validate:"required,gte=0,lte=1"`
	DataDesconto string   `json:"dataDesconto" validate:"required,datafutura"`
	Categoria    string   `json:"categoria" validate:"required,categoria"`
}

// --------- Handlers ---------

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.Order("id ASC").Find(&products).Error; err != nil {
		internalErr(c, "failed_to_list_products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Search filtra o catálogo por nome (LIKE) e/ou categoria.
func (h *ProductHandler) Search(c *gin.Context) {
	nome := strings.ToLower(strings.TrimSpace(c.Query("nome")))
	categoria := strings.TrimSpace(c.Query("categoria"))

	q := h.db.Order("id ASC")
	if nome != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+nome+"%")
	}
	if categoria != "" {
		q = q.Where("category = ?", categoria)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		internalErr(c, "failed_to_search_products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	ends, err := validation.ParseDate(req.DataDesconto)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product := models.Product{
		Name:         req.Nome,
		Price:        *req.Preco,
		Description:  req.Descricao,
		Discount:     *req.Desconto,
		DiscountEnds: ends,
		Category:     req.Categoria,
	}

	if err := h.db.Create(&product).Error; err != nil {
		internalErr(c, "failed_to_create_product", err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_product", err)
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if errs := validation.Struct(req); errs != nil {
		httperr.BadRequest(c, "validation_failed", errs)
		return
	}

	ends, err := validation.ParseDate(req.DataDesconto)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product.Name = req.Nome
	product.Price = *req.Preco
	product.Description = req.Descricao
	product.Discount = *req.Desconto
	product.DiscountEnds = ends
	product.Category = req.Categoria

	if err := h.db.Save(&product).Error; err != nil {
		internalErr(c, "failed_to_update_product", err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	var product models.Product
	if err := h.db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
			return
		}
		internalErr(c, "failed_to_get_product", err)
		return
	}

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if txErr != nil {
		internalErr(c, "failed_to_delete_product", txErr)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteAll(c *gin.Context) {
	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Product{}).Error
	})
	if txErr != nil {
		internalErr(c, "failed_to_delete_products", txErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Todos os produtos foram removidos."})
}
