package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petmanage/petshop-api/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardResponse struct {
	TotalClientes     int64 `json:"totalClientes"`
	TotalPets         int64 `json:"totalPets"`
	TotalProdutos     int64 `json:"totalProdutos"`
	TotalServicos     int64 `json:"totalServicos"`
	TotalPedidos      int64 `json:"totalPedidos"`
	TotalAgendamentos int64 `json:"totalAgendamentos"`
}

// Get devolve a contagem atual de cada entidade. Sem cache: os números
// refletem o banco no momento da chamada.
func (h *DashboardHandler) Get(c *gin.Context) {
	var resp DashboardResponse

	counts := []struct {
		model any
		out   *int64
	}{
		{&models.Client{}, &resp.TotalClientes},
		{&models.Pet{}, &resp.TotalPets},
		{&models.Product{}, &resp.TotalProdutos},
		{&models.Service{}, &resp.TotalServicos},
		{&models.Order{}, &resp.TotalPedidos},
		{&models.Appointment{}, &resp.TotalAgendamentos},
	}

	for _, item := range counts {
		if err := h.db.Model(item.model).Count(item.out).Error; err != nil {
			internalErr(c, "failed_to_load_dashboard", err)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
