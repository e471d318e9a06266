package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/petmanage/petshop-api/internal/models"
	"github.com/petmanage/petshop-api/internal/report"
)

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// Clients devolve o relatório em PDF como download.
func (h *ReportHandler) Clients(c *gin.Context) {
	var clients []models.Client
	err := h.db.Preload("Address").Preload("Pets").
		Order("id ASC").
		Find(&clients).Error
	if err != nil {
		internalErr(c, "failed_to_load_report", err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="relatorio-clientes.pdf"`)
	c.Status(http.StatusOK)

	if err := report.WriteClients(c.Writer, clients); err != nil {
		// Headers já foram enviados; só dá para registrar.
		log.Error().Err(err).Msg("failed to stream client report")
	}
}
