package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petmanage/petshop-api/internal/handlers"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	clientHandler := handlers.NewClientHandler(db)
	petHandler := handlers.NewPetHandler(db)
	productHandler := handlers.NewProductHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	reportHandler := handlers.NewReportHandler(db)

	// ------------------------------
	// CLIENTES
	// ------------------------------
	r.GET("/clients", clientHandler.List)
	r.GET("/clients/report", reportHandler.Clients)
	r.GET("/clients/:id", clientHandler.Get)
	r.GET("/clients/:id/address", clientHandler.GetAddress)
	r.GET("/clients/:id/pets", clientHandler.ListPets)
	r.POST("/clients", clientHandler.Create)
	r.PUT("/clients/:id", clientHandler.Update)
	r.DELETE("/clients/:id", clientHandler.Delete)

	// ------------------------------
	// PETS
	// ------------------------------
	r.GET("/pets", petHandler.List)
	r.GET("/pets/:id", petHandler.Get)
	r.POST("/pets", petHandler.Create)
	r.PUT("/pets/:id", petHandler.Update)
	r.DELETE("/pets/:id", petHandler.Delete)

	// ------------------------------
	// PRODUTOS
	// ------------------------------
	r.GET("/products", productHandler.List)
	r.GET("/products/search", productHandler.Search)
	r.GET("/products/:id", productHandler.Get)
	r.POST("/products", productHandler.Create)
	r.PUT("/products/:id", productHandler.Update)
	r.DELETE("/products/deleteAll", productHandler.DeleteAll)
	r.DELETE("/products/:id", productHandler.Delete)

	// ------------------------------
	// SERVIÇOS
	// ------------------------------
	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)
	r.POST("/services", serviceHandler.Create)
	r.PUT("/services/:id", serviceHandler.Update)
	r.DELETE("/services/deleteAll", serviceHandler.DeleteAll)
	r.DELETE("/services/:id", serviceHandler.Delete)

	// ------------------------------
	// PEDIDOS
	// ------------------------------
	r.GET("/orders", orderHandler.List)
	r.GET("/orders/products/:id", orderHandler.ListByProduct)
	r.GET("/orders/clients/:id", orderHandler.ListByClient)
	r.GET("/orders/:code", orderHandler.Get)
	r.POST("/orders", orderHandler.Create)
	r.PUT("/orders/:code", orderHandler.Update)
	r.DELETE("/orders/products/:id", orderHandler.DeleteByProduct)
	r.DELETE("/orders/clients/:id", orderHandler.DeleteByClient)
	r.DELETE("/orders/:code", orderHandler.Delete)

	// ------------------------------
	// AGENDAMENTOS
	// ------------------------------
	r.GET("/appointments", appointmentHandler.List)
	r.GET("/appointments/:id", appointmentHandler.Get)
	r.POST("/appointments", appointmentHandler.Create)
	r.PUT("/appointments", appointmentHandler.UpdateBatch)
	r.PUT("/appointments/:id", appointmentHandler.Update)
	r.DELETE("/appointments/:id", appointmentHandler.Delete)

	// ------------------------------
	// DASHBOARD
	// ------------------------------
	r.GET("/dashboard", dashboardHandler.Get)
}
