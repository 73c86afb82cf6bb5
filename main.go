package main

import (
	"path/filepath"
	"time"

	"github.com/Wekesa/sokoni-api/controllers"
	"github.com/Wekesa/sokoni-api/initializers"
	"github.com/Wekesa/sokoni-api/models"
	"github.com/Wekesa/sokoni-api/routes"
	"github.com/Wekesa/sokoni-api/services"
	"github.com/Wekesa/sokoni-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
}

func sendOrderConfirmation(user *models.User, order *models.Order) error {
	emailData := utils.EmailData{
		Name:    user.Fullname,
		Message: "Your payment was received and your order has been placed.",
		OrderID: order.ID,
		Total:   order.Total,
		LogoURL: "https://www.sokoni.store/images/logo.jpg",
	}

	templatePath := filepath.Join("templates", "order_confirmation.html")
	return utils.SendEmail(user.Email, "Order Confirmation", emailData, templatePath)
}

func main() {
	ledger := services.NewInventoryLedger()
	payments := services.NewPaymentSimulator(nil)
	cartService := services.NewCartService(initializers.DB, ledger)
	orderService := services.NewOrderService(initializers.DB, cartService, ledger, payments)
	orderService.Mailer = sendOrderConfirmation

	cartController := controllers.NewCartController(cartService)
	orderController := controllers.NewOrderController(orderService)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.sokoni.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.ProductRoutes(server)
	routes.CartRoutes(server, cartController)
	routes.OrderRoutes(server, orderController)
	server.Run()
}
