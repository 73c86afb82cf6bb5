package routes

import (
	"github.com/Wekesa/sokoni-api/controllers"
	"github.com/Wekesa/sokoni-api/middlewares"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, order *controllers.OrderController) {
	group := server.Group("/order", middlewares.RequireAuth())
	{
		group.POST("/checkout", order.Checkout)
		group.GET("", order.GetMyOrders)
		group.GET("/:orderId", order.GetOrder)
	}

	admin := server.Group("/admin/orders", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", order.GetOrders)
		admin.PATCH("/:orderId", order.UpdateOrderStatus)
	}
}
