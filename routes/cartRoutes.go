package routes

import (
	"github.com/Wekesa/sokoni-api/controllers"
	"github.com/Wekesa/sokoni-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	group := server.Group("/cart", middlewares.RequireAuth())
	{
		group.GET("", cart.GetCart)
		group.POST("/:productId", cart.AddItem)
		group.PUT("/:productId", cart.UpdateItem)
		group.DELETE("/:productId", cart.RemoveItem)
	}
}
