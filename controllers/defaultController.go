package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Sokoni API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

PRODUCT
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- POST "/product" - Create new product (admin)
- PUT "/product/:id" - Update product (admin)
- DELETE "/product/:id" - Delete product (admin)
- POST "/product-images" - Upload product images (admin)

CART
- GET "/cart" - Get your cart
- POST "/cart/:productId" - Add product to cart
- PUT "/cart/:productId" - Update cart item quantity
- DELETE "/cart/:productId" - Remove product from cart

ORDER
- POST "/order/checkout" - Convert your cart into an order
- GET "/order" - Get your orders
- GET "/order/:orderId" - Get order by ID
- GET "/admin/orders" - Retrieve all orders (admin)
- PATCH "/admin/orders/:orderId" - Update order status (admin)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
