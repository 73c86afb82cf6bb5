package controllers

import (
	"net/http"
	"strconv"

	"github.com/Wekesa/sokoni-api/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// Checkout converts the caller's cart into an order. A declined
// payment still returns 200 with an order in FAILED status.
func (c *OrderController) Checkout(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var checkoutData struct {
		PaymentMode     string `json:"paymentMode" binding:"required"`
		SimulateSuccess *bool  `json:"simulateSuccess"`
	}
	if err := ctx.ShouldBindJSON(&checkoutData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !services.IsValidPaymentMode(checkoutData.PaymentMode) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid payment mode")
		return
	}

	order, err := c.Orders.Checkout(actor.UserID, checkoutData.PaymentMode, checkoutData.SimulateSuccess)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func (c *OrderController) GetMyOrders(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orders, err := c.Orders.ListOrdersForUser(actor.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.Orders.GetOrder(actor, uint(orderId))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetOrders lists all orders with pagination. Admin only.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}

	orders, count, err := c.Orders.ListAllOrders(page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateOrderStatus applies an administrative lifecycle transition.
func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !services.IsValidStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	orderId, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.Orders.UpdateStatus(uint(orderId), orderStatusData.Status)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"order":   order,
	})
}
