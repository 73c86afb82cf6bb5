package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Wekesa/sokoni-api/services"
	"github.com/gin-gonic/gin"
)

// handleServiceError translates service errors into HTTP responses.
func handleServiceError(ctx *gin.Context, err error) {
	var stockErr *services.InsufficientStockError
	switch {
	case errors.As(err, &stockErr):
		sendJSONResponse(ctx, http.StatusConflict, gin.H{
			"message":   stockErr.Error(),
			"productId": stockErr.ProductID,
			"available": stockErr.Available,
		})
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidQuantity):
		sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		sendErrorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		sendErrorResponse(ctx, http.StatusConflict, err.Error())
	default:
		log.Println("Service error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := c.Carts.GetCart(actor.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

func (c *CartController) AddItem(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	quantity, err := strconv.Atoi(ctx.DefaultQuery("quantity", "1"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid quantity")
		return
	}

	cart, err := c.Carts.AddItem(actor.UserID, uint(productId), quantity)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Item added to cart",
		"cart":    cart,
	})
}

func (c *CartController) UpdateItem(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	quantity, err := strconv.Atoi(ctx.Query("quantity"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid quantity")
		return
	}

	cart, err := c.Carts.SetItemQuantity(actor.UserID, uint(productId), quantity)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Cart item updated",
		"cart":    cart,
	})
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	cart, err := c.Carts.RemoveItem(actor.UserID, uint(productId))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"cart":    cart,
	})
}
