package services_test

import (
	"testing"

	"github.com/Wekesa/sokoni-api/models"
	"github.com/Wekesa/sokoni-api/services"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.OrderStatusPlaced, models.OrderStatusShipped, true},
		{models.OrderStatusPlaced, models.OrderStatusCancelled, true},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},
		{models.OrderStatusShipped, models.OrderStatusCancelled, true},
		// PENDING outcomes belong to checkout, not administrators.
		{models.OrderStatusPending, models.OrderStatusPlaced, false},
		{models.OrderStatusPending, models.OrderStatusFailed, false},
		{models.OrderStatusPending, models.OrderStatusShipped, false},
		// Terminal states.
		{models.OrderStatusDelivered, models.OrderStatusPending, false},
		{models.OrderStatusDelivered, models.OrderStatusShipped, false},
		{models.OrderStatusCancelled, models.OrderStatusPlaced, false},
		{models.OrderStatusFailed, models.OrderStatusPlaced, false},
		// No skipping ahead.
		{models.OrderStatusPlaced, models.OrderStatusDelivered, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, services.CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		models.OrderStatusPending, models.OrderStatusPlaced, models.OrderStatusFailed,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled,
	} {
		assert.True(t, services.IsValidStatus(status), status)
	}
	assert.False(t, services.IsValidStatus("REFUNDED"))
	assert.False(t, services.IsValidStatus(""))
}

func TestIsValidPaymentMode(t *testing.T) {
	for _, mode := range []string{
		models.PaymentModeCreditCard, models.PaymentModeUPI,
		models.PaymentModeCOD, models.PaymentModeWallet,
	} {
		assert.True(t, services.IsValidPaymentMode(mode), mode)
	}
	assert.False(t, services.IsValidPaymentMode("BARTER"))
}
