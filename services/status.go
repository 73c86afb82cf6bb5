package services

import "github.com/Wekesa/sokoni-api/models"

// adminTransitions lists the status changes an administrator may
// apply. PENDING -> PLACED/FAILED is reserved to checkout itself;
// DELIVERED, CANCELLED and FAILED are terminal.
var adminTransitions = map[string][]string{
	models.OrderStatusPlaced:  {models.OrderStatusShipped, models.OrderStatusCancelled},
	models.OrderStatusShipped: {models.OrderStatusDelivered, models.OrderStatusCancelled},
}

func CanTransition(from, to string) bool {
	for _, allowed := range adminTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusPlaced, models.OrderStatusFailed,
		models.OrderStatusShipped, models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	}
	return false
}

func IsValidPaymentMode(mode string) bool {
	switch mode {
	case models.PaymentModeCreditCard, models.PaymentModeUPI,
		models.PaymentModeCOD, models.PaymentModeWallet:
		return true
	}
	return false
}
