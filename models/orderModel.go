package models

import "gorm.io/gorm"

const (
	OrderStatusPending   = "PENDING"
	OrderStatusPlaced    = "PLACED"
	OrderStatusFailed    = "FAILED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

const (
	PaymentModeCreditCard = "CREDIT_CARD"
	PaymentModeUPI        = "UPI"
	PaymentModeCOD        = "COD"
	PaymentModeWallet     = "WALLET"
)

// Order is immutable after checkout except for Status. Total and the
// item prices are frozen at purchase time.
type Order struct {
	gorm.Model
	UserID      uint        `json:"userId"`
	Total       float64     `json:"total"`
	Status      string      `json:"status"`
	PaymentMode string      `json:"paymentMode"`
	PaymentRef  string      `json:"paymentRef"`
	OrderItems  []OrderItem `json:"orderItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	gorm.Model
	OrderID   uint    `json:"orderId"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // unit price snapshot at purchase
	Quantity  int     `json:"quantity"`
}
