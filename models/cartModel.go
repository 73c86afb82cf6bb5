package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem holds at most one row per (cart, product) pair; adding the
// same product again increments Quantity instead of inserting. Items
// are hard-deleted so a drained cart can take the product back without
// tripping the unique index.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CartID    uint      `json:"cartId" gorm:"uniqueIndex:idx_cart_product"`
	ProductID uint      `json:"productId" gorm:"uniqueIndex:idx_cart_product"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
}

type Cart struct {
	gorm.Model
	UserID uint       `json:"userId" gorm:"uniqueIndex"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}
