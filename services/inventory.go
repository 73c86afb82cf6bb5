package services

import (
	"errors"

	"github.com/Wekesa/sokoni-api/models"
	"gorm.io/gorm"
)

// InventoryLedger owns per-product stock counters. Reserve is a pure
// check against current stock; Commit is the irrevocable decrement.
// Both take the *gorm.DB they should run against so callers can scope
// them to a transaction.
type InventoryLedger interface {
	Reserve(db *gorm.DB, productID uint, quantity int) error
	Commit(db *gorm.DB, productID uint, quantity int) error
}

type GormInventoryLedger struct{}

func NewInventoryLedger() *GormInventoryLedger {
	return &GormInventoryLedger{}
}

func (l *GormInventoryLedger) Reserve(db *gorm.DB, productID uint, quantity int) error {
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if product.Stock < quantity {
		return &InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}
	return nil
}

// Commit decrements stock with a single conditional update so that
// concurrent checkouts cannot drive the counter negative. A losing
// racer sees zero affected rows and gets InsufficientStock.
func (l *GormInventoryLedger) Commit(db *gorm.DB, productID uint, quantity int) error {
	result := db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return &InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}
	return nil
}
