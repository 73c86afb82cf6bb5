package services

import (
	"errors"

	"github.com/Wekesa/sokoni-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService owns the per-user singleton cart. Every mutation runs in
// a transaction that locks the cart row, so concurrent requests from
// the same user (two tabs) cannot interleave lost updates.
type CartService struct {
	DB     *gorm.DB
	Ledger InventoryLedger
}

func NewCartService(db *gorm.DB, ledger InventoryLedger) *CartService {
	return &CartService{DB: db, Ledger: ledger}
}

func (s *CartService) requireUser(db *gorm.DB, userID uint) error {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// lockForUpdate takes a row lock where the dialect supports one.
// sqlite serializes writers on its own and rejects FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// getOrCreate returns the user's cart, creating an empty one on first
// access, and locks its row for the rest of the transaction.
func (s *CartService) getOrCreate(tx *gorm.DB, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := lockForUpdate(tx).
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := tx.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	if err := s.requireUser(s.DB, userID); err != nil {
		return nil, err
	}

	var cart *models.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var txErr error
		cart, txErr = s.getOrCreate(tx, userID)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return s.loadCart(cart.ID)
}

// AddItem inserts a new cart item or increments an existing one. The
// resulting quantity (existing + requested) is validated against the
// product's current stock.
func (s *CartService) AddItem(userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if err := s.requireUser(s.DB, userID); err != nil {
		return nil, err
	}

	var cartID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.getOrCreate(tx, userID)
		if err != nil {
			return err
		}
		cartID = cart.ID

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case err == nil:
			newQty := item.Quantity + quantity
			if err := s.Ledger.Reserve(tx, productID, newQty); err != nil {
				return err
			}
			item.Quantity = newQty
			return tx.Omit("Product").Save(&item).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.Ledger.Reserve(tx, productID, quantity); err != nil {
				return err
			}
			item = models.CartItem{CartID: cart.ID, ProductID: productID, Quantity: quantity}
			return tx.Omit("Product").Create(&item).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return s.loadCart(cartID)
}

// SetItemQuantity overwrites an item's quantity. Zero removes the
// item, negative is rejected, positive is revalidated against stock.
func (s *CartService) SetItemQuantity(userID, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if err := s.requireUser(s.DB, userID); err != nil {
		return nil, err
	}

	var cartID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.getOrCreate(tx, userID)
		if err != nil {
			return err
		}
		cartID = cart.ID

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if quantity == 0 {
			return tx.Delete(&item).Error
		}
		if err := s.Ledger.Reserve(tx, productID, quantity); err != nil {
			return err
		}
		item.Quantity = quantity
		return tx.Omit("Product").Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadCart(cartID)
}

// RemoveItem deletes the item if present; an absent item is a no-op.
func (s *CartService) RemoveItem(userID, productID uint) (*models.Cart, error) {
	if err := s.requireUser(s.DB, userID); err != nil {
		return nil, err
	}

	var cartID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.getOrCreate(tx, userID)
		if err != nil {
			return err
		}
		cartID = cart.ID
		return tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).
			Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadCart(cartID)
}

// drain removes every item from the cart. Used only by successful
// checkout, inside the checkout transaction.
func (s *CartService) drain(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (s *CartService) loadCart(cartID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := s.DB.Preload("Items.Product").First(&cart, cartID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}
