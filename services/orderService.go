package services

import (
	"errors"
	"log"

	"github.com/Wekesa/sokoni-api/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies who is asking on the order read path.
type Actor struct {
	UserID uint
	Role   string
}

// AccessPolicy decides whether an actor may view an order.
type AccessPolicy func(actor Actor, order *models.Order) bool

// OwnerOrAdmin is the default policy: the owning user or an
// administrator may view an order, anyone else is denied.
func OwnerOrAdmin(actor Actor, order *models.Order) bool {
	return actor.Role == "admin" || actor.UserID == order.UserID
}

// Mailer sends the order confirmation after a successful checkout.
// Nil disables notifications.
type Mailer func(user *models.User, order *models.Order) error

// OrderService assembles orders out of carts. Checkout runs as a
// single transaction: stock validation, order materialization, payment
// decision and inventory commit + cart drain either all land or none
// do.
type OrderService struct {
	DB        *gorm.DB
	Carts     *CartService
	Ledger    InventoryLedger
	Payments  PaymentSimulator
	CanAccess AccessPolicy
	Mailer    Mailer
}

func NewOrderService(db *gorm.DB, carts *CartService, ledger InventoryLedger, payments PaymentSimulator) *OrderService {
	return &OrderService{
		DB:        db,
		Carts:     carts,
		Ledger:    ledger,
		Payments:  payments,
		CanAccess: OwnerOrAdmin,
	}
}

// Checkout converts the user's cart into an order. A failed payment is
// not an error: the call succeeds and returns an order in FAILED
// status with the cart and stock untouched. InsufficientStock can also
// surface from the commit phase when a concurrent checkout wins the
// last units; in that case the whole transaction, order included,
// rolls back.
func (s *OrderService) Checkout(userID uint, paymentMode string, simulateSuccess *bool) (*models.Order, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var orderID uint
	var placed bool
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.Carts.getOrCreate(tx, userID)
		if err != nil {
			return err
		}

		var items []models.CartItem
		if err := tx.Preload("Product").Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// Final stock check before anything is written.
		for _, item := range items {
			if err := s.Ledger.Reserve(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		var total float64
		for _, item := range items {
			total += item.Product.Price * float64(item.Quantity)
		}

		order := models.Order{
			UserID:      userID,
			Total:       total,
			Status:      models.OrderStatusPending,
			PaymentMode: paymentMode,
			PaymentRef:  uuid.NewString(),
		}
		for _, item := range items {
			order.OrderItems = append(order.OrderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Product.Name,
				Price:     item.Product.Price,
				Quantity:  item.Quantity,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID

		if s.Payments.Attempt(simulateSuccess) {
			for _, item := range items {
				if err := s.Ledger.Commit(tx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
			if err := s.Carts.drain(tx, cart.ID); err != nil {
				return err
			}
			placed = true
			return tx.Model(&order).Update("status", models.OrderStatusPlaced).Error
		}
		return tx.Model(&order).Update("status", models.OrderStatusFailed).Error
	})
	if err != nil {
		return nil, err
	}

	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}

	if placed && s.Mailer != nil {
		if err := s.Mailer(&user, order); err != nil {
			log.Println("Failed to send order confirmation:", err)
		}
	}
	return order, nil
}

func (s *OrderService) GetOrder(actor Actor, orderID uint) (*models.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !s.CanAccess(actor, order) {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *OrderService) ListOrdersForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) ListAllOrders(page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	offset := (page - 1) * limit
	err := s.DB.Preload("OrderItems").
		Order("created_at desc").
		Limit(limit).Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	var count int64
	if err := s.DB.Model(&models.Order{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// UpdateStatus applies an administrative status change, validated
// against the order lifecycle: PLACED -> SHIPPED/CANCELLED, SHIPPED ->
// DELIVERED/CANCELLED. Everything else, including rewriting terminal
// states, is rejected.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*models.Order, error) {
	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !CanTransition(order.Status, newStatus) {
			return ErrInvalidTransition
		}
		return tx.Model(&order).Update("status", newStatus).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(order.ID)
}

func (s *OrderService) loadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("OrderItems").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}
