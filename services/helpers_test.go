package services_test

import (
	"fmt"
	"testing"

	"github.com/Wekesa/sokoni-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testDeps struct {
	db *gorm.DB
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()

	user := models.User{
		Fullname: "Test User",
		Email:    email,
		Password: "hashed-password",
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: "test",
	}
	require.NoError(t, db.Create(&product).Error)
	return &product
}

func boolPtr(b bool) *bool {
	return &b
}

// fakePayment honors an override and otherwise returns a fixed result.
type fakePayment struct {
	result bool
}

func (f *fakePayment) Attempt(override *bool) bool {
	if override != nil {
		return *override
	}
	return f.result
}
