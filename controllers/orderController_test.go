package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Wekesa/sokoni-api/initializers"
	"github.com/Wekesa/sokoni-api/middlewares"
	"github.com/Wekesa/sokoni-api/models"
	"github.com/Wekesa/sokoni-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	initializers.DB = db

	ledger := services.NewInventoryLedger()
	carts := services.NewCartService(db, ledger)
	orders := services.NewOrderService(db, carts, ledger, services.NewPaymentSimulator(nil))

	cartController := NewCartController(carts)
	orderController := NewOrderController(orders)

	server := gin.New()
	authed := server.Group("/", middlewares.RequireAuth())
	{
		authed.GET("/cart", cartController.GetCart)
		authed.POST("/cart/:productId", cartController.AddItem)
		authed.POST("/order/checkout", orderController.Checkout)
		authed.GET("/order/:orderId", orderController.GetOrder)
	}
	admin := server.Group("/admin/orders", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.PATCH("/:orderId", orderController.UpdateOrderStatus)
	}
	return server
}

func testUserToken(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Fullname: "Test User", Email: email, Password: "hashed", Role: role}
	require.NoError(t, initializers.DB.Create(&user).Error)
	token, err := generateJWT(user)
	require.NoError(t, err)
	return user, token
}

func doRequest(server *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func TestCheckoutEndpointRequiresAuth(t *testing.T) {
	server := setupTestServer(t)

	w := doRequest(server, http.MethodPost, "/order/checkout", "", `{"paymentMode":"CREDIT_CARD"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckoutEndpointFlow(t *testing.T) {
	server := setupTestServer(t)
	_, token := testUserToken(t, "buyer@example.com", "customer")

	product := models.Product{Name: "Mouse", Price: 100.0, Stock: 5, Category: "gear"}
	require.NoError(t, initializers.DB.Create(&product).Error)

	w := doRequest(server, http.MethodPost, fmt.Sprintf("/cart/%d?quantity=2", product.ID), token, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(server, http.MethodPost, "/order/checkout", token, `{"paymentMode":"CREDIT_CARD","simulateSuccess":true}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.OrderStatusPlaced, response.Order.Status)
	assert.Equal(t, 200.0, response.Order.Total)

	// Cart is drained after the successful checkout.
	w = doRequest(server, http.MethodGet, "/cart", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cartResponse struct {
		Cart models.Cart `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cartResponse))
	assert.Empty(t, cartResponse.Cart.Items)
}

func TestCheckoutEndpointEmptyCart(t *testing.T) {
	server := setupTestServer(t)
	_, token := testUserToken(t, "buyer@example.com", "customer")

	w := doRequest(server, http.MethodPost, "/order/checkout", token, `{"paymentMode":"UPI","simulateSuccess":true}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutEndpointRejectsUnknownPaymentMode(t *testing.T) {
	server := setupTestServer(t)
	_, token := testUserToken(t, "buyer@example.com", "customer")

	w := doRequest(server, http.MethodPost, "/order/checkout", token, `{"paymentMode":"BARTER"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	server := setupTestServer(t)
	_, token := testUserToken(t, "buyer@example.com", "customer")

	product := models.Product{Name: "Rare", Price: 10.0, Stock: 1, Category: "gear"}
	require.NoError(t, initializers.DB.Create(&product).Error)

	w := doRequest(server, http.MethodPost, fmt.Sprintf("/cart/%d?quantity=2", product.ID), token, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderAccessOverHTTP(t *testing.T) {
	server := setupTestServer(t)
	_, ownerToken := testUserToken(t, "owner@example.com", "customer")
	_, strangerToken := testUserToken(t, "stranger@example.com", "customer")
	_, adminToken := testUserToken(t, "admin@example.com", "admin")

	product := models.Product{Name: "Desk", Price: 50.0, Stock: 5, Category: "gear"}
	require.NoError(t, initializers.DB.Create(&product).Error)

	w := doRequest(server, http.MethodPost, fmt.Sprintf("/cart/%d", product.ID), ownerToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doRequest(server, http.MethodPost, "/order/checkout", ownerToken, `{"paymentMode":"COD","simulateSuccess":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Order models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	orderPath := fmt.Sprintf("/order/%d", response.Order.ID)

	assert.Equal(t, http.StatusOK, doRequest(server, http.MethodGet, orderPath, ownerToken, "").Code)
	assert.Equal(t, http.StatusOK, doRequest(server, http.MethodGet, orderPath, adminToken, "").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(server, http.MethodGet, orderPath, strangerToken, "").Code)

	// Status updates are admin territory.
	statusPath := fmt.Sprintf("/admin/orders/%d", response.Order.ID)
	assert.Equal(t, http.StatusForbidden, doRequest(server, http.MethodPatch, statusPath, ownerToken, `{"status":"SHIPPED"}`).Code)
	assert.Equal(t, http.StatusOK, doRequest(server, http.MethodPatch, statusPath, adminToken, `{"status":"SHIPPED"}`).Code)
	assert.Equal(t, http.StatusConflict, doRequest(server, http.MethodPatch, statusPath, adminToken, `{"status":"PLACED"}`).Code)
}
