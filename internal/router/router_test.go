package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	previous := models.DB
	models.DB = db
	t.Cleanup(func() { models.DB = previous })
	require.NoError(t, models.InitDefaultAdmin("admin", "admin@example.com", "admin-pass-1"))

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.SecretKey = "router-test-secret-key"
	cfg.JWT.ExpireHours = 1
	cfg.Security.PasswordPolicy.MinLength = 6

	container := provider.NewContainer(cfg)
	return &apiClient{t: t, engine: SetupRouter(cfg, container)}
}

func (a *apiClient) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *apiClient) decode(w *httptest.ResponseRecorder, dest interface{}) {
	a.t.Helper()
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}

type authBody struct {
	Token string `json:"token"`
	User  struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	} `json:"user"`
}

func (a *apiClient) login(email, password string) authBody {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var body authBody
	a.decode(w, &body)
	require.NotEmpty(a.t, body.Token)
	return body
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRegisterAndMe(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret-1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var registered authBody
	api.decode(w, &registered)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "user", registered.User.Role)
	assert.NotContains(t, w.Body.String(), "password")

	dup := api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "secret-1",
	})
	assert.Equal(t, http.StatusConflict, dup.Code)

	me := api.do(http.MethodGet, "/api/auth/me", registered.Token, nil)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), "alice@example.com")

	bad := api.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "alice@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, bad.Code)
	var errBody struct {
		Error string `json:"error"`
	}
	api.decode(bad, &errBody)
	assert.Equal(t, "invalid email or password", errBody.Error)
}

func TestRegisterValidationMessage(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodPost, "/api/auth/register", "", gin.H{"username": "bob"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	api := newTestAPI(t)

	anonymous := api.do(http.MethodPost, "/api/categories/admin", "", gin.H{"name": "Shoes"})
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	w := api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "carol", "email": "carol@example.com", "password": "secret-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user authBody
	api.decode(w, &user)

	forbidden := api.do(http.MethodPost, "/api/categories/admin", user.Token, gin.H{"name": "Shoes"})
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
	listOrders := api.do(http.MethodGet, "/api/orders", user.Token, nil)
	assert.Equal(t, http.StatusForbidden, listOrders.Code)

	admin := api.login("admin@example.com", "admin-pass-1")
	created := api.do(http.MethodPost, "/api/categories/admin", admin.Token, gin.H{"name": "Shoes"})
	assert.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	publicList := api.do(http.MethodGet, "/api/categories/admin", "", nil)
	assert.Equal(t, http.StatusOK, publicList.Code)
	assert.Contains(t, publicList.Body.String(), "Shoes")
}

func TestCheckoutFlow(t *testing.T) {
	api := newTestAPI(t)
	admin := api.login("admin@example.com", "admin-pass-1")

	w := api.do(http.MethodPost, "/api/categories/admin", admin.Token, gin.H{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var category struct {
		ID uint `json:"id"`
	}
	api.decode(w, &category)

	w = api.do(http.MethodPost, "/api/products/admin", admin.Token, gin.H{
		"name":          "Headphones",
		"mrp":           2000,
		"discount":      15,
		"stockQuantity": 10,
		"categoryId":    category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var product struct {
		ID           uint   `json:"id"`
		SellingPrice string `json:"sellingPrice"`
	}
	api.decode(w, &product)
	assert.Equal(t, "1700.00", product.SellingPrice)

	w = api.do(http.MethodPost, "/api/coupons/admin", admin.Token, gin.H{
		"code":              "SAVE10",
		"name":              "Ten percent",
		"discountType":      "percentage",
		"discountValue":     10,
		"maxDiscountAmount": 100,
		"startDate":         "2020-01-01",
		"endDate":           "2099-12-31",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "dave", "email": "dave@example.com", "password": "secret-1",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user authBody
	api.decode(w, &user)

	w = api.do(http.MethodPost, "/api/cart", user.Token, gin.H{"productId": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = api.do(http.MethodPost, "/api/cart", user.Token, gin.H{"productId": product.ID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = api.do(http.MethodGet, "/api/cart", user.Token, nil)
	var cart []struct {
		Quantity int `json:"quantity"`
	}
	api.decode(w, &cart)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	w = api.do(http.MethodPost, "/api/coupons/validate", user.Token, gin.H{"code": "SAVE10", "amount": 3400})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var quote struct {
		Discount    string `json:"discount"`
		FinalAmount string `json:"finalAmount"`
	}
	api.decode(w, &quote)
	assert.Equal(t, "100.00", quote.Discount)
	assert.Equal(t, "3300.00", quote.FinalAmount)

	someoneElse := api.do(http.MethodPost, "/api/orders", user.Token, gin.H{
		"userId":          user.User.ID + 100,
		"items":           []gin.H{{"productId": product.ID, "quantity": 2}},
		"totalAmount":     3300,
		"shippingAddress": "1 Main St",
		"paymentMethod":   "cod",
		"couponCode":      "SAVE10",
	})
	assert.Equal(t, http.StatusForbidden, someoneElse.Code)

	w = api.do(http.MethodPost, "/api/orders", user.Token, gin.H{
		"userId":          user.User.ID,
		"items":           []gin.H{{"productId": product.ID, "quantity": 2, "price": 1700}},
		"totalAmount":     3300,
		"shippingAddress": "1 Main St",
		"paymentMethod":   "cod",
		"couponCode":      "SAVE10",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order struct {
		ID          uint   `json:"id"`
		Status      string `json:"status"`
		TotalAmount string `json:"totalAmount"`
		Items       []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
	}
	api.decode(w, &order)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "3300.00", order.TotalAmount)
	require.Len(t, order.Items, 1)

	w = api.do(http.MethodGet, "/api/cart", user.Token, nil)
	cart = nil
	api.decode(w, &cart)
	assert.Empty(t, cart)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/products/admin/%d", product.ID), "", nil)
	assert.Contains(t, w.Body.String(), `"stockQuantity":8`)

	w = api.do(http.MethodGet, fmt.Sprintf("/api/orders/user/%d", user.User.ID), user.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)

	w = api.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", order.ID), admin.Token, gin.H{"status": "delivered"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = api.do(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", order.ID), admin.Token, gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, fmt.Sprintf("/api/products/admin/%d", product.ID), "", nil)
	assert.Contains(t, w.Body.String(), `"stockQuantity":10`)

	w = api.do(http.MethodGet, "/api/orders?status=cancelled", admin.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestOrderAccessIsScopedToOwner(t *testing.T) {
	api := newTestAPI(t)

	register := func(name string) authBody {
		w := api.do(http.MethodPost, "/api/auth/register", "", gin.H{
			"username": name, "email": name + "@example.com", "password": "secret-1",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var body authBody
		api.decode(w, &body)
		return body
	}
	erin := register("erin")
	frank := register("frank")

	w := api.do(http.MethodGet, fmt.Sprintf("/api/orders/user/%d", erin.User.ID), frank.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodGet, "/api/orders/999", erin.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
