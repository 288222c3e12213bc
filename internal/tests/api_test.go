// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/brewline/pos-backend/internal/config"
	"github.com/brewline/pos-backend/internal/router"
	"github.com/brewline/pos-backend/internal/store"
)

type APITestSuite struct {
	suite.Suite
	router   *gin.Engine
	store    *store.Store
	sessions *store.SessionStore
	clientIP string
}

// ipCounter hands each test its own client address so the per-IP rate
// limiters never bleed between tests.
var ipCounter int

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *APITestSuite) SetupTest() {
	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:      "test-secret-key",
			AccessTokenTTL: 1,
		},
		AI: config.AIConfig{
			Model:      "gemini-2.5-flash",
			Timeout:    5,
			MaxRetries: 0,
		},
	}

	suite.store = store.New()
	suite.sessions = store.NewSessionStore()
	suite.router = router.Initialize(suite.store, suite.sessions, cfg)

	ipCounter++
	suite.clientIP = fmt.Sprintf("192.0.2.%d:51000", ipCounter)
}

func (suite *APITestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		assert.NoError(suite.T(), err)
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = suite.clientIP
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	return response
}

func (suite *APITestSuite) login(name, role string) string {
	w := suite.request("POST", "/v1/auth/login", map[string]interface{}{
		"name": name,
		"role": role,
	}, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	return data["token"].(string)
}

func (suite *APITestSuite) createProduct(token, name, category string, price float64, stock int) string {
	w := suite.request("POST", "/v1/products", map[string]interface{}{
		"name":     name,
		"category": category,
		"price":    price,
		"stock":    stock,
	}, token)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	return product["id"].(string)
}

func (suite *APITestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", nil, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "healthy")
}

func (suite *APITestSuite) TestLogin() {
	w := suite.request("POST", "/v1/auth/login", map[string]interface{}{
		"name": "Alex",
		"role": "cashier",
	}, "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	response := suite.decode(w)
	assert.True(suite.T(), response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.NotEmpty(suite.T(), data["token"])
	assert.Equal(suite.T(), "Bearer", data["token_type"])

	user := data["user"].(map[string]interface{})
	assert.Equal(suite.T(), "Alex", user["name"])
	assert.Equal(suite.T(), "cashier", user["role"])
}

func (suite *APITestSuite) TestLoginRejectsUnknownRole() {
	w := suite.request("POST", "/v1/auth/login", map[string]interface{}{
		"name": "Alex",
		"role": "manager",
	}, "")
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))
}

func (suite *APITestSuite) TestProtectedRoutesRequireToken() {
	w := suite.request("GET", "/v1/products", nil, "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.request("GET", "/v1/products", nil, "not-a-token")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestLogoutEndsSession() {
	token := suite.login("Alex", "cashier")

	w := suite.request("GET", "/v1/auth/me", nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("POST", "/v1/auth/logout", nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// The token is still unexpired but the session is gone.
	w = suite.request("GET", "/v1/auth/me", nil, token)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestProductCRUD() {
	token := suite.login("Morgan", "admin")

	id := suite.createProduct(token, "Flat White", "Coffee", 4.50, 20)

	w := suite.request("GET", "/v1/products/"+id, nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("PUT", "/v1/products/"+id, map[string]interface{}{
		"name":     "Flat White",
		"category": "Coffee",
		"price":    5.00,
		"stock":    18,
	}, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(suite.T(), 5.00, product["price"])

	w = suite.request("DELETE", "/v1/products/"+id, nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request("GET", "/v1/products/"+id, nil, token)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestCashierCannotMutateCatalog() {
	token := suite.login("Alex", "cashier")

	w := suite.request("POST", "/v1/products", map[string]interface{}{
		"name":     "Flat White",
		"category": "Coffee",
		"price":    4.50,
		"stock":    20,
	}, token)
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	response := suite.decode(w)
	assert.False(suite.T(), response["success"].(bool))
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "FORBIDDEN", errObj["code"])

	// Reading the catalog is fine for any role.
	w = suite.request("GET", "/v1/products", nil, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestCheckout() {
	admin := suite.login("Morgan", "admin")
	id := suite.createProduct(admin, "Nitro Cold Brew", "Coffee", 5.50, 30)

	cashier := suite.login("Alex", "cashier")
	w := suite.request("POST", "/v1/sales/checkout", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": id, "quantity": 2},
		},
	}, cashier)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	sale := data["sale"].(map[string]interface{})
	assert.Equal(suite.T(), 11.00, sale["total"])

	// Stock went down in the catalog.
	w = suite.request("GET", "/v1/products/"+id, nil, cashier)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	data = suite.decode(w)["data"].(map[string]interface{})
	product := data["product"].(map[string]interface{})
	assert.Equal(suite.T(), float64(28), product["stock"])
}

func (suite *APITestSuite) TestCheckoutInsufficientStock() {
	admin := suite.login("Morgan", "admin")
	id := suite.createProduct(admin, "Blueberry Muffin", "Pastry", 3.50, 5)

	w := suite.request("POST", "/v1/sales/checkout", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": id, "quantity": 6},
		},
	}, admin)
	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	assert.Equal(suite.T(), "INSUFFICIENT_STOCK", errObj["code"])

	// Nothing was rung up.
	w = suite.request("GET", "/v1/sales", nil, admin)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "0", w.Header().Get("X-Total-Count"))
}

func (suite *APITestSuite) TestSalesListAndReports() {
	admin := suite.login("Morgan", "admin")
	id := suite.createProduct(admin, "Espresso", "Coffee", 3.00, 100)

	w := suite.request("POST", "/v1/sales/checkout", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": id, "quantity": 3},
		},
	}, admin)
	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	w = suite.request("GET", "/v1/sales", nil, admin)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "1", w.Header().Get("X-Total-Count"))

	w = suite.request("GET", "/v1/reports/summary", nil, admin)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	summary := data["summary"].(map[string]interface{})
	assert.Equal(suite.T(), 9.00, summary["total_revenue"])
	assert.Equal(suite.T(), float64(1), summary["total_sales"])

	w = suite.request("GET", "/v1/reports/top-products", nil, admin)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Espresso")
}

func (suite *APITestSuite) TestInsightWithoutCredential() {
	token := suite.login("Morgan", "admin")

	w := suite.request("POST", "/v1/insights", map[string]interface{}{
		"question": "What sells best?",
	}, token)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	data := suite.decode(w)["data"].(map[string]interface{})
	insight := data["insight"].(map[string]interface{})
	assert.Contains(suite.T(), insight["insight"], "currently unavailable")
}

func (suite *APITestSuite) TestInsightRejectsBlankQuestion() {
	token := suite.login("Morgan", "admin")

	w := suite.request("POST", "/v1/insights", map[string]interface{}{
		"question": "   ",
	}, token)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
