package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"little_lemon/internal/config"
	"little_lemon/internal/middleware"
	"little_lemon/internal/models"
	"little_lemon/internal/routes"
	"little_lemon/internal/services"
)

// setupRouter swaps the global DB for an in-memory one and returns the real
// router, so every test exercises the full middleware + handler chain.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	config.DB = db
	return routes.SetupRouter()
}

func createUser(t *testing.T, username string, isAdmin bool, groups ...string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.test", IsAdmin: isAdmin}
	require.NoError(t, config.DB.Create(&user).Error)

	svc := services.RoleMembershipService{DB: config.DB}
	for _, g := range groups {
		require.NoError(t, svc.Add(g, user.ID))
	}
	return user
}

func createMenuItem(t *testing.T, title string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{Title: title, Price: price, Category: "mains"}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}

func createOrder(t *testing.T, owner models.User, crew *models.User, total float64) models.Order {
	t.Helper()
	order := models.Order{
		UserID: owner.ID,
		Status: "pending",
		Total:  total,
		Date:   time.Now(),
	}
	if crew != nil {
		order.DeliveryCrewID = &crew.ID
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return order
}

func bearer(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user.ID)
	require.NoError(t, err)
	return "Bearer " + token
}

func do(t *testing.T, r *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/menu-items", "/orders", "/cart/menu-items"} {
		w := do(t, r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
