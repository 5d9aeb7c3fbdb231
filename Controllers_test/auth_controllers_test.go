package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/controllers"
	"github.com/yeremiapane/order-management-api/middlewares"
	"github.com/yeremiapane/order-management-api/models"
)

func setupAuthRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	authCtrl := controllers.NewAuthController(db)
	router.POST("/api/auth/register", authCtrl.Register)
	router.POST("/api/auth/login", authCtrl.Login)
	router.POST("/api/auth/logout", authCtrl.Logout)

	router.GET("/api/auth/me", middlewares.LegacyAuthMiddleware(), authCtrl.Me)
	return router
}

func seedDefaultRole(t *testing.T, db *gorm.DB) {
	t.Helper()
	mustCreate(t, db, &models.Role{Name: "User"})
}

func TestAuthRegisterAndLogin(t *testing.T) {
	db := openTestDB(t)
	seedDefaultRole(t, db)
	router := setupAuthRouter(db)

	w := doJSON(t, router, "POST", "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User registered success!", decodeBody(t, w)["message"])

	// The stored password must be a digest, never the plaintext.
	var user models.AuthUser
	assert.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "secret123", user.Password)

	w = doJSON(t, router, "POST", "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	token, _ := dataOf(t, w)["token"].(string)
	assert.NotEmpty(t, token)
}

func TestAuthRegisterDuplicateUsername(t *testing.T) {
	db := openTestDB(t)
	seedDefaultRole(t, db)
	router := setupAuthRouter(db)

	payload := map[string]interface{}{"username": "alice", "password": "secret123"}

	w := doJSON(t, router, "POST", "/api/auth/register", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/api/auth/register", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username is taken", decodeBody(t, w)["message"])
}

func TestAuthRegisterWithoutSeededRole(t *testing.T) {
	db := openTestDB(t)
	router := setupAuthRouter(db)

	w := doJSON(t, router, "POST", "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "role not found", decodeBody(t, w)["message"])
}

func TestAuthLoginBadCredentials(t *testing.T) {
	db := openTestDB(t)
	seedDefaultRole(t, db)
	router := setupAuthRouter(db)

	w := doJSON(t, router, "POST", "/api/auth/login", map[string]interface{}{
		"username": "nobody",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	doJSON(t, router, "POST", "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	w = doJSON(t, router, "POST", "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthLogoutBlacklistsToken(t *testing.T) {
	db := openTestDB(t)
	seedDefaultRole(t, db)
	router := setupAuthRouter(db)

	doJSON(t, router, "POST", "/api/auth/register", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	w := doJSON(t, router, "POST", "/api/auth/login", map[string]interface{}{
		"username": "alice",
		"password": "secret123",
	})
	token, _ := dataOf(t, w)["token"].(string)
	assert.NotEmpty(t, token)

	req, _ := http.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 := performRaw(router, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	req, _ = http.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 = performRaw(router, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	// The blacklisted token is refused from now on.
	req, _ = http.NewRequest("GET", "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w2 = performRaw(router, req)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)
}
