package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/models"
	"github.com/yeremiapane/order-management-api/utils"
)

// AuthController is the bearer-token subsystem over the users/roles tables.
// It is a separate identity model from the per-kind credential login in
// LoginController and the two are intentionally not unified.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var count int64
	if err := ac.DB.Model(&models.AuthUser{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("username is taken"))
		return
	}

	// New accounts always start with the default role; it must be seeded.
	var role models.Role
	if err := ac.DB.Where("name = ?", "User").First(&role).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, errors.New("role not found"))
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.AuthUser{
		Username: req.Username,
		Password: hashed,
		Roles:    []models.Role{role},
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New auth user registered: %s", user.Username)
	utils.RespondJSON(c, http.StatusOK, "User registered success!", gin.H{
		"user_id": user.ID,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.AuthUser
	if err := ac.DB.Preload("Roles").Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	token, err := utils.GenerateAuthToken(user.ID, user.Username, roles)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}

// Me returns the identity behind a token from this subsystem.
func (ac *AuthController) Me(c *gin.Context) {
	userID, _ := c.Get("user_id")
	roles, _ := c.Get("roles")

	utils.RespondJSON(c, http.StatusOK, "Current user", gin.H{
		"user_id": userID,
		"roles":   roles,
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("no token supplied"))
		return
	}

	utils.BlacklistToken(tokenString)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}
