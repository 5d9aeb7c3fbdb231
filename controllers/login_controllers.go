package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/services"
	"github.com/yeremiapane/order-management-api/utils"
)

// LoginController exposes the four-table credential login. It resolves a
// username or mail against admins, managers, staff and customers in that
// order and mints a token for the winning kind.
type LoginController struct {
	loginService *services.LoginService
}

func NewLoginController(db *gorm.DB) *LoginController {
	return &LoginController{loginService: services.NewLoginService(db)}
}

func (lc *LoginController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	kind, id, err := lc.loginService.Login(input.Username, input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	token, err := utils.GenerateToken(id, kind)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for %s (role=%s)", input.Username, kind)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"role":  kind,
	})
}
