package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/models"
	"github.com/yeremiapane/order-management-api/services"
	"github.com/yeremiapane/order-management-api/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

func (ac *AdminController) GetAllAdmins(c *gin.Context) {
	var admins []models.Admin
	if err := ac.DB.Find(&admins).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All admins", admins)
}

func (ac *AdminController) GetAdminByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Admin", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Admin detail", admin)
}

func (ac *AdminController) AddAdmin(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	admin := models.Admin{Username: body.Username, Password: hashed}
	if err := ac.DB.Create(&admin).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("username must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Admin created", admin)
}

func (ac *AdminController) UpdateAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Admin", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	admin.Username = body.Username
	admin.Password = hashed
	if err := ac.DB.Save(&admin).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("username must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Admin updated", admin)
}

func (ac *AdminController) DeleteAdmin(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Admin", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := ac.DB.Delete(&admin).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Admin deleted", gin.H{"admin_id": id})
}
