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

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

func (sc *StaffController) GetAllStaff(c *gin.Context) {
	var staff []models.Staff
	if err := sc.DB.Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All staff", staff)
}

func (sc *StaffController) GetStaffByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := sc.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Staff", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff detail", staff)
}

func (sc *StaffController) AddStaff(c *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Mail     string `json:"mail" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
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

	staff := models.Staff{
		Name:     body.Name,
		Phone:    body.Phone,
		Mail:     body.Mail,
		Password: hashed,
		Role:     body.Role,
	}
	if err := sc.DB.Create(&staff).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("phone and mail must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Staff created", staff)
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Mail     string `json:"mail" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var staff models.Staff
	if err := sc.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Staff", Field: "id", Value: id})
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

	staff.Name = body.Name
	staff.Phone = body.Phone
	staff.Mail = body.Mail
	staff.Password = hashed
	staff.Role = body.Role

	if err := sc.DB.Save(&staff).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("phone and mail must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff updated", staff)
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var staff models.Staff
	if err := sc.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Staff", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := sc.DB.Delete(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff deleted", gin.H{"staff_id": id})
}
