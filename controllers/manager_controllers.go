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

type ManagerController struct {
	DB *gorm.DB
}

func NewManagerController(db *gorm.DB) *ManagerController {
	return &ManagerController{DB: db}
}

func (mc *ManagerController) GetAllManagers(c *gin.Context) {
	var managers []models.Manager
	if err := mc.DB.Find(&managers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All managers", managers)
}

func (mc *ManagerController) GetManagerByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var manager models.Manager
	if err := mc.DB.First(&manager, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Manager", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Manager detail", manager)
}

func (mc *ManagerController) AddManager(c *gin.Context) {
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

	manager := models.Manager{Username: body.Username, Password: hashed}
	if err := mc.DB.Create(&manager).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("username must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Manager created", manager)
}

func (mc *ManagerController) UpdateManager(c *gin.Context) {
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

	var manager models.Manager
	if err := mc.DB.First(&manager, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Manager", Field: "id", Value: id})
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

	manager.Username = body.Username
	manager.Password = hashed
	if err := mc.DB.Save(&manager).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("username must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Manager updated", manager)
}

func (mc *ManagerController) DeleteManager(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var manager models.Manager
	if err := mc.DB.First(&manager, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Manager", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := mc.DB.Delete(&manager).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Manager deleted", gin.H{"manager_id": id})
}
