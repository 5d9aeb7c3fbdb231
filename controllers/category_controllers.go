package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/services"
	"github.com/yeremiapane/order-management-api/utils"
)

type CategoryController struct {
	catalog *services.CatalogService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{catalog: services.NewCatalogService(db)}
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.catalog.GetAllCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All categories", categories)
}

func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := cc.catalog.GetCategoryByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category detail", category)
}

func (cc *CategoryController) AddCategory(c *gin.Context) {
	var body struct {
		Name    string `json:"name" binding:"required"`
		Details string `json:"details"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category, err := cc.catalog.SaveCategory(body.Name, body.Details)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// UpdateCategory replaces the whole record; every field must be supplied.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Name    string `json:"name" binding:"required"`
		Details string `json:"details"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category, err := cc.catalog.UpdateCategory(id, body.Name, body.Details)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.catalog.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"category_id": id})
}
