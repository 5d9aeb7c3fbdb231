package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/services"
	"github.com/yeremiapane/order-management-api/utils"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{catalog: services.NewCatalogService(db)}
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.catalog.GetAllProducts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All products", products)
}

func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := pc.catalog.GetProductByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

func (pc *ProductController) AddProduct(c *gin.Context) {
	var body struct {
		Name       string  `json:"name" binding:"required"`
		Price      float64 `json:"price"`
		Thumbnail  string  `json:"thumbnail"`
		Details    string  `json:"details"`
		CategoryID uint    `json:"category_id" binding:"required"`
		Quantity   int     `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.catalog.SaveProduct(body.Name, body.Price, body.Thumbnail, body.Details, body.CategoryID, body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

// UpdateProduct replaces the whole record; every field must be supplied.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Name       string  `json:"name" binding:"required"`
		Price      float64 `json:"price"`
		Thumbnail  string  `json:"thumbnail"`
		Details    string  `json:"details"`
		CategoryID uint    `json:"category_id" binding:"required"`
		Quantity   int     `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	product, err := pc.catalog.UpdateProduct(id, body.Name, body.Price, body.Thumbnail, body.Details, body.CategoryID, body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := pc.catalog.DeleteProduct(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"product_id": id})
}
