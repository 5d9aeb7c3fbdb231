package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/services"
	"github.com/yeremiapane/order-management-api/utils"
)

type ReviewController struct {
	reviewService *services.ReviewService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{reviewService: services.NewReviewService(db)}
}

func (rc *ReviewController) GetAllReviews(c *gin.Context) {
	reviews, err := rc.reviewService.GetAllReviews()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All reviews", reviews)
}

func (rc *ReviewController) GetReviewByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	review, err := rc.reviewService.GetReviewByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review detail", review)
}

func (rc *ReviewController) GetReviewsOfProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	reviews, err := rc.reviewService.GetReviewsOfProduct(productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reviews of product", reviews)
}

func (rc *ReviewController) GetReviewsOfCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}

	reviews, err := rc.reviewService.GetReviewsOfCustomer(customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reviews of customer", reviews)
}

func (rc *ReviewController) GetAverageRating(c *gin.Context) {
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	average, err := rc.reviewService.AverageRating(productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Average rating", gin.H{
		"product_id": productID,
		"average":    average,
	})
}

// AddReview creates a purchase-gated review.
func (rc *ReviewController) AddReview(c *gin.Context) {
	var body struct {
		CustomerID  uint   `json:"customer_id" binding:"required"`
		ProductID   uint   `json:"product_id" binding:"required"`
		Star        int    `json:"star" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	review, err := rc.reviewService.AddReview(body.CustomerID, body.ProductID, body.Star, body.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Review created", review)
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Star        int    `json:"star" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	review, err := rc.reviewService.UpdateReview(id, body.Star, body.Description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review updated", review)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.reviewService.DeleteReview(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Review deleted", gin.H{"review_id": id})
}
