package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/models"
	"github.com/yeremiapane/order-management-api/utils"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboardStats summarizes the store for the admin dashboard.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	role, _ := c.Get("role")
	if role != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var stats struct {
		TotalCustomers int64   `json:"total_customers"`
		TotalProducts  int64   `json:"total_products"`
		TotalOrders    int64   `json:"total_orders"`
		TodayOrders    int64   `json:"today_orders"`
		TotalReviews   int64   `json:"total_reviews"`
		PendingOrders  int64   `json:"pending_orders"`
		TotalRevenue   float64 `json:"total_revenue"`
	}

	if err := dc.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Review{}).Count(&stats.TotalReviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)
	if err := dc.DB.Model(&models.Order{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.TodayOrders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Revenue is what orders have actually debited from wallets.
	row := dc.DB.Model(&models.Order{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Select("COALESCE(SUM(products.price * orders.quantity), 0)").
		Row()
	if err := row.Scan(&stats.TotalRevenue); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}
