package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/services"
	"github.com/yeremiapane/order-management-api/utils"
)

type OrderController struct {
	orderService *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{orderService: services.NewOrderService(db)}
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.orderService.GetAllOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := oc.orderService.GetOrderByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

func (oc *OrderController) GetOrdersOfCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "customer_id")
	if !ok {
		return
	}

	orders, err := oc.orderService.GetOrdersOfCustomer(customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Orders of customer", orders)
}

// AddOrder runs the placement workflow: balance check, wallet debit and
// order insert in one transaction.
func (oc *OrderController) AddOrder(c *gin.Context) {
	var body struct {
		CustomerID uint `json:"customer_id" binding:"required"`
		ProductID  uint `json:"product_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orderService.PlaceOrder(body.CustomerID, body.ProductID, body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d placed: customer=%d product=%d qty=%d",
		order.ID, order.CustomerID, order.ProductID, order.Quantity)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		DeliveryDate *time.Time `json:"delivery_date"`
		Status       string     `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.orderService.UpdateOrder(id, body.DeliveryDate, body.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := oc.orderService.DeleteOrder(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
