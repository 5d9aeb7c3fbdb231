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

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Find(&customers).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All customers", customers)
}

func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Customer", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

func (cc *CustomerController) AddCustomer(c *gin.Context) {
	var body struct {
		Name          string  `json:"name" binding:"required"`
		Location      string  `json:"location"`
		Phone         string  `json:"phone" binding:"required"`
		Mail          string  `json:"mail" binding:"required,email"`
		BirthDate     string  `json:"birth_date"`
		Password      string  `json:"password" binding:"required"`
		WalletBalance float64 `json:"wallet_balance"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.WalletBalance < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("wallet balance must not be negative"))
		return
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	customer := models.Customer{
		Name:          body.Name,
		Location:      body.Location,
		Phone:         body.Phone,
		Mail:          body.Mail,
		BirthDate:     body.BirthDate,
		Password:      hashed,
		WalletBalance: body.WalletBalance,
	}
	if err := cc.DB.Create(&customer).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("phone and mail must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s", customer.Mail)
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// UpdateCustomer replaces the whole record. The password is re-hashed, the
// creation timestamp is preserved.
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var body struct {
		Name          string  `json:"name" binding:"required"`
		Location      string  `json:"location"`
		Phone         string  `json:"phone" binding:"required"`
		Mail          string  `json:"mail" binding:"required,email"`
		BirthDate     string  `json:"birth_date"`
		Password      string  `json:"password" binding:"required"`
		WalletBalance float64 `json:"wallet_balance"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.WalletBalance < 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("wallet balance must not be negative"))
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Customer", Field: "id", Value: id})
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

	customer.Name = body.Name
	customer.Location = body.Location
	customer.Phone = body.Phone
	customer.Mail = body.Mail
	customer.BirthDate = body.BirthDate
	customer.Password = hashed
	customer.WalletBalance = body.WalletBalance

	if err := cc.DB.Save(&customer).Error; err != nil {
		if services.IsDuplicateErr(err) {
			utils.RespondError(c, http.StatusBadRequest, errors.New("phone and mail must be unique"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondServiceError(c, &services.NotFoundError{Resource: "Customer", Field: "id", Value: id})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		if services.IsForeignKeyErr(err) {
			respondServiceError(c, &services.ConflictError{
				Resource: "Customer",
				Reason:   "associated data prevents deletion, cannot delete the customer",
			})
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"customer_id": id})
}
