package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/order-management-api/models"
)

type OrderService struct {
	DB *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

// lockForUpdate takes a row lock where the dialect supports it. sqlite has
// no FOR UPDATE; its single-writer transactions already serialize the debit.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// PlaceOrder validates an order against the customer's wallet and the
// product catalog, then debits the wallet and inserts the order inside one
// transaction. The customer row is locked for the duration, so two
// concurrent orders against the same wallet serialize and cannot both pass
// the balance check.
func (svc *OrderService) PlaceOrder(customerID, productID uint, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, &ValidationError{Reason: "quantity must be at least 1"}
	}

	var order models.Order
	err := svc.DB.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := lockForUpdate(tx).First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Customer", Field: "id", Value: customerID}
			}
			return err
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Resource: "Product", Field: "id", Value: productID}
			}
			return err
		}

		required := product.Price * float64(quantity)
		if customer.WalletBalance < required {
			return &InsufficientBalanceError{Required: required, Available: customer.WalletBalance}
		}

		customer.WalletBalance -= required
		if err := tx.Save(&customer).Error; err != nil {
			return fmt.Errorf("failed to withdraw cost from customer: %w", err)
		}

		order = models.Order{
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   quantity,
			Status:     models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to save the order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (svc *OrderService) GetAllOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := svc.DB.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (svc *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := svc.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Order", Field: "id", Value: id}
		}
		return nil, err
	}
	return &order, nil
}

func (svc *OrderService) GetOrdersOfCustomer(customerID uint) ([]models.Order, error) {
	var customer models.Customer
	if err := svc.DB.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Customer", Field: "id", Value: customerID}
		}
		return nil, err
	}

	var orders []models.Order
	if err := svc.DB.Where("customer_id = ?", customerID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrder replaces the two mutable fields of an order. Callers always
// supply both, there is no partial patch.
func (svc *OrderService) UpdateOrder(id uint, deliveryDate *time.Time, status string) (*models.Order, error) {
	order, err := svc.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	order.DeliveryDate = deliveryDate
	order.Status = status
	if err := svc.DB.Save(order).Error; err != nil {
		return nil, fmt.Errorf("failed to update the order: %w", err)
	}
	return order, nil
}

func (svc *OrderService) DeleteOrder(id uint) error {
	order, err := svc.GetOrderByID(id)
	if err != nil {
		return err
	}
	if err := svc.DB.Delete(order).Error; err != nil {
		return fmt.Errorf("failed to delete the order: %w", err)
	}
	return nil
}
