package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/models"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// AddReview creates a review for a (customer, product) pair. Reviews are
// purchase-gated: some order linking exactly that customer and product must
// already exist, its status does not matter.
func (rs *ReviewService) AddReview(customerID, productID uint, star int, description string) (*models.Review, error) {
	if star < 1 || star > 5 {
		return nil, &ValidationError{Reason: "star rating must be between 1 and 5"}
	}

	if err := rs.requireCustomer(customerID); err != nil {
		return nil, err
	}
	if err := rs.requireProduct(productID); err != nil {
		return nil, err
	}

	var count int64
	if err := rs.DB.Model(&models.Order{}).
		Where("customer_id = ? AND product_id = ?", customerID, productID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, &PurchaseNotFoundError{CustomerID: customerID, ProductID: productID}
	}

	review := models.Review{
		Description: description,
		Star:        star,
		CustomerID:  customerID,
		ProductID:   productID,
	}
	if err := rs.DB.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("failed to save the review: %w", err)
	}
	return &review, nil
}

// AverageRating returns the mean star rating of a product. A product with no
// reviews yields 0.0 and no error; only a missing product is an error.
func (rs *ReviewService) AverageRating(productID uint) (float64, error) {
	if err := rs.requireProduct(productID); err != nil {
		return 0, err
	}

	var reviews []models.Review
	if err := rs.DB.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0.0, nil
	}

	var total int
	for _, r := range reviews {
		total += r.Star
	}
	return float64(total) / float64(len(reviews)), nil
}

func (rs *ReviewService) GetAllReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := rs.DB.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (rs *ReviewService) GetReviewByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := rs.DB.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Review", Field: "id", Value: id}
		}
		return nil, err
	}
	return &review, nil
}

func (rs *ReviewService) GetReviewsOfProduct(productID uint) ([]models.Review, error) {
	if err := rs.requireProduct(productID); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := rs.DB.Where("product_id = ?", productID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (rs *ReviewService) GetReviewsOfCustomer(customerID uint) ([]models.Review, error) {
	if err := rs.requireCustomer(customerID); err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := rs.DB.Where("customer_id = ?", customerID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (rs *ReviewService) UpdateReview(id uint, star int, description string) (*models.Review, error) {
	if star < 1 || star > 5 {
		return nil, &ValidationError{Reason: "star rating must be between 1 and 5"}
	}

	review, err := rs.GetReviewByID(id)
	if err != nil {
		return nil, err
	}

	review.Star = star
	review.Description = description
	if err := rs.DB.Save(review).Error; err != nil {
		return nil, fmt.Errorf("failed to update the review: %w", err)
	}
	return review, nil
}

func (rs *ReviewService) DeleteReview(id uint) error {
	review, err := rs.GetReviewByID(id)
	if err != nil {
		return err
	}
	if err := rs.DB.Delete(review).Error; err != nil {
		return fmt.Errorf("failed to delete the review: %w", err)
	}
	return nil
}

func (rs *ReviewService) requireCustomer(id uint) error {
	var customer models.Customer
	if err := rs.DB.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Customer", Field: "id", Value: id}
		}
		return err
	}
	return nil
}

func (rs *ReviewService) requireProduct(id uint) error {
	var product models.Product
	if err := rs.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "Product", Field: "id", Value: id}
		}
		return err
	}
	return nil
}
