package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/order-management-api/models"
)

func TestAddReviewRequiresPurchase(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReviewService(db)

	customer := seedCustomer(t, db, "rev@example.com", 100.0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, "Novel", 10.0, category.ID)

	_, err := rs.AddReview(customer.ID, product.ID, 5, "great")
	var noPurchase *PurchaseNotFoundError
	assert.True(t, errors.As(err, &noPurchase))
	assert.Equal(t, customer.ID, noPurchase.CustomerID)
	assert.Equal(t, product.ID, noPurchase.ProductID)

	// Any order linking the pair unlocks the review, status is irrelevant.
	db.Create(&models.Order{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1, Status: models.OrderStatusPending})

	review, err := rs.AddReview(customer.ID, product.ID, 5, "great")
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Star)
	assert.Equal(t, "great", review.Description)
}

func TestAddReviewOrderOfAnotherCustomerDoesNotQualify(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReviewService(db)

	buyer := seedCustomer(t, db, "buyer@example.com", 100.0)
	lurker := seedCustomer(t, db, "lurker@example.com", 100.0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, "Novel", 10.0, category.ID)

	db.Create(&models.Order{CustomerID: buyer.ID, ProductID: product.ID, Quantity: 1, Status: models.OrderStatusPending})

	_, err := rs.AddReview(lurker.ID, product.ID, 4, "never bought it")
	var noPurchase *PurchaseNotFoundError
	assert.True(t, errors.As(err, &noPurchase))
}

func TestAddReviewUnknownCustomerOrProduct(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReviewService(db)

	customer := seedCustomer(t, db, "rev2@example.com", 100.0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, "Novel", 10.0, category.ID)

	var notFound *NotFoundError

	_, err := rs.AddReview(9999, product.ID, 5, "x")
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Customer", notFound.Resource)

	_, err = rs.AddReview(customer.ID, 9999, 5, "x")
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Product", notFound.Resource)
}

func TestAddReviewValidatesStarRange(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReviewService(db)

	customer := seedCustomer(t, db, "rev3@example.com", 100.0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, "Novel", 10.0, category.ID)
	db.Create(&models.Order{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1, Status: models.OrderStatusPending})

	var validation *ValidationError

	_, err := rs.AddReview(customer.ID, product.ID, 0, "x")
	assert.True(t, errors.As(err, &validation))

	_, err = rs.AddReview(customer.ID, product.ID, 6, "x")
	assert.True(t, errors.As(err, &validation))
}

func TestAverageRating(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReviewService(db)

	customer := seedCustomer(t, db, "avg@example.com", 100.0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, "Novel", 10.0, category.ID)
	db.Create(&models.Order{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1, Status: models.OrderStatusPending})

	// No reviews yet: 0.0 and no error, distinct from a missing product.
	average, err := rs.AverageRating(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, average)

	_, err = rs.AddReview(customer.ID, product.ID, 5, "five")
	assert.NoError(t, err)
	_, err = rs.AddReview(customer.ID, product.ID, 4, "four")
	assert.NoError(t, err)

	average, err = rs.AverageRating(product.ID)
	assert.NoError(t, err)
	assert.InDelta(t, 4.5, average, 0.001)

	_, err = rs.AverageRating(9999)
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestReviewQueriesByProductAndCustomer(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReviewService(db)

	customer := seedCustomer(t, db, "q@example.com", 100.0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, "Novel", 10.0, category.ID)
	other := seedProduct(t, db, "Atlas", 20.0, category.ID)
	db.Create(&models.Order{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1, Status: models.OrderStatusPending})
	db.Create(&models.Order{CustomerID: customer.ID, ProductID: other.ID, Quantity: 1, Status: models.OrderStatusPending})

	_, err := rs.AddReview(customer.ID, product.ID, 3, "ok")
	assert.NoError(t, err)
	_, err = rs.AddReview(customer.ID, other.ID, 5, "nice")
	assert.NoError(t, err)

	byProduct, err := rs.GetReviewsOfProduct(product.ID)
	assert.NoError(t, err)
	assert.Len(t, byProduct, 1)

	byCustomer, err := rs.GetReviewsOfCustomer(customer.ID)
	assert.NoError(t, err)
	assert.Len(t, byCustomer, 2)
}

func TestUpdateAndDeleteReview(t *testing.T) {
	db := setupTestDB(t)
	rs := NewReviewService(db)

	customer := seedCustomer(t, db, "ud@example.com", 100.0)
	category := seedCategory(t, db, "Books")
	product := seedProduct(t, db, "Novel", 10.0, category.ID)
	db.Create(&models.Order{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1, Status: models.OrderStatusPending})

	review, err := rs.AddReview(customer.ID, product.ID, 2, "meh")
	assert.NoError(t, err)

	updated, err := rs.UpdateReview(review.ID, 4, "better on a reread")
	assert.NoError(t, err)
	assert.Equal(t, 4, updated.Star)
	assert.Equal(t, "better on a reread", updated.Description)

	assert.NoError(t, rs.DeleteReview(review.ID))

	err = rs.DeleteReview(review.ID)
	var notFound *NotFoundError
	assert.True(t, errors.As(err, &notFound))
}
