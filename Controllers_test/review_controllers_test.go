package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/controllers"
	"github.com/yeremiapane/order-management-api/models"
)

func setupReviewRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	reviewCtrl := controllers.NewReviewController(db)
	router.GET("/review/get", reviewCtrl.GetAllReviews)
	router.GET("/review/get/:id", reviewCtrl.GetReviewByID)
	router.GET("/review/get/product/:product_id", reviewCtrl.GetReviewsOfProduct)
	router.GET("/review/get/customer/:customer_id", reviewCtrl.GetReviewsOfCustomer)
	router.GET("/review/average/:product_id", reviewCtrl.GetAverageRating)
	router.POST("/review/add", reviewCtrl.AddReview)
	router.PUT("/review/update/:id", reviewCtrl.UpdateReview)
	router.DELETE("/review/delete/:id", reviewCtrl.DeleteReview)
	return router
}

func seedReviewFixtures(t *testing.T, db *gorm.DB, withOrder bool) (*models.Customer, *models.Product) {
	t.Helper()

	customer := &models.Customer{Name: "C", Phone: "1", Mail: "c@example.com", Password: "x", WalletBalance: 100}
	mustCreate(t, db, customer)
	category := &models.Category{Name: "Books", Details: "d"}
	mustCreate(t, db, category)
	product := &models.Product{Name: "Novel", Price: 10, CategoryID: category.ID, Quantity: 100}
	mustCreate(t, db, product)
	if withOrder {
		mustCreate(t, db, &models.Order{CustomerID: customer.ID, ProductID: product.ID, Quantity: 1, Status: models.OrderStatusPending})
	}
	return customer, product
}

func TestReviewAddWithoutPurchaseIs404(t *testing.T) {
	db := openTestDB(t)
	router := setupReviewRouter(db)
	customer, product := seedReviewFixtures(t, db, false)

	w := doJSON(t, router, "POST", "/review/add", map[string]interface{}{
		"customer_id": customer.ID,
		"product_id":  product.ID,
		"star":        5,
		"description": "great",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewAddAfterPurchase(t *testing.T) {
	db := openTestDB(t)
	router := setupReviewRouter(db)
	customer, product := seedReviewFixtures(t, db, true)

	w := doJSON(t, router, "POST", "/review/add", map[string]interface{}{
		"customer_id": customer.ID,
		"product_id":  product.ID,
		"star":        5,
		"description": "great",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 5.0, dataOf(t, w)["star"])
}

func TestReviewAddBadStarIs400(t *testing.T) {
	db := openTestDB(t)
	router := setupReviewRouter(db)
	customer, product := seedReviewFixtures(t, db, true)

	w := doJSON(t, router, "POST", "/review/add", map[string]interface{}{
		"customer_id": customer.ID,
		"product_id":  product.ID,
		"star":        6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewAverageEndpoint(t *testing.T) {
	db := openTestDB(t)
	router := setupReviewRouter(db)
	customer, product := seedReviewFixtures(t, db, true)

	w := doJSON(t, router, "GET", "/review/average/"+itoa(product.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0.0, dataOf(t, w)["average"])

	for _, star := range []int{5, 4} {
		w = doJSON(t, router, "POST", "/review/add", map[string]interface{}{
			"customer_id": customer.ID,
			"product_id":  product.ID,
			"star":        star,
			"description": "r",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w = doJSON(t, router, "GET", "/review/average/"+itoa(product.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 4.5, dataOf(t, w)["average"].(float64), 0.001)

	w = doJSON(t, router, "GET", "/review/average/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewUpdateAndDeleteOverHTTP(t *testing.T) {
	db := openTestDB(t)
	router := setupReviewRouter(db)
	customer, product := seedReviewFixtures(t, db, true)

	w := doJSON(t, router, "POST", "/review/add", map[string]interface{}{
		"customer_id": customer.ID,
		"product_id":  product.ID,
		"star":        2,
		"description": "meh",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	reviewID := uint(dataOf(t, w)["id"].(float64))

	w = doJSON(t, router, "PUT", "/review/update/"+itoa(reviewID), map[string]interface{}{
		"star":        4,
		"description": "better on a reread",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4.0, dataOf(t, w)["star"])

	w = doJSON(t, router, "DELETE", "/review/delete/"+itoa(reviewID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/review/get/"+itoa(reviewID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
