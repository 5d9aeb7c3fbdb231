package services

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/models"
)

// setupTestDB opens a private in-memory database with foreign keys enforced
// and every table migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.Admin{},
		&models.Manager{},
		&models.Staff{},
		&models.Customer{},
		&models.User{},
		&models.Role{},
		&models.AuthUser{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.Review{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, mail string, balance float64) *models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:          "Test Customer",
		Phone:         mail + "-phone",
		Mail:          mail,
		Password:      "irrelevant",
		WalletBalance: balance,
	}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return &customer
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name, Details: "test category"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return &category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, categoryID uint) *models.Product {
	t.Helper()
	product := models.Product{
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		Quantity:   100,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return &product
}
