package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/config"
	"github.com/yeremiapane/order-management-api/middlewares"
	"github.com/yeremiapane/order-management-api/models"
	"github.com/yeremiapane/order-management-api/router"
	"github.com/yeremiapane/order-management-api/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedDefaults(db)

	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
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
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedDefaults makes sure the default role for /api/auth/register exists and
// bootstraps an admin account when the table is empty and credentials are
// configured.
func seedDefaults(db *gorm.DB) {
	var roleCount int64
	db.Model(&models.Role{}).Where("name = ?", "User").Count(&roleCount)
	if roleCount == 0 {
		if err := db.Create(&models.Role{Name: "User"}).Error; err != nil {
			utils.ErrorLogger.Printf("Error seeding default role: %v", err)
		}
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminUser == "" || adminPass == "" {
		return
	}

	var adminCount int64
	db.Model(&models.Admin{}).Count(&adminCount)
	if adminCount > 0 {
		return
	}

	hashed, err := utils.HashPassword(adminPass)
	if err != nil {
		utils.ErrorLogger.Printf("Error hashing bootstrap admin password: %v", err)
		return
	}
	if err := db.Create(&models.Admin{Username: adminUser, Password: hashed}).Error; err != nil {
		utils.ErrorLogger.Printf("Error seeding bootstrap admin: %v", err)
		return
	}
	utils.InfoLogger.Printf("Bootstrap admin %s created", adminUser)
}
