package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/controllers"
	"github.com/yeremiapane/order-management-api/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	loginCtrl := controllers.NewLoginController(db)
	authCtrl := controllers.NewAuthController(db)
	adminCtrl := controllers.NewAdminController(db)
	managerCtrl := controllers.NewManagerController(db)
	staffCtrl := controllers.NewStaffController(db)
	customerCtrl := controllers.NewCustomerController(db)
	userCtrl := controllers.NewUserController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	reviewCtrl := controllers.NewReviewController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		// Four-table credential login (admin, manager, staff, customer)
		public.POST("/login", loginCtrl.Login)

		// Token subsystem over the users/roles tables, separate identity
		// model from the credential login above
		public.POST("/api/auth/register", authCtrl.Register)
		public.POST("/api/auth/login", authCtrl.Login)
	}
	r.POST("/api/auth/logout", authCtrl.Logout)
	r.GET("/api/auth/me", middlewares.LegacyAuthMiddleware(), authCtrl.Me)

	// Catalog browsing and reviews are readable without a login
	r.GET("/category/get", categoryCtrl.GetAllCategories)
	r.GET("/category/get/:id", categoryCtrl.GetCategoryByID)
	r.GET("/product/get", productCtrl.GetAllProducts)
	r.GET("/product/get/:id", productCtrl.GetProductByID)
	r.GET("/review/get", reviewCtrl.GetAllReviews)
	r.GET("/review/get/:id", reviewCtrl.GetReviewByID)
	r.GET("/review/get/product/:product_id", reviewCtrl.GetReviewsOfProduct)
	r.GET("/review/get/customer/:customer_id", reviewCtrl.GetReviewsOfCustomer)
	r.GET("/review/average/:product_id", reviewCtrl.GetAverageRating)

	// Customer-facing writes
	r.POST("/customer/add", customerCtrl.AddCustomer)
	r.POST("/order/add", orderCtrl.AddOrder)
	r.POST("/review/add", reviewCtrl.AddReview)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	// CATEGORIES (staff and up)
	catAuth := auth.Group("/category")
	catAuth.Use(middlewares.RequireRole("manager", "staff"))
	{
		catAuth.POST("/add", categoryCtrl.AddCategory)
		catAuth.PUT("/update/:id", categoryCtrl.UpdateCategory)
		catAuth.DELETE("/delete/:id", categoryCtrl.DeleteCategory)
	}

	// PRODUCTS (staff and up)
	prodAuth := auth.Group("/product")
	prodAuth.Use(middlewares.RequireRole("manager", "staff"))
	{
		prodAuth.POST("/add", productCtrl.AddProduct)
		prodAuth.PUT("/update/:id", productCtrl.UpdateProduct)
		prodAuth.DELETE("/delete/:id", productCtrl.DeleteProduct)
	}

	// ORDERS
	auth.GET("/order/get", orderCtrl.GetAllOrders)
	auth.GET("/order/get/:id", orderCtrl.GetOrderByID)
	auth.GET("/order/get/customer/:customer_id", orderCtrl.GetOrdersOfCustomer)
	auth.PUT("/order/update/:id", orderCtrl.UpdateOrder)
	auth.DELETE("/order/delete/:id", orderCtrl.DeleteOrder)

	// REVIEWS (mutations beyond creation)
	auth.PUT("/review/update/:id", reviewCtrl.UpdateReview)
	auth.DELETE("/review/delete/:id", reviewCtrl.DeleteReview)

	// CUSTOMERS (staff and up)
	custAuth := auth.Group("/customer")
	custAuth.Use(middlewares.RequireRole("manager", "staff"))
	{
		custAuth.GET("/get", customerCtrl.GetAllCustomers)
		custAuth.GET("/get/:id", customerCtrl.GetCustomerByID)
		custAuth.PUT("/update/:id", customerCtrl.UpdateCustomer)
		custAuth.DELETE("/delete/:id", customerCtrl.DeleteCustomer)
	}

	// STAFF (manager and up)
	staffAuth := auth.Group("/staff")
	staffAuth.Use(middlewares.RequireRole("manager"))
	{
		staffAuth.GET("/get", staffCtrl.GetAllStaff)
		staffAuth.GET("/get/:id", staffCtrl.GetStaffByID)
		staffAuth.POST("/add", staffCtrl.AddStaff)
		staffAuth.PUT("/update/:id", staffCtrl.UpdateStaff)
		staffAuth.DELETE("/delete/:id", staffCtrl.DeleteStaff)
	}

	// MANAGERS, ADMINS, USERS (admin only)
	mgrAuth := auth.Group("/manager")
	mgrAuth.Use(middlewares.RequireRole("admin"))
	{
		mgrAuth.GET("/get", managerCtrl.GetAllManagers)
		mgrAuth.GET("/get/:id", managerCtrl.GetManagerByID)
		mgrAuth.POST("/add", managerCtrl.AddManager)
		mgrAuth.PUT("/update/:id", managerCtrl.UpdateManager)
		mgrAuth.DELETE("/delete/:id", managerCtrl.DeleteManager)
	}

	adminAuth := auth.Group("/admin")
	adminAuth.Use(middlewares.RequireRole("admin"))
	{
		adminAuth.GET("/get", adminCtrl.GetAllAdmins)
		adminAuth.GET("/get/:id", adminCtrl.GetAdminByID)
		adminAuth.POST("/add", adminCtrl.AddAdmin)
		adminAuth.PUT("/update/:id", adminCtrl.UpdateAdmin)
		adminAuth.DELETE("/delete/:id", adminCtrl.DeleteAdmin)
	}

	usersAuth := auth.Group("/user")
	usersAuth.Use(middlewares.RequireRole("admin"))
	{
		usersAuth.GET("/get", userCtrl.GetAllUsers)
		usersAuth.GET("/get/:id", userCtrl.GetUserByID)
		usersAuth.POST("/add", userCtrl.AddUser)
		usersAuth.PUT("/update/:id", userCtrl.UpdateUser)
		usersAuth.DELETE("/delete/:id", userCtrl.DeleteUser)
	}

	// Dashboard (admin only, checked inside the handler too)
	auth.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)

	return r
}
