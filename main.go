package main

import (
	"github.com/gin-gonic/gin"

	authrepo "github.com/abdhalim18/inventory-backend/auth/repository"
	authsvc "github.com/abdhalim18/inventory-backend/auth/service"
	categoryrepo "github.com/abdhalim18/inventory-backend/category/repository"
	categorysvc "github.com/abdhalim18/inventory-backend/category/service"
	customerrepo "github.com/abdhalim18/inventory-backend/customer/repository"
	customersvc "github.com/abdhalim18/inventory-backend/customer/service"
	api "github.com/abdhalim18/inventory-backend/handler"
	"github.com/abdhalim18/inventory-backend/middleware"
	orderrepo "github.com/abdhalim18/inventory-backend/order/repository"
	ordersvc "github.com/abdhalim18/inventory-backend/order/service"
	productrepo "github.com/abdhalim18/inventory-backend/product/repository"
	productsvc "github.com/abdhalim18/inventory-backend/product/service"
	"github.com/abdhalim18/inventory-backend/realtime"
	userrepo "github.com/abdhalim18/inventory-backend/user/repository"
	usersvc "github.com/abdhalim18/inventory-backend/user/service"
)

func main() {

	db := setupDatabase()

	hub := realtime.NewHub()

	// repositories + services (impl-style constructors)
	authRepo := authrepo.NewGormAuthRepo(db)
	authService := authsvc.NewAuthService(authRepo)
	authHandler := api.NewAuthHandler(authService)

	userRepo := userrepo.NewGormUserRepo(db)
	userService := usersvc.NewUserService(userRepo)
	userHandler := api.NewUserHandler(userService)

	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)
	customerHandler := api.NewCustomerHandler(customerService, hub)

	categoryRepo := categoryrepo.NewGormCategoryRepo(db)
	categoryService := categorysvc.NewCategoryService(categoryRepo)
	categoryHandler := api.NewCategoryHandler(categoryService, hub)

	productRepo := productrepo.NewGormProductRepo(db)
	productService := productsvc.NewProductService(productRepo)
	productHandler := api.NewProductHandler(productService, hub)

	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo, productRepo)
	orderHandler := api.NewOrderHandler(orderService, hub)

	wsHandler := api.NewWSHandler(hub)

	r := gin.Default()
	r.Use(gin.Recovery(), gin.Logger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/login", authHandler.Login())
		v1.POST("/auth/refresh", authHandler.Refresh())
	}

	// every entity route requires an authenticated session
	authed := v1.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("/customers", customerHandler.ListCustomers())
		authed.POST("/customers", customerHandler.CreateCustomer())
		authed.GET("/customers/:id", customerHandler.GetCustomer())
		authed.PUT("/customers/:id", customerHandler.UpdateCustomer())
		authed.DELETE("/customers/:id", customerHandler.DeleteCustomer())

		authed.GET("/categories", categoryHandler.ListCategories())
		authed.POST("/categories", categoryHandler.CreateCategory())
		authed.GET("/categories/:id", categoryHandler.GetCategory())
		authed.PUT("/categories/:id", categoryHandler.UpdateCategory())
		authed.DELETE("/categories/:id", categoryHandler.DeleteCategory())

		authed.GET("/products", productHandler.ListProducts())
		authed.POST("/products", productHandler.CreateProduct())
		authed.GET("/products/low-stock", productHandler.ListLowStock())
		authed.GET("/products/:id", productHandler.GetProduct())
		authed.PUT("/products/:id", productHandler.UpdateProduct())
		authed.DELETE("/products/:id", productHandler.DeleteProduct())
		authed.POST("/products/:id/adjust-stock", productHandler.AdjustStock())

		authed.GET("/orders", orderHandler.ListOrders())
		authed.POST("/orders", orderHandler.CreateOrder())
		authed.GET("/orders/:id", orderHandler.GetOrder())
		authed.PUT("/orders/:id", orderHandler.UpdateOrder())
		authed.PATCH("/orders/:id/status", orderHandler.UpdateOrderStatus())
		authed.DELETE("/orders/:id", orderHandler.DeleteOrder())

		authed.GET("/ws", wsHandler.AdminSocket())
	}

	adminOnly := authed.Group("")
	adminOnly.Use(middleware.RequireRoles("admin"))
	{
		adminOnly.POST("/users", userHandler.RegisterUser())
		adminOnly.GET("/users", userHandler.ListUsers())
	}

	r.Run(":" + getenv("PORT", "8080"))
}
