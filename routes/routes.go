package routes

import (
	"net/http"
	"time"

	"weddingplanner/handlers"
	"weddingplanner/middleware"
	"weddingplanner/services/auth"
	"weddingplanner/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the operator login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterCheckoutRoutes sets up the client booking screen. Any signed-in
// operator may book.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkout := r.Group("/api/checkout")
	{
		checkout.Use(middleware.JWTAuthMiddleware(hb.Auth))
		checkout.POST("", hb.StartCheckout)
		checkout.GET("/:id", hb.GetCheckout)
		checkout.POST("/:id/catalog", hb.RefreshCatalog)
		checkout.PUT("/:id/customer", hb.SetCustomer)
		checkout.PUT("/:id/selections/:category", hb.SetSelection)
		checkout.POST("/:id/review", hb.ReviewCheckout)
		checkout.POST("/:id/back", hb.BackToEditing)
		checkout.POST("/:id/confirm", hb.ConfirmCheckout)
		checkout.DELETE("/:id", hb.LeaveCheckout)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.Auth, auth.RoleAdministrator))

		adminGroup.GET("/users", hb.AdminHandler.ListUsersHandler)
		adminGroup.POST("/users", hb.AdminHandler.CreateUserHandler)
		adminGroup.PUT("/users/:id", hb.AdminHandler.UpdateUserHandler)
		adminGroup.DELETE("/users/:id", hb.AdminHandler.DeleteUserHandler)

		adminGroup.GET("/services", hb.AdminHandler.ListServicesHandler)
		adminGroup.POST("/services/:category", hb.AdminHandler.CreateServiceHandler)
		adminGroup.PUT("/services/:category/:id", hb.AdminHandler.UpdateServiceHandler)
		adminGroup.DELETE("/services/:category/:id", hb.AdminHandler.DeleteServiceHandler)

		adminGroup.GET("/locations", hb.AdminHandler.ListLocationsHandler)
		adminGroup.POST("/locations", hb.AdminHandler.CreateLocationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm the wedding planner",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
