package routes

import (
	"net/http"
	"time"

	"gharseva/handlers"
	"gharseva/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("", hb.Catalog.ListCategories)
		api.GET("/:category", hb.Catalog.GetCategoryPage)
	}
}

// RegisterUserRoutes registers registration, login, and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.Register)
		api.POST("/login", hb.User.Login)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/me", hb.User.GetProfile)
		api.PUT("/me/fcm-token", hb.User.UpdateFCMToken)
	}
}

// RegisterCartRoutes registers the per-user cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Cart.GetCart)
		api.POST("/items", hb.Cart.AddItem)
		api.POST("/packages", hb.Cart.AddPackage)
		api.DELETE("/items/:serviceId", hb.Cart.RemoveItem)
		api.POST("/items/:serviceId/decrement", hb.Cart.DecrementItem)
		api.PUT("/addons", hb.Cart.SetAddOns)
		api.GET("/summary", hb.Cart.GetSummary)
	}
}

// RegisterCouponRoutes registers coupon listing and validation.
func RegisterCouponRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/coupons")
	{
		api.GET("", hb.Coupon.ListActive)
		api.POST("/validate", hb.Coupon.Validate)
	}
}

// RegisterCheckoutRoutes registers checkout and booking history.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/checkout", hb.Checkout.Checkout)
		api.GET("/bookings", hb.Checkout.ListBookings)
		api.GET("/bookings/:id", hb.Checkout.GetBooking)
		api.POST("/bookings/:id/cancel", hb.Checkout.CancelBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for catalog and coupon management.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/services", hb.Admin.CreateService)
		adminGroup.PUT("/services/:id", hb.Admin.UpdateService)
		adminGroup.DELETE("/services/:id", hb.Admin.DeleteService)
		adminGroup.POST("/services/images", hb.Admin.UploadPackageImage)
		adminGroup.DELETE("/images/*publicId", hb.Admin.DeletePackageImage)
		adminGroup.POST("/coupons", hb.Admin.CreateCoupon)
		adminGroup.DELETE("/coupons/:code", hb.Admin.DeleteCoupon)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm GharSeva"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCouponRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
