package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gharseva/config"
	"gharseva/cron"
	"gharseva/database"
	bookingRepoPkg "gharseva/database/repository/booking"
	cartRepoPkg "gharseva/database/repository/cart"
	catalogRepoPkg "gharseva/database/repository/catalog"
	couponRepoPkg "gharseva/database/repository/coupon"
	userRepoPkg "gharseva/database/repository/user"
	"gharseva/handlers"
	"gharseva/routes"
	"gharseva/services/booking"
	"gharseva/services/cart"
	"gharseva/services/catalog"
	"gharseva/services/coupon"
	"gharseva/services/notification"
	"gharseva/services/user"
	"gharseva/stream"
	"gharseva/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitCatalogCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	couponRepo := couponRepoPkg.NewMongoCouponRepo()
	cartRepo := cartRepoPkg.NewMongoCartRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  serviceRepo,
		Cache: catalog.NewRedisPageCache(utils.GetCatalogCacheClient()),
	}
	couponService := &coupon.DefaultCouponService{
		Repo:  couponRepo,
		Cache: utils.GetCacheClient(),
	}
	cartService := &cart.DefaultCartService{
		Repo:        cartRepo,
		CatalogRepo: serviceRepo,
		CouponSvc:   couponService,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		CartRepo: cartRepo,
		UserRepo: userRepo,
		CartSvc:  cartService,
		Notifier: notificationService,
	}

	publisher := stream.NewKafkaPublisher()
	defer publisher.Close()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Catalog:  &handlers.CatalogHandler{CatalogSvc: catalogService, Logger: logger},
		Cart:     &handlers.CartHandler{CartSvc: cartService, Logger: logger},
		Coupon:   &handlers.CouponHandler{CouponSvc: couponService, Logger: logger},
		User:     &handlers.UserHandler{UserSvc: userService, Logger: logger},
		Checkout: &handlers.CheckoutHandler{BookingSvc: bookingService, Logger: logger},
		Admin: &handlers.AdminHandler{
			CatalogSvc: catalogService,
			CouponSvc:  couponService,
			StorageSvc: cloudinaryStorageService,
			Publisher:  publisher,
			Logger:     logger,
		},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background pipeline: Kafka events -> asynq refresh tasks -> cache
	// rebuild + FCM fanout.
	cron.InitCatalogWorker(catalogService, notificationService)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	go func() {
		if err := stream.ConsumeCatalogChanges(consumerCtx); err != nil && consumerCtx.Err() == nil {
			logger.Sugar().Errorf("main: catalog consumer stopped: %v", err)
		}
	}()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	stopConsumer()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
