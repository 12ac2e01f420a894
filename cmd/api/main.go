package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/sliceandcode/storefront-api/internal/config"
	"github.com/sliceandcode/storefront-api/internal/handler"
	"github.com/sliceandcode/storefront-api/internal/middleware"
	"github.com/sliceandcode/storefront-api/internal/postal"
	"github.com/sliceandcode/storefront-api/internal/repository"
	"github.com/sliceandcode/storefront-api/internal/service"
	"github.com/sliceandcode/storefront-api/internal/storage"
	"github.com/sliceandcode/storefront-api/internal/worker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis backs the storage substrate.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("connected to Redis")

	// RabbitMQ
	amqpConn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		log.Error("connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer amqpConn.Close()

	amqpCh, err := amqpConn.Channel()
	if err != nil {
		log.Error("open RabbitMQ channel", "error", err)
		os.Exit(1)
	}
	defer amqpCh.Close()

	if err := worker.SetupRabbitMQ(amqpCh); err != nil {
		log.Error("setup RabbitMQ", "error", err)
		os.Exit(1)
	}
	log.Info("connected to RabbitMQ")

	// Storage + repositories
	store := storage.NewRedisStore(redisClient, cfg.Store.KeyPrefix)
	catalogRepo := repository.NewCatalogRepository()
	cartRepo := repository.NewCartRepository(store)
	couponRepo := repository.NewCouponRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	profileRepo := repository.NewProfileRepository(store)
	wishlistRepo := repository.NewWishlistRepository(store)

	// Services
	catalogSvc := service.NewCatalogService(catalogRepo)
	cartSvc := service.NewCartService(cartRepo, couponRepo, catalogRepo)
	couponSvc := service.NewCouponService(cartRepo, couponRepo)
	orderSvc := service.NewOrderService(orderRepo, cartRepo, couponRepo, profileRepo, amqpCh, cfg.Checkout.ProcessingDelay)
	identitySvc := service.NewIdentityService(profileRepo)
	wishlistSvc := service.NewWishlistService(wishlistRepo, catalogRepo)
	postalClient := postal.NewClient(cfg.Postal.BaseURL, cfg.Postal.Timeout)

	// Handlers
	productH := handler.NewProductHandler(catalogSvc)
	cartH := handler.NewCartHandler(cartSvc, couponSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	profileH := handler.NewProfileHandler(identitySvc)
	wishlistH := handler.NewWishlistHandler(wishlistSvc)
	postalH := handler.NewPostalHandler(postalClient)
	healthH := handler.NewHealthHandler(redisClient, amqpConn)

	// Worker
	notifyWorker := worker.NewNotifyWorker(amqpCh, orderRepo, redisClient, log)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", productH.List)
		products.GET("/:id", productH.GetByID)

		cart := v1.Group("/cart")
		cart.GET("", cartH.GetCart)
		cart.POST("/items", cartH.AddItem)
		cart.PATCH("/items/:id", cartH.UpdateItem)
		cart.DELETE("/items/:id", cartH.DeleteItem)
		cart.DELETE("", cartH.ClearCart)
		cart.POST("/coupon", cartH.ApplyCoupon)

		orders := v1.Group("/orders")
		orders.POST("", orderH.Checkout)
		orders.GET("", orderH.ListOrders)
		orders.GET("/:id", orderH.GetOrder)

		operator := orders.Group("", middleware.OperatorOnly(cfg.Operator.Token))
		operator.PATCH("/:id/status", orderH.UpdateStatus)
		operator.DELETE("/:id", orderH.DeleteOrder)

		profile := v1.Group("/profile")
		profile.POST("/login", profileH.Login)
		profile.GET("", profileH.Get)
		profile.PATCH("", profileH.Update)
		profile.DELETE("", profileH.Logout)
		profile.POST("/addresses", profileH.AddAddress)
		profile.PATCH("/addresses/:id", profileH.UpdateAddress)
		profile.DELETE("/addresses/:id", profileH.DeleteAddress)

		wishlist := v1.Group("/wishlist")
		wishlist.GET("", wishlistH.Get)
		wishlist.POST("/:productId", wishlistH.Toggle)
		wishlist.DELETE("", wishlistH.Clear)

		v1.GET("/postal/:pin", postalH.Lookup)
	}

	if err := notifyWorker.Start(ctx); err != nil {
		log.Error("start notify worker", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	notifyWorker.Stop()
	time.Sleep(500 * time.Millisecond)
	cancel()
	log.Info("server stopped")
}
