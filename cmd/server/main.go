// HTTP server for the Ruua embedded-finance decision service.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Moha-Bremoo/RouaProject/internal/config"
	"github.com/Moha-Bremoo/RouaProject/internal/handler"
	"github.com/Moha-Bremoo/RouaProject/internal/middleware"
	"github.com/Moha-Bremoo/RouaProject/internal/repository"
	"github.com/Moha-Bremoo/RouaProject/internal/service"
	"github.com/Moha-Bremoo/RouaProject/pkg/database"
	"github.com/Moha-Bremoo/RouaProject/pkg/logger"
	"github.com/Moha-Bremoo/RouaProject/pkg/redis"
)

func main() {
	log := logger.NewLogger("ruua")
	defer log.Sync()

	cfg := config.Load()

	var (
		offerStore service.OfferStore
		txnStore   service.TransactionStore
		fraudStore service.FraudStore
	)

	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := repository.EnsureSchema(context.Background(), db.DB); err != nil {
			log.Fatal("failed to apply database schema", zap.Error(err))
		}

		offerStore = repository.NewOfferRepository(db.DB)
		txnStore = repository.NewTransactionRepository(db.DB)
		fraudStore = repository.NewFraudRepository(db.DB)
	} else {
		log.Info("no DATABASE_URL configured, using in-memory store")
		offerStore = repository.NewMemoryOfferStore()
		txnStore = repository.NewMemoryTransactionStore()
		fraudStore = repository.NewMemoryFraudStore()
	}

	var cache service.OfferCache
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(cfg.RedisURL)
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()); err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		cache = redisClient
	} else {
		log.Info("no REDIS_URL configured, idempotency cache disabled")
	}

	offerService := service.NewOfferService(offerStore, txnStore, cache, log)
	fraudService := service.NewFraudService(fraudStore, log)

	offerHandler := handler.NewOfferHandler(offerService, log)
	fraudHandler := handler.NewFraudHandler(fraudService, log)
	adminHandler := handler.NewAdminHandler(offerService, fraudService, log)

	router := setupRouter(offerHandler, fraudHandler, adminHandler, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

func setupRouter(offers *handler.OfferHandler, fraud *handler.FraudHandler, admin *handler.AdminHandler, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/offers", offers.CreateOffer)
		v1.GET("/offers/:id", offers.GetOffer)
		v1.POST("/payments", offers.AttemptPayment)
		v1.POST("/fraud-checks", fraud.RunCheck)
	}

	adminGroup := router.Group("/admin")
	{
		adminGroup.GET("/offers", admin.ListOffers)
		adminGroup.GET("/transactions", admin.ListTransactions)
		adminGroup.GET("/fraud-checks", admin.ListFraudChecks)
	}

	return router
}
