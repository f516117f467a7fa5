package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"pharmacy_store/internal/api"
	"pharmacy_store/internal/app/service"
	"pharmacy_store/internal/app/worker"
	"pharmacy_store/internal/domain/repository"
	"pharmacy_store/internal/platform/config"
	"pharmacy_store/internal/platform/database"
	"pharmacy_store/internal/platform/logging"
	"pharmacy_store/internal/platform/queue"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	logger.Info("Configuration loaded.")

	// 2. Initialize Database
	connectCtx, connectCancel := context.WithTimeout(context.Background(), cfg.MongoConnectTimeout)
	client, db, err := database.Connect(connectCtx, cfg, logger)
	connectCancel()
	if err != nil {
		logger.Error("Could not configure MongoDB client", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.Close(closeCtx, client, logger)
	}()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), cfg.MongoConnectTimeout)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		logger.Warn("Could not ensure indexes", "error", err)
	}
	indexCancel()

	// 3. Initialize Repositories
	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	// 4. Initialize Redis (optional)
	var (
		rdb        *redis.Client
		orderQueue *queue.OrderQueue
		publisher  service.OrderPublisher
	)
	if cfg.QueueEnabled() {
		rdb, err = queue.Connect(context.Background(), cfg)
		if err != nil {
			logger.Error("Could not connect to Redis, order queue disabled", "error", err)
		} else {
			defer rdb.Close()
			orderQueue = queue.NewOrderQueue(rdb, cfg.OrderQueueName)
			publisher = orderQueue
			logger.Info("Redis connected.", "queue", orderQueue.Name())
		}
	}

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, cfg.BcryptCost, logger)
	productService := service.NewProductService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, publisher, logger)

	if cfg.AdminSeedEnabled() {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
		created, err := authService.EnsureAdmin(seedCtx, service.AdminSeed{
			FullName: cfg.AdminFullName,
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		})
		seedCancel()
		if err != nil {
			logger.Error("Could not seed admin account", "error", err)
		} else if created {
			logger.Info("Admin account created.", "username", cfg.AdminUsername)
		}
	}

	// 6. Initialize Order Worker (as a goroutine)
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	workerDone := make(chan struct{})
	if orderQueue != nil {
		orderWorker := worker.NewOrderWorker(orderQueue, orderRepo, logger)
		go func() {
			defer close(workerDone)
			orderWorker.Start(workerCtx)
		}()
	} else {
		close(workerDone)
	}

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(logger, cfg.CORSAllowedOrigins, authService, productService, orderService)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-stop:
	case err := <-serverErr:
		logger.Error("Could not listen", "port", cfg.APIPort, "error", err)
	}

	logger.Info("Shutting down server...")
	workerCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	<-workerDone

	logger.Info("Server and worker stopped gracefully.")
}
