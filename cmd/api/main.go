package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/northwind-service/internal/cache"
	"github.com/northwind-service/internal/config"
	"github.com/northwind-service/internal/events"
	handler "github.com/northwind-service/internal/http"
	"github.com/northwind-service/internal/logger"
	"github.com/northwind-service/internal/repo"
	"github.com/northwind-service/internal/seed"
	"github.com/northwind-service/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New()
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		zlog.Fatal("failed to ping database", zap.Error(err))
	}
	zlog.Info("connected to database")

	if err := repo.RunMigrations(db, cfg.MigrationsDir); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}
	zlog.Info("migrations applied")

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		zlog.Fatal("invalid redis url", zap.Error(err))
	}
	redisClient := redis.NewClient(opt)
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		zlog.Fatal("failed to ping redis", zap.Error(err))
	}
	zlog.Info("connected to redis")

	categoryRepo := repo.NewPostgresCategoryRepository(db)
	productRepo := repo.NewPostgresProductRepository(db)
	customerRepo := repo.NewPostgresCustomerRepository(db)
	employeeRepo := repo.NewPostgresEmployeeRepository(db)
	shipperRepo := repo.NewPostgresShipperRepository(db)
	orderRepo := repo.NewPostgresOrderRepository(db)

	if cfg.Seed {
		seeder := seed.New(categoryRepo, productRepo, customerRepo, employeeRepo, shipperRepo, zlog)
		if err := seeder.Run(context.Background()); err != nil {
			zlog.Fatal("failed to seed data", zap.Error(err))
		}
	}

	publisher := events.NewRedisPublisher(redisClient)
	productCache := cache.NewProductCache(redisClient, cfg.ProductCacheTTL)

	orderService := service.NewOrderService(orderRepo, productRepo, customerRepo, employeeRepo, shipperRepo, publisher)
	productService := service.NewProductService(productRepo, categoryRepo, productCache)
	customerService := service.NewCustomerService(customerRepo)
	employeeService := service.NewEmployeeService(employeeRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	shipperService := service.NewShipperService(shipperRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := events.NewConsumer(redisClient, orderService, zlog)
	go consumer.Subscribe(ctx, service.OrderCreatedChannel)

	h := handler.NewHandler(orderService, productService, customerService,
		employeeService, categoryService, shipperService, db, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(zlog))

	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zlog.Error("error closing redis connection", zap.Error(err))
	}

	zlog.Info("server exiting")
}
