package main

import (
	"context"
	"os"
	"time"

	"commerce-core/internal/controllers/http"
	"commerce-core/internal/domain"
	"commerce-core/internal/infra"
	mmysql "commerce-core/internal/infra/mysql"
	"commerce-core/internal/infra/rabbitmq"
	"commerce-core/internal/pkg/logging"
	mysqlrepo "commerce-core/internal/repository/mysql"
	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	logger := logging.New("order-service")
	defer logger.Sync()

	db, err := mmysql.NewMySQLFromEnv(&domain.Order{})
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1000)
	sqlDB.SetMaxIdleConns(200)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)

	userClient := infra.NewUserClient(os.Getenv("USER_SERVICE_URL"), 2*time.Second)
	traderClient := infra.NewTraderClient(os.Getenv("TRADER_SERVICE_URL"), 2*time.Second)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		logger.Fatal("failed to init publisher", zap.Error(err))
	}

	s := services.NewOrderService(repo, userClient, traderClient, publisher, logger)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	s.SetRedisClient(redisClient)

	go func() {
		time.Sleep(5 * time.Second)
		if err := s.WarmupProductCache(context.Background(), []uint64{1, 2}); err != nil {
			logger.Warn("cache warmup failed", zap.Error(err))
		} else {
			logger.Info("cache warmed up")
		}
	}()

	handler := http.NewOrderHandler(s, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	logger.Info("starting order service", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
