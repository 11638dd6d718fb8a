package main

import (
	"os"
	"time"

	"commerce-core/internal/controllers/http"
	"commerce-core/internal/domain"
	"commerce-core/internal/gateway"
	"commerce-core/internal/infra"
	mmysql "commerce-core/internal/infra/mysql"
	"commerce-core/internal/infra/rabbitmq"
	"commerce-core/internal/pkg/logging"
	mysqlrepo "commerce-core/internal/repository/mysql"
	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := logging.New("payment-service")
	defer logger.Sync()

	db, err := mmysql.NewMySQLFromEnv(&domain.Payment{})
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(500)
	sqlDB.SetMaxIdleConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	repo := mysqlrepo.NewPaymentRepository(db)

	orderClient := infra.NewOrderClient(os.Getenv("ORDER_SERVICE_URL"), 5*time.Second)
	userClient := infra.NewUserClient(os.Getenv("USER_SERVICE_URL"), 2*time.Second)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "payment.exchange")
	if err != nil {
		logger.Fatal("failed to init publisher", zap.Error(err))
	}

	gw := gateway.New()

	s := services.NewPaymentService(repo, gw, orderClient, userClient, publisher, logger)

	handler := http.NewPaymentHandler(s)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	logger.Info("starting payment service", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
