package main

import (
	"os"
	"time"

	"commerce-core/internal/controllers/http"
	"commerce-core/internal/domain"
	mmysql "commerce-core/internal/infra/mysql"
	"commerce-core/internal/pkg/logging"
	mysqlrepo "commerce-core/internal/repository/mysql"
	"commerce-core/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger := logging.New("trader-service")
	defer logger.Sync()

	db, err := mmysql.NewMySQLFromEnv(&domain.Product{}, &domain.Trader{})
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(500)
	sqlDB.SetMaxIdleConns(100)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	productSvc := services.NewProductService(mysqlrepo.NewProductRepository(db), logger)
	traderSvc := services.NewTraderService(mysqlrepo.NewTraderRepository(db), logger)

	productHandler := http.NewProductHandler(productSvc)
	traderHandler := http.NewTraderHandler(traderSvc)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	productHandler.RegisterRoutes(r)
	traderHandler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	logger.Info("starting trader service", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server run", zap.Error(err))
	}
}
