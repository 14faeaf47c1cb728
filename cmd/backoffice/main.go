package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kizuma-trade/backoffice-service/internal/config"
	deliveryhttp "github.com/kizuma-trade/backoffice-service/internal/delivery/http"
	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/kafka"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/metrics"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/migrate"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/repository"
	"github.com/kizuma-trade/backoffice-service/internal/usecase"
	"github.com/kizuma-trade/backoffice-service/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	logging.Setup()

	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	// SQL migrations on top of the auto-migrated schema, when configured
	if cfg.Migrations.Path != "" {
		if err := migrate.RunMigrations(db, cfg.Migrations.Path); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init event publisher
	var publisher domain.OrderEventPublisher
	if cfg.KafkaService.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		kafkaPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Init metrics
	backofficeMetrics := metrics.NewBackofficeMetrics(prometheus.DefaultRegisterer)

	// Init repositories
	sellerRepo := repository.NewDefaultSellerRepository(db)
	supplierRepo := repository.NewDefaultSupplierRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)

	// Init usecases
	sellerUsecase := usecase.NewDefaultSellerUsecase(sellerRepo)
	supplierUsecase := usecase.NewDefaultSupplierUsecase(supplierRepo, backofficeMetrics)
	orderUsecase := usecase.NewDefaultOrderUsecase(orderRepo, supplierRepo, publisher, backofficeMetrics)

	router := deliveryhttp.NewRouter(deliveryhttp.RouterDeps{
		SellerUsecase:   sellerUsecase,
		SupplierUsecase: supplierUsecase,
		OrderUsecase:    orderUsecase,
		Metrics:         backofficeMetrics,
		Registry:        prometheus.DefaultGatherer,
		Username:        cfg.Seller.Username,
		Password:        cfg.Seller.Password,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	slog.Info("backoffice service started", "addr", addr, "env", cfg.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to run http server: %v", err)
	}
}
