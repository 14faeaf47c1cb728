package postgres

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kizuma-trade/backoffice-service/internal/config"
	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/models"
)

func MustInitDB(cfg *config.BackofficeConfig) *gorm.DB {
	dsn := cfg.BackofficeDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate db: %v\n", err.Error())
	}

	if err := SeedSeller(db, cfg); err != nil {
		log.Fatalf("failed to seed seller: %v\n", err.Error())
	}

	return db
}

// Migrate creates the schema for all backoffice models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.SellerModel{}, &models.SupplierModel{}, &models.OrderModel{})
}

// SeedSeller makes sure the singleton seller row exists. The row is
// created once at bootstrap; an existing balance is never overwritten.
func SeedSeller(db *gorm.DB, cfg *config.BackofficeConfig) error {
	seller := models.SellerModel{ID: domain.SellerID}
	return db.
		Where(models.SellerModel{ID: domain.SellerID}).
		Attrs(models.SellerModel{
			Name:         cfg.Seller.Name,
			GameNickname: cfg.Seller.GameNickname,
			Balance:      0,
		}).
		FirstOrCreate(&seller).Error
}
