package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/mappers"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/models"
)

type DefaultSellerRepository struct {
	DB *gorm.DB
}

func NewDefaultSellerRepository(db *gorm.DB) *DefaultSellerRepository {
	return &DefaultSellerRepository{DB: db}
}

func (r *DefaultSellerRepository) GetSeller(ctx context.Context) (*domain.Seller, error) {
	var sellerModel models.SellerModel
	if err := r.DB.WithContext(ctx).First(&sellerModel, "id = ?", domain.SellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	return mappers.ToDomainSeller(&sellerModel), nil
}

func (r *DefaultSellerRepository) UpdateBalance(ctx context.Context, balance float64) error {
	res := r.DB.WithContext(ctx).
		Model(&models.SellerModel{}).
		Where("id = ?", domain.SellerID).
		Update("balance", balance)
	if res.Error != nil {
		return fmt.Errorf("failed to update seller balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSellerNotFound
	}
	return nil
}
