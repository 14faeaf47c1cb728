package usecase

import (
	"context"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
)

type SellerUsecase interface {
	GetSeller(ctx context.Context) (*domain.Seller, error)
	UpdateBalance(ctx context.Context, balance float64) error
}

// DefaultSellerUsecase works on the singleton seller row. Balance is
// only ever set to a client-provided value, never derived.
type DefaultSellerUsecase struct {
	SellerRepo domain.SellerRepository
}

func NewDefaultSellerUsecase(sellerRepo domain.SellerRepository) *DefaultSellerUsecase {
	return &DefaultSellerUsecase{SellerRepo: sellerRepo}
}

func (uc *DefaultSellerUsecase) GetSeller(ctx context.Context) (*domain.Seller, error) {
	return uc.SellerRepo.GetSeller(ctx)
}

func (uc *DefaultSellerUsecase) UpdateBalance(ctx context.Context, balance float64) error {
	return uc.SellerRepo.UpdateBalance(ctx, balance)
}
