package usecase

import (
	"context"
	"fmt"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/metrics"
	supplierdto "github.com/kizuma-trade/backoffice-service/internal/usecase/dto/supplier"
)

type SupplierUsecase interface {
	CreateSupplier(ctx context.Context, input *supplierdto.CreateSupplierInput) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID int64, input *supplierdto.UpdateSupplierInput) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID int64) error
	GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error)
	GetSuppliers(ctx context.Context) ([]*domain.Supplier, error)
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type DefaultSupplierUsecase struct {
	SupplierRepo domain.SupplierRepository
	Metrics      *metrics.BackofficeMetrics
}

func NewDefaultSupplierUsecase(supplierRepo domain.SupplierRepository, backofficeMetrics *metrics.BackofficeMetrics) *DefaultSupplierUsecase {
	return &DefaultSupplierUsecase{
		SupplierRepo: supplierRepo,
		Metrics:      backofficeMetrics,
	}
}

func (uc *DefaultSupplierUsecase) CreateSupplier(ctx context.Context, input *supplierdto.CreateSupplierInput) (*domain.Supplier, error) {
	if input.Name == "" || input.GameNickname == "" {
		return nil, fmt.Errorf("%w: name and gameNickname are required", domain.ErrInvalidInput)
	}

	supplier := &domain.Supplier{
		Name:         input.Name,
		GameNickname: input.GameNickname,
		Debt:         input.Debt,
		OrdersCount:  input.OrdersCount,
	}
	if err := uc.SupplierRepo.CreateSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (uc *DefaultSupplierUsecase) UpdateSupplier(ctx context.Context, supplierID int64, input *supplierdto.UpdateSupplierInput) (*domain.Supplier, error) {
	supplier, err := uc.SupplierRepo.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.GameNickname != nil {
		supplier.GameNickname = *input.GameNickname
	}
	if input.Debt != nil {
		supplier.Debt = *input.Debt
	}
	if input.OrdersCount != nil {
		supplier.OrdersCount = *input.OrdersCount
	}

	if err := uc.SupplierRepo.UpdateSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier cascades: the supplier's orders are removed with it,
// so no aggregate resynchronization is needed for the deleted parent.
func (uc *DefaultSupplierUsecase) DeleteSupplier(ctx context.Context, supplierID int64) error {
	if err := uc.SupplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		return err
	}
	uc.Metrics.RecordSupplierDeleted(supplierID)
	return nil
}

func (uc *DefaultSupplierUsecase) GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	return uc.SupplierRepo.GetSupplierByID(ctx, supplierID)
}

func (uc *DefaultSupplierUsecase) GetSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	return uc.SupplierRepo.GetSuppliers(ctx)
}

func (uc *DefaultSupplierUsecase) GetStats(ctx context.Context) (*domain.Stats, error) {
	return uc.SupplierRepo.GetStats(ctx)
}
