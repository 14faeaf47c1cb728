package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/mappers"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/models"
)

type DefaultSupplierRepository struct {
	DB *gorm.DB
}

func NewDefaultSupplierRepository(db *gorm.DB) *DefaultSupplierRepository {
	return &DefaultSupplierRepository{DB: db}
}

func (r *DefaultSupplierRepository) CreateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	supplierModel := mappers.ToGORMSupplier(supplier)
	if err := r.DB.WithContext(ctx).Create(supplierModel).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	supplier.ID = supplierModel.ID
	supplier.CreatedAt = supplierModel.CreatedAt
	supplier.UpdatedAt = supplierModel.UpdatedAt
	return nil
}

func (r *DefaultSupplierRepository) GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	var supplierModel models.SupplierModel
	if err := r.DB.WithContext(ctx).First(&supplierModel, "id = ?", supplierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return mappers.ToDomainSupplier(&supplierModel), nil
}

func (r *DefaultSupplierRepository) GetSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	var supplierModels []models.SupplierModel
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&supplierModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find suppliers: %w", err)
	}

	suppliers := make([]*domain.Supplier, len(supplierModels))
	for i, supplierModel := range supplierModels {
		suppliers[i] = mappers.ToDomainSupplier(&supplierModel)
	}
	return suppliers, nil
}

func (r *DefaultSupplierRepository) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	supplierModel := mappers.ToGORMSupplier(supplier)
	if err := r.DB.WithContext(ctx).Save(supplierModel).Error; err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	supplier.UpdatedAt = supplierModel.UpdatedAt
	return nil
}

// DeleteSupplier removes the supplier's orders together with the
// supplier itself. The cascade runs in one transaction so a failure
// leaves no orphaned orders behind.
func (r *DefaultSupplierRepository) DeleteSupplier(ctx context.Context, supplierID int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderModel{}, "supplier_id = ?", supplierID).Error; err != nil {
			return fmt.Errorf("failed to delete supplier orders: %w", err)
		}
		res := tx.Delete(&models.SupplierModel{}, "id = ?", supplierID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete supplier: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrSupplierNotFound
		}
		return nil
	})
}

// SyncAggregates rewrites debt and orders_count from the active order
// set in a single statement, so the read and the write cannot observe
// different order sets.
func (r *DefaultSupplierRepository) SyncAggregates(ctx context.Context, supplierID int64) error {
	res := r.DB.WithContext(ctx).Exec(`
		UPDATE supplier_models SET
			debt = (
				SELECT COALESCE(SUM(debt_amount), 0)
				FROM order_models
				WHERE supplier_id = supplier_models.id AND status = ?
			),
			orders_count = (
				SELECT COUNT(*)
				FROM order_models
				WHERE supplier_id = supplier_models.id AND status = ?
			),
			updated_at = ?
		WHERE id = ?`,
		domain.StatusActive, domain.StatusActive, time.Now(), supplierID)
	if res.Error != nil {
		return fmt.Errorf("failed to sync supplier aggregates: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrSupplierNotFound
	}
	return nil
}

func (r *DefaultSupplierRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	var agg struct {
		TotalDebt     float64
		TotalOrders   int64
		SupplierCount int64
	}
	err := r.DB.WithContext(ctx).
		Model(&models.SupplierModel{}).
		Select("COALESCE(SUM(debt), 0) AS total_debt, COALESCE(SUM(orders_count), 0) AS total_orders, COUNT(*) AS supplier_count").
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate suppliers: %w", err)
	}
	return &domain.Stats{
		TotalDebt:     agg.TotalDebt,
		TotalOrders:   agg.TotalOrders,
		SupplierCount: agg.SupplierCount,
	}, nil
}
