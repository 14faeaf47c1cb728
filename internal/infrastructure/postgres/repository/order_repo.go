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

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.ID = orderModel.ID
	order.CreatedAt = orderModel.CreatedAt
	order.UpdatedAt = orderModel.UpdatedAt
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.WithContext(ctx).First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) UpdateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Save(orderModel).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	order.UpdatedAt = orderModel.UpdatedAt
	return nil
}

func (r *DefaultOrderRepository) DeleteOrder(ctx context.Context, orderID int64) error {
	res := r.DB.WithContext(ctx).Delete(&models.OrderModel{}, "id = ?", orderID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// SplitOrder writes both halves in one transaction so a failed sibling
// insert cannot leave the original order halved on its own.
func (r *DefaultOrderRepository) SplitOrder(ctx context.Context, original, sibling *domain.Order) error {
	originalModel := mappers.ToGORMOrder(original)
	siblingModel := mappers.ToGORMOrder(sibling)

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(originalModel).Error; err != nil {
			return err
		}
		return tx.Create(siblingModel).Error
	})
	if err != nil {
		return fmt.Errorf("failed to split order: %w", err)
	}

	original.UpdatedAt = originalModel.UpdatedAt
	sibling.ID = siblingModel.ID
	sibling.CreatedAt = siblingModel.CreatedAt
	sibling.UpdatedAt = siblingModel.UpdatedAt
	return nil
}

func (r *DefaultOrderRepository) GetOrdersBySupplierID(ctx context.Context, supplierID int64) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}
	return orders, nil
}

func (r *DefaultOrderRepository) ActiveDebtAndCount(ctx context.Context, supplierID int64) (float64, int64, error) {
	var agg struct {
		TotalDebt   float64
		OrdersCount int64
	}
	err := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Select("COALESCE(SUM(debt_amount), 0) AS total_debt, COUNT(*) AS orders_count").
		Where("supplier_id = ? AND status = ?", supplierID, domain.StatusActive).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	return agg.TotalDebt, agg.OrdersCount, nil
}
