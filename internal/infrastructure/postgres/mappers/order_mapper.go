package mappers

import (
	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:         model.ID,
		SupplierID: model.SupplierID,
		ImageURL:   model.ImageURL,
		Cost:       model.Cost,
		Premium:    model.Premium,
		DebtAmount: model.DebtAmount,
		Status:     model.Status,
		Notes:      model.Notes,
		IsSplit:    model.IsSplit,
		SplitWith:  model.SplitWith,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:         order.ID,
		SupplierID: order.SupplierID,
		ImageURL:   order.ImageURL,
		Cost:       order.Cost,
		Premium:    order.Premium,
		DebtAmount: order.DebtAmount,
		Status:     order.Status,
		Notes:      order.Notes,
		IsSplit:    order.IsSplit,
		SplitWith:  order.SplitWith,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}
