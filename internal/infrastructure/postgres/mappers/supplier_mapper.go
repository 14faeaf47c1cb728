package mappers

import (
	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/models"
)

func ToDomainSupplier(model *models.SupplierModel) *domain.Supplier {
	return &domain.Supplier{
		ID:           model.ID,
		Name:         model.Name,
		GameNickname: model.GameNickname,
		Debt:         model.Debt,
		OrdersCount:  model.OrdersCount,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMSupplier(supplier *domain.Supplier) *models.SupplierModel {
	return &models.SupplierModel{
		ID:           supplier.ID,
		Name:         supplier.Name,
		GameNickname: supplier.GameNickname,
		Debt:         supplier.Debt,
		OrdersCount:  supplier.OrdersCount,
		CreatedAt:    supplier.CreatedAt,
		UpdatedAt:    supplier.UpdatedAt,
	}
}

func ToDomainSeller(model *models.SellerModel) *domain.Seller {
	return &domain.Seller{
		ID:           model.ID,
		Name:         model.Name,
		Balance:      model.Balance,
		GameNickname: model.GameNickname,
	}
}
