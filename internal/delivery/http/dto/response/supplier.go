package response

import (
	"time"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
)

type SupplierResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	GameNickname string    `json:"gameNickname"`
	Debt         float64   `json:"debt"`
	OrdersCount  int64     `json:"ordersCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromDomainSupplier(supplier *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           supplier.ID,
		Name:         supplier.Name,
		GameNickname: supplier.GameNickname,
		Debt:         supplier.Debt,
		OrdersCount:  supplier.OrdersCount,
		CreatedAt:    supplier.CreatedAt,
		UpdatedAt:    supplier.UpdatedAt,
	}
}

func FromDomainSuppliers(suppliers []*domain.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i, supplier := range suppliers {
		out[i] = FromDomainSupplier(supplier)
	}
	return out
}

type StatsResponse struct {
	TotalDebt     float64 `json:"totalDebt"`
	TotalOrders   int64   `json:"totalOrders"`
	SupplierCount int64   `json:"supplierCount"`
}
