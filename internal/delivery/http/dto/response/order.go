package response

import (
	"time"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
)

type OrderResponse struct {
	ID         int64     `json:"id"`
	SupplierID int64     `json:"supplierId"`
	ImageURL   string    `json:"imageUrl"`
	Cost       float64   `json:"cost"`
	Premium    float64   `json:"premium"`
	DebtAmount float64   `json:"debtAmount"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	IsSplit    bool      `json:"isSplit"`
	SplitWith  string    `json:"splitWith,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromDomainOrder(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID,
		SupplierID: order.SupplierID,
		ImageURL:   order.ImageURL,
		Cost:       order.Cost,
		Premium:    order.Premium,
		DebtAmount: order.DebtAmount,
		Status:     string(order.Status),
		Notes:      order.Notes,
		IsSplit:    order.IsSplit,
		SplitWith:  order.SplitWith,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func FromDomainOrders(orders []*domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, order := range orders {
		out[i] = FromDomainOrder(order)
	}
	return out
}

type SplitResponse struct {
	Original OrderResponse `json:"original"`
	Sibling  OrderResponse `json:"sibling"`
}
