package domain

import "time"

// Supplier debt and orders count are derived fields: they are caches
// over the supplier's active orders and are recomputed after every
// order mutation, never incremented in place.
type Supplier struct {
	ID           int64
	Name         string
	GameNickname string
	Debt         float64
	OrdersCount  int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Stats struct {
	TotalDebt     float64
	TotalOrders   int64
	SupplierCount int64
}
