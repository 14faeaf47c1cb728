package domain

import "context"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID int64) (*Order, error)
	UpdateOrder(ctx context.Context, order *Order) error
	DeleteOrder(ctx context.Context, orderID int64) error
	// SplitOrder persists both halves of a split in a single transaction:
	// the original is updated in place, the sibling is inserted.
	SplitOrder(ctx context.Context, original, sibling *Order) error
	GetOrdersBySupplierID(ctx context.Context, supplierID int64) ([]*Order, error)
	// ActiveDebtAndCount returns the sum of debt amounts and the number of
	// active orders for the supplier. Both are zero when none exist.
	ActiveDebtAndCount(ctx context.Context, supplierID int64) (float64, int64, error)
}
