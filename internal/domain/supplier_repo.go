package domain

import "context"

type SupplierRepository interface {
	CreateSupplier(ctx context.Context, supplier *Supplier) error
	GetSupplierByID(ctx context.Context, supplierID int64) (*Supplier, error)
	GetSuppliers(ctx context.Context) ([]*Supplier, error)
	UpdateSupplier(ctx context.Context, supplier *Supplier) error
	// DeleteSupplier removes the supplier and cascades deletion of its orders.
	DeleteSupplier(ctx context.Context, supplierID int64) error
	// SyncAggregates recomputes debt and orders_count from the supplier's
	// active orders and persists them with a fresh updated_at as one
	// atomic read-modify-write.
	SyncAggregates(ctx context.Context, supplierID int64) error
	GetStats(ctx context.Context) (*Stats, error)
}
