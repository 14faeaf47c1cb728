package domain

import "time"

type OrderStatus string

const (
	StatusActive    OrderStatus = "active"
	StatusCompleted OrderStatus = "completed"
)

type Order struct {
	ID         int64
	SupplierID int64
	ImageURL   string
	Cost       float64
	Premium    float64
	DebtAmount float64
	Status     OrderStatus
	Notes      string
	IsSplit    bool
	SplitWith  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive reports whether the order counts toward supplier aggregates.
func (o *Order) IsActive() bool {
	return o.Status == StatusActive
}
