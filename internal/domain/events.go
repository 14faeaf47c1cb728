package domain

import "time"

const (
	EventOrderCreated = "order.created"
	EventOrderUpdated = "order.updated"
	EventOrderDeleted = "order.deleted"
	EventOrderSplit   = "order.split"
)

// OrderEvent is published after an order mutation has been persisted.
// Delivery is best-effort: a failed publish never fails the mutation.
type OrderEvent struct {
	Action     string    `json:"action"`
	OrderID    int64     `json:"orderId"`
	SupplierID int64     `json:"supplierId"`
	DebtAmount float64   `json:"debtAmount"`
	SplitWith  string    `json:"splitWith,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

type OrderEventPublisher interface {
	PublishOrderEvent(event OrderEvent) error
}
