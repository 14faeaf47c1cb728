package order

import "github.com/kizuma-trade/backoffice-service/internal/domain"

// SplitResult holds both halves produced by splitting an order.
// Original is the mutated source order, Sibling the newly created half.
type SplitResult struct {
	Original *domain.Order
	Sibling  *domain.Order
}
