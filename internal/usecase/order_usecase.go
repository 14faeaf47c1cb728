package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jaevor/go-nanoid"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/metrics"
	orderdto "github.com/kizuma-trade/backoffice-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, input *orderdto.UpdateOrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	SplitOrder(ctx context.Context, orderID int64, splitWith string) (*orderdto.SplitResult, error)

	GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)
	GetOrdersBySupplierID(ctx context.Context, supplierID int64) ([]*domain.Order, error)

	SynchronizeSupplier(ctx context.Context, supplierID int64)
}

const splitIDLength = 12

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	SupplierRepo domain.SupplierRepository
	Publisher    domain.OrderEventPublisher
	Metrics      *metrics.BackofficeMetrics

	locks      supplierLocks
	newSplitID func() string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	supplierRepo domain.SupplierRepository,
	publisher domain.OrderEventPublisher,
	backofficeMetrics *metrics.BackofficeMetrics) *DefaultOrderUsecase {

	newSplitID, err := nanoid.Standard(splitIDLength)
	if err != nil {
		// only reachable with an invalid length constant
		panic(err)
	}

	return &DefaultOrderUsecase{
		OrderRepo:    orderRepo,
		SupplierRepo: supplierRepo,
		Publisher:    publisher,
		Metrics:      backofficeMetrics,
		newSplitID:   newSplitID,
	}
}

// supplierLocks serializes the mutate-then-synchronize sequence per
// supplier so concurrent mutations cannot interleave between the order
// write and the aggregate write. Entries live for the process lifetime:
// the map holds one mutex per supplier id ever mutated, deleted
// suppliers included, so it is bounded by the size of the supplier
// directory over time.
type supplierLocks struct {
	mu sync.Mutex
	m  map[int64]*sync.Mutex
}

func (l *supplierLocks) get(supplierID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		l.m = make(map[int64]*sync.Mutex)
	}
	lock, ok := l.m[supplierID]
	if !ok {
		lock = &sync.Mutex{}
		l.m[supplierID] = lock
	}
	return lock
}

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error) {
	if input.SupplierID == 0 || input.ImageURL == "" {
		return nil, fmt.Errorf("%w: supplierId and imageUrl are required", domain.ErrInvalidInput)
	}
	if input.Cost < 0 {
		return nil, fmt.Errorf("%w: cost must be non-negative", domain.ErrInvalidInput)
	}
	// reject before writing: an order must reference an existing supplier
	if _, err := uc.SupplierRepo.GetSupplierByID(ctx, input.SupplierID); err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return nil, fmt.Errorf("%w: supplier %d does not exist", domain.ErrInvalidInput, input.SupplierID)
		}
		return nil, err
	}

	order := &domain.Order{
		SupplierID: input.SupplierID,
		ImageURL:   input.ImageURL,
		Cost:       input.Cost,
		Premium:    input.Premium,
		DebtAmount: domain.CalcDebtAmount(input.Cost, input.Premium, input.IsSplit),
		Status:     domain.StatusActive,
		Notes:      input.Notes,
		IsSplit:    input.IsSplit,
		SplitWith:  input.SplitWith,
	}

	lock := uc.locks.get(order.SupplierID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	uc.syncSupplierLocked(ctx, order.SupplierID)

	uc.Metrics.RecordOrderCreated(order.SupplierID, order.DebtAmount)
	uc.publishEvent(domain.OrderEvent{
		Action:     domain.EventOrderCreated,
		OrderID:    order.ID,
		SupplierID: order.SupplierID,
		DebtAmount: order.DebtAmount,
		SplitWith:  order.SplitWith,
		OccurredAt: time.Now(),
	})

	return order, nil
}

func (uc *DefaultOrderUsecase) UpdateOrder(ctx context.Context, orderID int64, input *orderdto.UpdateOrderInput) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	recompute := false
	if input.ImageURL != nil {
		order.ImageURL = *input.ImageURL
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			return nil, fmt.Errorf("%w: cost must be non-negative", domain.ErrInvalidInput)
		}
		order.Cost = *input.Cost
		recompute = true
	}
	if input.Premium != nil {
		order.Premium = *input.Premium
		recompute = true
	}
	if input.IsSplit != nil {
		order.IsSplit = *input.IsSplit
		recompute = true
	}
	if input.Status != nil {
		status := domain.OrderStatus(*input.Status)
		if status != domain.StatusActive && status != domain.StatusCompleted {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *input.Status)
		}
		order.Status = status
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}
	if recompute {
		order.DebtAmount = domain.CalcDebtAmount(order.Cost, order.Premium, order.IsSplit)
	}

	lock := uc.locks.get(order.SupplierID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.OrderRepo.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	uc.syncSupplierLocked(ctx, order.SupplierID)

	uc.publishEvent(domain.OrderEvent{
		Action:     domain.EventOrderUpdated,
		OrderID:    order.ID,
		SupplierID: order.SupplierID,
		DebtAmount: order.DebtAmount,
		OccurredAt: time.Now(),
	})

	return order, nil
}

func (uc *DefaultOrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	lock := uc.locks.get(order.SupplierID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.OrderRepo.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	uc.syncSupplierLocked(ctx, order.SupplierID)

	uc.Metrics.RecordOrderDeleted(order.SupplierID)
	uc.publishEvent(domain.OrderEvent{
		Action:     domain.EventOrderDeleted,
		OrderID:    order.ID,
		SupplierID: order.SupplierID,
		DebtAmount: order.DebtAmount,
		OccurredAt: time.Now(),
	})

	return nil
}

// SplitOrder forks an order into two linked halves. Cost and premium
// are halved and the debt of each half is recomputed with the split
// formula, so the seller cut is dropped even if the source order was a
// whole one. Both writes happen in one transaction.
func (uc *DefaultOrderUsecase) SplitOrder(ctx context.Context, orderID int64, splitWith string) (*orderdto.SplitResult, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if splitWith == "" {
		// halves still need a shared marker when the co-seller is not named
		splitWith = uc.newSplitID()
	}

	halfCost, halfPremium, halfDebt := domain.SplitHalf(order.Cost, order.Premium)

	order.Cost = halfCost
	order.Premium = halfPremium
	order.DebtAmount = halfDebt
	order.IsSplit = true
	order.SplitWith = splitWith

	sibling := &domain.Order{
		SupplierID: order.SupplierID,
		ImageURL:   order.ImageURL,
		Cost:       halfCost,
		Premium:    halfPremium,
		DebtAmount: halfDebt,
		Status:     order.Status,
		Notes:      order.Notes,
		IsSplit:    true,
		SplitWith:  splitWith,
	}

	lock := uc.locks.get(order.SupplierID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.OrderRepo.SplitOrder(ctx, order, sibling); err != nil {
		return nil, err
	}
	uc.syncSupplierLocked(ctx, order.SupplierID)

	uc.Metrics.RecordOrderSplit(order.SupplierID)
	uc.publishEvent(domain.OrderEvent{
		Action:     domain.EventOrderSplit,
		OrderID:    order.ID,
		SupplierID: order.SupplierID,
		DebtAmount: halfDebt,
		SplitWith:  splitWith,
		OccurredAt: time.Now(),
	})

	return &orderdto.SplitResult{Original: order, Sibling: sibling}, nil
}

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}

func (uc *DefaultOrderUsecase) GetOrdersBySupplierID(ctx context.Context, supplierID int64) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersBySupplierID(ctx, supplierID)
}

// SynchronizeSupplier recomputes the supplier's debt and orders count
// from its active orders. Idempotent: repeated calls with no order
// change in between persist the same values.
func (uc *DefaultOrderUsecase) SynchronizeSupplier(ctx context.Context, supplierID int64) {
	lock := uc.locks.get(supplierID)
	lock.Lock()
	defer lock.Unlock()
	uc.syncSupplierLocked(ctx, supplierID)
}

// syncSupplierLocked is best-effort: the order mutation already
// succeeded, so a failed aggregate write is logged and counted but
// never surfaced to the caller. Callers must hold the supplier lock.
func (uc *DefaultOrderUsecase) syncSupplierLocked(ctx context.Context, supplierID int64) {
	if err := uc.SupplierRepo.SyncAggregates(ctx, supplierID); err != nil {
		slog.Error("supplier aggregates sync failed", "supplier_id", supplierID, "error", err)
		uc.Metrics.RecordSyncFailure(supplierID)
		return
	}
	debt, _, err := uc.OrderRepo.ActiveDebtAndCount(ctx, supplierID)
	if err != nil {
		return
	}
	uc.Metrics.RecordSupplierDebt(supplierID, debt)
}

func (uc *DefaultOrderUsecase) publishEvent(event domain.OrderEvent) {
	if uc.Publisher == nil {
		return
	}
	go func(event domain.OrderEvent) {
		if err := uc.Publisher.PublishOrderEvent(event); err != nil {
			slog.Error("failed to publish order event", "action", event.Action, "order_id", event.OrderID, "error", err)
		}
	}(event)
}
