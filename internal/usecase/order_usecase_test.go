package usecase

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/kizuma-trade/backoffice-service/internal/domain"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/metrics"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres"
	"github.com/kizuma-trade/backoffice-service/internal/infrastructure/postgres/repository"
	orderdto "github.com/kizuma-trade/backoffice-service/internal/usecase/dto/order"
	supplierdto "github.com/kizuma-trade/backoffice-service/internal/usecase/dto/supplier"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "backoffice-test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

type testEnv struct {
	db           *gorm.DB
	orderUC      *DefaultOrderUsecase
	supplierUC   *DefaultSupplierUsecase
	supplierRepo *repository.DefaultSupplierRepository
	orderRepo    *repository.DefaultOrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	backofficeMetrics := metrics.NewBackofficeMetrics(prometheus.NewRegistry())
	supplierRepo := repository.NewDefaultSupplierRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)
	return &testEnv{
		db:           db,
		orderUC:      NewDefaultOrderUsecase(orderRepo, supplierRepo, nil, backofficeMetrics),
		supplierUC:   NewDefaultSupplierUsecase(supplierRepo, backofficeMetrics),
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
	}
}

func (e *testEnv) mustCreateSupplier(t *testing.T, name string) *domain.Supplier {
	t.Helper()

	supplier, err := e.supplierUC.CreateSupplier(context.Background(), &supplierdto.CreateSupplierInput{
		Name:         name,
		GameNickname: name + "-nick",
	})
	if err != nil {
		t.Fatalf("CreateSupplier failed: %v", err)
	}
	return supplier
}

func (e *testEnv) supplierAggregates(t *testing.T, supplierID int64) (float64, int64) {
	t.Helper()

	supplier, err := e.supplierRepo.GetSupplierByID(context.Background(), supplierID)
	if err != nil {
		t.Fatalf("GetSupplierByID failed: %v", err)
	}
	return supplier.Debt, supplier.OrdersCount
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates order and syncs supplier aggregates", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")

		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       5000,
			Premium:    300,
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		if order.ID == 0 {
			t.Error("expected order ID to be assigned")
		}
		if math.Abs(order.DebtAmount-3200) > 1e-9 {
			t.Errorf("DebtAmount = %v, want 3200", order.DebtAmount)
		}
		if order.Status != domain.StatusActive {
			t.Errorf("Status = %q, want %q", order.Status, domain.StatusActive)
		}

		debt, count := env.supplierAggregates(t, supplier.ID)
		if math.Abs(debt-3200) > 1e-9 || count != 1 {
			t.Errorf("supplier aggregates = (%v, %d), want (3200, 1)", debt, count)
		}
	})

	t.Run("split order on create skips seller cut", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")

		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       100,
			Premium:    10,
			IsSplit:    true,
			SplitWith:  "partner",
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}
		if math.Abs(order.DebtAmount-90) > 1e-9 {
			t.Errorf("DebtAmount = %v, want 90", order.DebtAmount)
		}
	})

	t.Run("rejects missing supplier without writing", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: 777,
			ImageURL:   "https://img.example/skin.png",
			Cost:       100,
		})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}

		var count int64
		env.db.Table("order_models").Count(&count)
		if count != 0 {
			t.Errorf("expected no orders persisted, found %d", count)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")

		tests := []struct {
			name  string
			input *orderdto.CreateOrderInput
		}{
			{"missing supplier id", &orderdto.CreateOrderInput{ImageURL: "x", Cost: 10}},
			{"missing image url", &orderdto.CreateOrderInput{SupplierID: supplier.ID, Cost: 10}},
			{"negative cost", &orderdto.CreateOrderInput{SupplierID: supplier.ID, ImageURL: "x", Cost: -1}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := env.orderUC.CreateOrder(ctx, tt.input); !errors.Is(err, domain.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
			})
		}
	})
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes debt when cost changes", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")
		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       1000,
			Premium:    100,
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		newCost := 2000.0
		updated, err := env.orderUC.UpdateOrder(ctx, order.ID, &orderdto.UpdateOrderInput{Cost: &newCost})
		if err != nil {
			t.Fatalf("UpdateOrder failed: %v", err)
		}
		want := 2000 - 2000*domain.SellerCut - 100
		if math.Abs(updated.DebtAmount-want) > 1e-9 {
			t.Errorf("DebtAmount = %v, want %v", updated.DebtAmount, want)
		}

		debt, _ := env.supplierAggregates(t, supplier.ID)
		if math.Abs(debt-want) > 1e-9 {
			t.Errorf("supplier debt = %v, want %v", debt, want)
		}
	})

	t.Run("notes-only update keeps debt", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")
		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       1000,
			Premium:    100,
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		notes := "paid half upfront"
		updated, err := env.orderUC.UpdateOrder(ctx, order.ID, &orderdto.UpdateOrderInput{Notes: &notes})
		if err != nil {
			t.Fatalf("UpdateOrder failed: %v", err)
		}
		if updated.DebtAmount != order.DebtAmount {
			t.Errorf("DebtAmount changed from %v to %v on notes update", order.DebtAmount, updated.DebtAmount)
		}
		if updated.Notes != notes {
			t.Errorf("Notes = %q, want %q", updated.Notes, notes)
		}
	})

	t.Run("completing order removes it from aggregates", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")
		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       1000,
			Premium:    100,
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		status := string(domain.StatusCompleted)
		if _, err := env.orderUC.UpdateOrder(ctx, order.ID, &orderdto.UpdateOrderInput{Status: &status}); err != nil {
			t.Fatalf("UpdateOrder failed: %v", err)
		}

		debt, count := env.supplierAggregates(t, supplier.ID)
		if debt != 0 || count != 0 {
			t.Errorf("supplier aggregates = (%v, %d), want (0, 0) after completion", debt, count)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")
		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       1000,
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		status := "cancelled"
		if _, err := env.orderUC.UpdateOrder(ctx, order.ID, &orderdto.UpdateOrderInput{Status: &status}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		env := newTestEnv(t)
		notes := "x"
		if _, err := env.orderUC.UpdateOrder(ctx, 404, &orderdto.UpdateOrderInput{Notes: &notes}); !errors.Is(err, domain.ErrOrderNotFound) {
			t.Errorf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestDeleteOrder(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(t)
	supplier := env.mustCreateSupplier(t, "krab")
	order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
		SupplierID: supplier.ID,
		ImageURL:   "https://img.example/skin.png",
		Cost:       500,
		Premium:    50,
	})
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	if err := env.orderUC.DeleteOrder(ctx, order.ID); err != nil {
		t.Fatalf("DeleteOrder failed: %v", err)
	}

	if _, err := env.orderUC.GetOrderByID(ctx, order.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound after delete, got %v", err)
	}

	debt, count := env.supplierAggregates(t, supplier.ID)
	if debt != 0 || count != 0 {
		t.Errorf("supplier aggregates = (%v, %d), want (0, 0) after delete", debt, count)
	}

	if err := env.orderUC.DeleteOrder(ctx, order.ID); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound on repeated delete, got %v", err)
	}
}

func TestSplitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("halves values and links both orders", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")
		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       159,
			Premium:    25,
			Notes:      "rare skin",
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		result, err := env.orderUC.SplitOrder(ctx, order.ID, "co-seller")
		if err != nil {
			t.Fatalf("SplitOrder failed: %v", err)
		}

		for _, half := range []*domain.Order{result.Original, result.Sibling} {
			if math.Abs(half.Cost-79.5) > 1e-9 {
				t.Errorf("Cost = %v, want 79.5", half.Cost)
			}
			if math.Abs(half.Premium-12.5) > 1e-9 {
				t.Errorf("Premium = %v, want 12.5", half.Premium)
			}
			if math.Abs(half.DebtAmount-67) > 1e-9 {
				t.Errorf("DebtAmount = %v, want 67", half.DebtAmount)
			}
			if !half.IsSplit {
				t.Error("expected IsSplit to be set on both halves")
			}
			if half.SplitWith != "co-seller" {
				t.Errorf("SplitWith = %q, want %q", half.SplitWith, "co-seller")
			}
			if half.SupplierID != supplier.ID {
				t.Errorf("SupplierID = %d, want %d", half.SupplierID, supplier.ID)
			}
		}
		if result.Sibling.ID == 0 || result.Sibling.ID == result.Original.ID {
			t.Errorf("sibling got id %d, original %d", result.Sibling.ID, result.Original.ID)
		}
		if result.Sibling.Notes != "rare skin" {
			t.Errorf("sibling Notes = %q, want inherited notes", result.Sibling.Notes)
		}

		debt, count := env.supplierAggregates(t, supplier.ID)
		if math.Abs(debt-134) > 1e-9 || count != 2 {
			t.Errorf("supplier aggregates = (%v, %d), want (134, 2)", debt, count)
		}
	})

	t.Run("generates split marker when none given", func(t *testing.T) {
		env := newTestEnv(t)
		supplier := env.mustCreateSupplier(t, "krab")
		order, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
			SupplierID: supplier.ID,
			ImageURL:   "https://img.example/skin.png",
			Cost:       100,
		})
		if err != nil {
			t.Fatalf("CreateOrder failed: %v", err)
		}

		result, err := env.orderUC.SplitOrder(ctx, order.ID, "")
		if err != nil {
			t.Fatalf("SplitOrder failed: %v", err)
		}
		if result.Original.SplitWith == "" {
			t.Fatal("expected a generated split marker")
		}
		if result.Original.SplitWith != result.Sibling.SplitWith {
			t.Errorf("halves carry different markers: %q vs %q", result.Original.SplitWith, result.Sibling.SplitWith)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		env := newTestEnv(t)
		if _, err := env.orderUC.SplitOrder(ctx, 404, ""); !errors.Is(err, domain.ErrOrderNotFound) {
			t.Errorf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

// failingSyncSupplierRepo breaks only the aggregate write, everything
// else hits the real repository.
type failingSyncSupplierRepo struct {
	domain.SupplierRepository
}

func (r *failingSyncSupplierRepo) SyncAggregates(ctx context.Context, supplierID int64) error {
	return errors.New("aggregate write unavailable")
}

func TestSyncFailureIsBestEffort(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	supplier := env.mustCreateSupplier(t, "krab")

	// same wiring as env.orderUC but with the aggregate write broken
	brokenUC := NewDefaultOrderUsecase(
		env.orderRepo,
		&failingSyncSupplierRepo{SupplierRepository: env.supplierRepo},
		nil,
		metrics.NewBackofficeMetrics(prometheus.NewRegistry()),
	)

	order, err := brokenUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
		SupplierID: supplier.ID,
		ImageURL:   "https://img.example/skin.png",
		Cost:       5000,
		Premium:    300,
	})
	if err != nil {
		t.Fatalf("CreateOrder failed on sync error: %v", err)
	}
	persisted, err := brokenUC.GetOrderByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("order not persisted after sync error: %v", err)
	}
	if math.Abs(persisted.DebtAmount-3200) > 1e-9 {
		t.Errorf("DebtAmount = %v, want 3200", persisted.DebtAmount)
	}

	result, err := brokenUC.SplitOrder(ctx, order.ID, "partner")
	if err != nil {
		t.Fatalf("SplitOrder failed on sync error: %v", err)
	}
	if result.Sibling.ID == 0 {
		t.Error("sibling not persisted after sync error")
	}

	if err := brokenUC.DeleteOrder(ctx, result.Sibling.ID); err != nil {
		t.Fatalf("DeleteOrder failed on sync error: %v", err)
	}

	// the aggregates stay stale until a successful sync; the mutations
	// themselves still went through
	env.orderUC.SynchronizeSupplier(ctx, supplier.ID)
	debt, count := env.supplierAggregates(t, supplier.ID)
	if math.Abs(debt-2350) > 1e-9 || count != 1 {
		t.Errorf("aggregates after recovery = (%v, %d), want (2350, 1)", debt, count)
	}
}

func TestSynchronizeSupplier(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(t)
	supplier := env.mustCreateSupplier(t, "krab")
	if _, err := env.orderUC.CreateOrder(ctx, &orderdto.CreateOrderInput{
		SupplierID: supplier.ID,
		ImageURL:   "https://img.example/skin.png",
		Cost:       1000,
		Premium:    100,
	}); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	// manual edits to the cached aggregates get overwritten by the next sync
	ordersCount := int64(99)
	if _, err := env.supplierUC.UpdateSupplier(ctx, supplier.ID, &supplierdto.UpdateSupplierInput{OrdersCount: &ordersCount}); err != nil {
		t.Fatalf("UpdateSupplier failed: %v", err)
	}

	env.orderUC.SynchronizeSupplier(ctx, supplier.ID)
	debt, count := env.supplierAggregates(t, supplier.ID)
	if count != 1 {
		t.Errorf("orders count = %d, want 1 after resync", count)
	}

	// idempotent: a second sync persists the same values
	env.orderUC.SynchronizeSupplier(ctx, supplier.ID)
	debt2, count2 := env.supplierAggregates(t, supplier.ID)
	if debt2 != debt || count2 != count {
		t.Errorf("repeated sync changed aggregates: (%v, %d) -> (%v, %d)", debt, count, debt2, count2)
	}
}
