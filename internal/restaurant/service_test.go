package restaurant

import (
	"context"
	"errors"
	"testing"
)

func seedDiner(t *testing.T, repo *MemoryRepo) (Restaurant, MenuItem) {
	t.Helper()
	svc := NewService(repo)
	r, err := svc.Create(context.Background(), Restaurant{Name: "Blue Diner", Location: "Graz"})
	if err != nil {
		t.Fatalf("create restaurant: %v", err)
	}
	m, err := svc.CreateMenuItem(context.Background(), MenuItem{
		RestaurantID: r.ID,
		Name:         "Schnitzel",
		Currency:     "EUR",
		PriceMinor:   1099, // 10.99
		Available:    true,
	})
	if err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return r, m
}

func TestCalculateOrderPrice(t *testing.T) {
	repo := NewMemoryRepo()
	r, m := seedDiner(t, repo)
	svc := NewService(repo)

	q, err := svc.CalculateOrderPrice(context.Background(), r.ID, []OrderLine{{MenuItemID: m.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(q.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(q.Lines))
	}
	if q.Lines[0].ItemPriceMinor != 2198 {
		t.Fatalf("expected 2198 (21.98), got %d", q.Lines[0].ItemPriceMinor)
	}
	if q.TotalPriceMinor != 2198 {
		t.Fatalf("expected total 2198, got %d", q.TotalPriceMinor)
	}
}

func TestCalculateOrderPrice_SumsLines(t *testing.T) {
	repo := NewMemoryRepo()
	r, m := seedDiner(t, repo)
	svc := NewService(repo)

	m2, err := svc.CreateMenuItem(context.Background(), MenuItem{
		RestaurantID: r.ID, Name: "Soup", Currency: "EUR", PriceMinor: 450, Available: true,
	})
	if err != nil {
		t.Fatalf("second item: %v", err)
	}

	q, err := svc.CalculateOrderPrice(context.Background(), r.ID, []OrderLine{
		{MenuItemID: m.ID, Quantity: 2},
		{MenuItemID: m2.ID, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if q.TotalPriceMinor != 2198+450 {
		t.Fatalf("expected total %d, got %d", 2198+450, q.TotalPriceMinor)
	}
}

func TestCalculateOrderPrice_RejectsForeignItem(t *testing.T) {
	repo := NewMemoryRepo()
	r, _ := seedDiner(t, repo)
	_, other := seedDiner(t, repo)
	svc := NewService(repo)

	_, err := svc.CalculateOrderPrice(context.Background(), r.ID, []OrderLine{{MenuItemID: other.ID, Quantity: 1}})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCalculateOrderPrice_RejectsZeroQuantity(t *testing.T) {
	repo := NewMemoryRepo()
	r, m := seedDiner(t, repo)
	svc := NewService(repo)

	_, err := svc.CalculateOrderPrice(context.Background(), r.ID, []OrderLine{{MenuItemID: m.ID, Quantity: 0}})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCreateOrder(t *testing.T) {
	repo := NewMemoryRepo()
	r, m := seedDiner(t, repo)
	svc := NewService(repo)

	o, err := svc.CreateOrder(context.Background(), 7, r.ID, []OrderLine{{MenuItemID: m.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if o.TotalPriceMinor != 2198 || o.Status != OrderStatusPending || o.UserID != 7 {
		t.Fatalf("unexpected order: %+v", o)
	}

	own, err := svc.ListOrdersFor(context.Background(), 7)
	if err != nil || len(own) != 1 {
		t.Fatalf("expected 1 order, got %d err=%v", len(own), err)
	}
}
