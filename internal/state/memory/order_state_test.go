package memory

import (
	"context"
	"testing"

	"grouporder/internal/domain"
	"grouporder/internal/ports"
)

func newOrder(id int64, code string) *domain.Order {
	return &domain.Order{
		ID:    id,
		Code:  code,
		Items: []domain.OrderItem{{ID: id * 10, Quantity: 1}},
	}
}

func TestSetOrderList_ReplacesWholesale(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	s.SetOrderList(ctx, []*domain.Order{newOrder(1, "AAA111"), newOrder(2, "BBB222")})
	s.SetOrderList(ctx, []*domain.Order{newOrder(3, "CCC333")})

	got := s.Orders(ctx)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("list should be replaced wholesale, got %+v", got)
	}
}

func TestUpsertInList_UpdatesListAndCurrent(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	s.SetOrderList(ctx, []*domain.Order{newOrder(1, "AAA111"), newOrder(7, "AB12CD")})
	s.SetCurrentOrder(ctx, newOrder(7, "AB12CD"))

	updated := newOrder(7, "AB12CD")
	updated.Status = domain.StatusLocked
	s.UpsertInList(ctx, updated)

	got := s.Orders(ctx)
	if got[1].Status != domain.StatusLocked {
		t.Fatalf("list entry should be replaced in place, got %+v", got[1])
	}
	if got[1].ID != 7 || got[0].ID != 1 {
		t.Fatalf("positions must be preserved, got %v %v", got[0].ID, got[1].ID)
	}

	cur, ok := s.CurrentOrder(ctx)
	if !ok || cur.Status != domain.StatusLocked {
		t.Fatalf("current order should be replaced with the same value, got %+v", cur)
	}
}

func TestUpsertInList_AbsentID_NoGrowth(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	s.SetOrderList(ctx, []*domain.Order{newOrder(1, "AAA111")})
	s.UpsertInList(ctx, newOrder(99, "ZZZ999"))

	if got := s.Orders(ctx); len(got) != 1 {
		t.Fatalf("upsert of an absent id must not grow the list, got len=%d", len(got))
	}
}

func TestUpsertInList_AbsentFromList_StillRefreshesCurrent(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	// текущий заказ может не входить в видимый список
	s.SetCurrentOrder(ctx, newOrder(7, "AB12CD"))

	updated := newOrder(7, "AB12CD")
	updated.Status = domain.StatusOrdered
	s.UpsertInList(ctx, updated)

	cur, ok := s.CurrentOrder(ctx)
	if !ok || cur.Status != domain.StatusOrdered {
		t.Fatalf("current order should still be refreshed, got %+v", cur)
	}
	if got := s.Orders(ctx); len(got) != 0 {
		t.Fatalf("list must stay empty, got %+v", got)
	}
}

func TestPrependToList_NewestFirst(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	s.SetOrderList(ctx, []*domain.Order{newOrder(1, "AAA111")})
	s.PrependToList(ctx, newOrder(2, "BBB222"))

	got := s.Orders(ctx)
	if len(got) != 2 || got[0].ID != 2 {
		t.Fatalf("created order must come first, got %+v", got)
	}
}

func TestRemoveFromList_ClearsMatchingCurrent(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	s.SetOrderList(ctx, []*domain.Order{newOrder(1, "AAA111"), newOrder(2, "BBB222")})
	s.SetCurrentOrder(ctx, newOrder(2, "BBB222"))

	s.RemoveFromList(ctx, 2)

	if got := s.Orders(ctx); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("order 2 should be removed, got %+v", got)
	}
	if _, ok := s.CurrentOrder(ctx); ok {
		t.Fatalf("current order with removed id must be cleared")
	}
}

func TestSetCurrentOrder_NilClears(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	s.SetCurrentOrder(ctx, newOrder(5, "EEE555"))
	s.SetCurrentOrder(ctx, nil)

	if _, ok := s.CurrentOrder(ctx); ok {
		t.Fatalf("nil must clear the current order slot")
	}
}

func TestCloneImmutability(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	orig := newOrder(9, "III999")
	s.SetCurrentOrder(ctx, orig)

	// меняем то, что вернул стор — не должно влиять на состояние
	got, _ := s.CurrentOrder(ctx)
	got.Items[0].Quantity = 42
	orig.Code = "MUTATED"

	again, _ := s.CurrentOrder(ctx)
	if again.Items[0].Quantity == 42 || again.Code == "MUTATED" {
		t.Fatalf("store must hold and return clones, got %+v", again)
	}
}

func TestSubscribe_NotifyAndUnsubscribe(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	var events []ports.StateEvent
	unsub := s.Subscribe(func(ev ports.StateEvent) { events = append(events, ev) })

	s.PrependToList(ctx, newOrder(4, "DDD444"))
	if len(events) != 1 || events[0].Op != "prepend" || events[0].OrderID != 4 {
		t.Fatalf("expected one prepend event, got %+v", events)
	}

	unsub()
	s.RemoveFromList(ctx, 4)
	if len(events) != 1 {
		t.Fatalf("listener must not fire after unsubscribe, got %+v", events)
	}
}

func TestUpsertMiss_NoEvent(t *testing.T) {
	s := NewOrderState()
	ctx := context.Background()

	fired := 0
	s.Subscribe(func(ports.StateEvent) { fired++ })

	s.UpsertInList(ctx, newOrder(123, "XYZ123"))
	if fired != 0 {
		t.Fatalf("upsert that replaced nothing must not notify, fired=%d", fired)
	}
}
