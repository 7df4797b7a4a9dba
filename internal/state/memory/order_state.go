package memory

import (
	"context"
	"sync"

	"grouporder/internal/domain"
	"grouporder/internal/ports"
	"grouporder/pkg/metrics"
)

// Проверка, что стор удовлетворяет порту.
var _ ports.OrderState = (*OrderState)(nil)

// OrderState — единственный владелец локального состояния заказов:
// видимый список и просматриваемый сейчас заказ. Оба контейнера
// независимы; связывает их только правило UpsertInList.
//
// Все операции заменяют значение целиком — стор никогда не сливает
// частичные данные из разных источников (REST-ответ, re-fetch, push).
// Внутрь кладутся и наружу отдаются копии.
type OrderState struct {
	mu      sync.Mutex
	orders  []*domain.Order
	current *domain.Order

	subMu     sync.Mutex
	subs      map[int]func(ports.StateEvent)
	nextSubID int
}

func NewOrderState() *OrderState {
	return &OrderState{
		subs: make(map[int]func(ports.StateEvent)),
	}
}

// Orders — копия видимого списка.
func (s *OrderState) Orders(_ context.Context) []*domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Order, len(s.orders))
	for i, o := range s.orders {
		out[i] = o.Clone()
	}
	return out
}

// CurrentOrder — копия просматриваемого заказа; (nil, false), если его нет.
func (s *OrderState) CurrentOrder(_ context.Context) (*domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	return s.current.Clone(), true
}

// SetOrderList — заменяет список целиком (после выборки списка).
func (s *OrderState) SetOrderList(_ context.Context, orders []*domain.Order) {
	s.mu.Lock()
	s.orders = cloneAll(orders)
	size := len(s.orders)
	s.mu.Unlock()

	metrics.StateOps.WithLabelValues("set_list").Inc()
	metrics.StateListSize.Set(float64(size))
	s.notify(ports.StateEvent{Op: "set_list"})
}

// SetCurrentOrder — заменяет слот текущего заказа; nil очищает его.
func (s *OrderState) SetCurrentOrder(_ context.Context, order *domain.Order) {
	s.mu.Lock()
	s.current = order.Clone()
	s.mu.Unlock()

	metrics.StateOps.WithLabelValues("set_current").Inc()
	s.notify(ports.StateEvent{Op: "set_current", OrderID: orderID(order)})
}

// UpsertInList — замена на месте по id; позиция сохраняется, отсутствующий
// id список не расширяет. Совпадение с текущим заказом обновляет и его —
// тем же значением.
func (s *OrderState) UpsertInList(_ context.Context, order *domain.Order) {
	if order == nil {
		return
	}

	s.mu.Lock()
	replaced := false
	for i, o := range s.orders {
		if o.ID == order.ID {
			s.orders[i] = order.Clone()
			replaced = true
			break
		}
	}
	if s.current != nil && s.current.ID == order.ID {
		s.current = order.Clone()
		replaced = true
	}
	s.mu.Unlock()

	if !replaced {
		metrics.StateOps.WithLabelValues("upsert_miss").Inc()
		return
	}
	metrics.StateOps.WithLabelValues("upsert").Inc()
	s.notify(ports.StateEvent{Op: "upsert", OrderID: order.ID})
}

// PrependToList — новый заказ встаёт первым независимо от серверного порядка.
func (s *OrderState) PrependToList(_ context.Context, order *domain.Order) {
	if order == nil {
		return
	}

	s.mu.Lock()
	s.orders = append([]*domain.Order{order.Clone()}, s.orders...)
	size := len(s.orders)
	s.mu.Unlock()

	metrics.StateOps.WithLabelValues("prepend").Inc()
	metrics.StateListSize.Set(float64(size))
	s.notify(ports.StateEvent{Op: "prepend", OrderID: order.ID})
}

// RemoveFromList — удаление по id; совпадающий текущий заказ очищается.
func (s *OrderState) RemoveFromList(_ context.Context, id int64) {
	s.mu.Lock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	size := len(s.orders)
	s.mu.Unlock()

	metrics.StateOps.WithLabelValues("remove").Inc()
	metrics.StateListSize.Set(float64(size))
	s.notify(ports.StateEvent{Op: "remove", OrderID: id})
}

// Subscribe — регистрирует слушателя; слушатели вызываются синхронно,
// уже после снятия блокировки стора.
func (s *OrderState) Subscribe(fn func(ports.StateEvent)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// ------вспомогательные функции------

func (s *OrderState) notify(ev ports.StateEvent) {
	s.subMu.Lock()
	fns := make([]func(ports.StateEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func cloneAll(orders []*domain.Order) []*domain.Order {
	out := make([]*domain.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}

func orderID(o *domain.Order) int64 {
	if o == nil {
		return 0
	}
	return o.ID
}
