package ports

import (
	"context"

	"grouporder/internal/domain"
)

// StateEvent — уведомление подписчика об изменении стора.
type StateEvent struct {
	Op      string // set_list|set_current|upsert|prepend|remove
	OrderID int64  // id затронутого заказа; 0 для set_list
}

// OrderState — локальный стор состояния заказов.
// Требования к реализации: потокобезопасность; операции тотальны (не
// возвращают ошибок и не паникуют); значения заменяются только целиком —
// частичное слияние снапшотов из разных источников запрещено; наружу
// отдаются копии.
type OrderState interface {
	// Orders — текущий видимый список заказов (копия).
	Orders(ctx context.Context) []*domain.Order

	// CurrentOrder — просматриваемый заказ; (nil, false), если его нет.
	CurrentOrder(ctx context.Context) (*domain.Order, bool)

	// SetOrderList — заменяет список целиком (после выборки списка).
	SetOrderList(ctx context.Context, orders []*domain.Order)

	// SetCurrentOrder — заменяет слот текущего заказа; nil очищает его.
	SetCurrentOrder(ctx context.Context, order *domain.Order)

	// UpsertInList — заменяет запись с тем же id на месте; отсутствующий
	// id список не расширяет. Если id совпадает с текущим заказом,
	// текущий заказ заменяется тем же значением — единственное правило,
	// связывающее оба контейнера.
	UpsertInList(ctx context.Context, order *domain.Order)

	// PrependToList — ставит заказ в начало списка (только при создании).
	PrependToList(ctx context.Context, order *domain.Order)

	// RemoveFromList — удаляет по id; совпадающий текущий заказ очищается.
	RemoveFromList(ctx context.Context, id int64)

	// Subscribe — регистрирует слушателя изменений; возвращает отписку.
	Subscribe(fn func(StateEvent)) (unsubscribe func())
}
