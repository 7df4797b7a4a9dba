package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"grouporder/internal/domain"
	"grouporder/internal/ports"
)

// OrderSyncService — координатор мутаций: каждая операция сначала ходит
// в Order Service, затем применяет подтверждённый результат к локальному
// состоянию. Неуспешный запрос состояние не трогает.
type OrderSyncService struct {
	api       ports.OrderAPI         // прямой доступ к REST-клиенту
	state     ports.OrderState       // прямой доступ к стору состояния
	log       ports.Logger           // прямой доступ к логгеру
	validator ports.SnapshotValidator // проверка снапшотов перед применением
}

// NewOrderSyncService — DI-конструктор.
func NewOrderSyncService(
	api ports.OrderAPI,
	state ports.OrderState,
	log ports.Logger,
	validator ports.SnapshotValidator,
) *OrderSyncService {
	return &OrderSyncService{
		api:       api,
		state:     state,
		log:       log,
		validator: validator,
	}
}

// FetchOrders — выборка списка с опциональным фильтром по статусу.
// Список заменяется целиком, без слияния со старым содержимым.
func (s *OrderSyncService) FetchOrders(ctx context.Context, status string) ([]*domain.Order, error) {
	start := time.Now()
	orders, err := s.api.ListOrders(ctx, status)
	if err != nil {
		s.log.Errorf(ctx, "api.ListOrders failed status=%q err=%v", status, err)
		return nil, err
	}

	s.state.SetOrderList(ctx, orders)
	s.log.Infof(ctx, "order list fetched count=%d took=%s", len(orders), time.Since(start))
	return orders, nil
}

// FetchOrderByCode — выборка заказа по коду и замена текущего.
// Код канонизируется (верхний регистр, без пробелов по краям).
// Неуспех очищает слот текущего заказа: страница заказа не должна
// показывать устаревший снапшот под чужим кодом.
func (s *OrderSyncService) FetchOrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	code = CanonicalCode(code)
	if code == "" {
		s.state.SetCurrentOrder(ctx, nil)
		return nil, fmt.Errorf("пустой код заказа")
	}

	order, err := s.api.OrderByCode(ctx, code)
	if err != nil {
		s.log.Warnf(ctx, "api.OrderByCode failed code=%s err=%v", code, err)
		s.state.SetCurrentOrder(ctx, nil)
		return nil, err
	}
	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "invalid order snapshot code=%s err=%v", code, err)
		s.state.SetCurrentOrder(ctx, nil)
		return nil, err
	}

	s.state.SetCurrentOrder(ctx, order)
	return order, nil
}

// CreateOrder — создание заказа; подтверждённый заказ встаёт первым
// в списке и становится текущим (создатель сразу переходит к нему).
func (s *OrderSyncService) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*domain.Order, error) {
	order, err := s.api.CreateOrder(ctx, req)
	if err != nil {
		s.log.Errorf(ctx, "api.CreateOrder failed err=%v", err)
		return nil, err
	}

	s.state.PrependToList(ctx, order)
	s.state.SetCurrentOrder(ctx, order)
	s.log.Infof(ctx, "order created id=%d code=%s", order.ID, order.Code)
	return order, nil
}

// ------статусные переходы------
// Сервер отвечает полным снапшотом; он замещает запись в списке
// и, при совпадении id, текущий заказ.

func (s *OrderSyncService) LockOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.applyStatusChange(ctx, "lock", id, s.api.LockOrder)
}

func (s *OrderSyncService) UnlockOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.applyStatusChange(ctx, "unlock", id, s.api.UnlockOrder)
}

func (s *OrderSyncService) MarkOrdered(ctx context.Context, id int64) (*domain.Order, error) {
	return s.applyStatusChange(ctx, "mark_ordered", id, s.api.MarkOrdered)
}

func (s *OrderSyncService) CloseOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.applyStatusChange(ctx, "close", id, s.api.CloseOrder)
}

func (s *OrderSyncService) applyStatusChange(
	ctx context.Context,
	action string,
	id int64,
	call func(context.Context, int64) (*domain.Order, error),
) (*domain.Order, error) {
	order, err := call(ctx, id)
	if err != nil {
		s.log.Warnf(ctx, "status change failed action=%s order_id=%d err=%v", action, id, err)
		return nil, err
	}
	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "invalid snapshot after %s order_id=%d err=%v", action, id, err)
		return nil, err
	}

	s.state.UpsertInList(ctx, order)
	s.log.Infof(ctx, "order %s id=%d status=%s", action, id, order.Status)
	return order, nil
}

// DeleteOrder — удаление; запись уходит из списка, совпадающий
// текущий заказ очищается стором.
func (s *OrderSyncService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.api.DeleteOrder(ctx, id); err != nil {
		s.log.Warnf(ctx, "api.DeleteOrder failed order_id=%d err=%v", id, err)
		return err
	}

	s.state.RemoveFromList(ctx, id)
	s.log.Infof(ctx, "order deleted id=%d", id)
	return nil
}

// ------мутации позиций------
// Ответы этих ручек не несут серверных агрегатов, поэтому после
// подтверждения заказ перечитывается целиком по коду.

func (s *OrderSyncService) AddOrderItem(ctx context.Context, req ports.AddOrderItemRequest) (*domain.OrderItem, error) {
	item, err := s.api.AddOrderItem(ctx, req)
	if err != nil {
		s.log.Warnf(ctx, "api.AddOrderItem failed order_id=%d err=%v", req.Order, err)
		return nil, err
	}

	s.refreshCurrent(ctx)
	return item, nil
}

func (s *OrderSyncService) RemoveOrderItem(ctx context.Context, id int64) error {
	if err := s.api.RemoveOrderItem(ctx, id); err != nil {
		s.log.Warnf(ctx, "api.RemoveOrderItem failed item_id=%d err=%v", id, err)
		return err
	}

	s.refreshCurrent(ctx)
	return nil
}

func (s *OrderSyncService) AddItemToMenu(ctx context.Context, itemID int64, menuID *int64) error {
	if err := s.api.AddItemToMenu(ctx, itemID, menuID); err != nil {
		s.log.Warnf(ctx, "api.AddItemToMenu failed item_id=%d err=%v", itemID, err)
		return err
	}

	s.refreshCurrent(ctx)
	return nil
}

func (s *OrderSyncService) UpdateMenuItemPrice(ctx context.Context, itemID int64, price decimal.Decimal) error {
	if err := s.api.UpdateMenuItemPrice(ctx, itemID, price); err != nil {
		s.log.Warnf(ctx, "api.UpdateMenuItemPrice failed item_id=%d err=%v", itemID, err)
		return err
	}

	s.refreshCurrent(ctx)
	return nil
}

// refreshCurrent — полный re-fetch текущего заказа по коду.
// Ответ применяется только если к этому моменту текущим остался тот же
// заказ; иначе снапшот устарел и молча отбрасывается.
func (s *OrderSyncService) refreshCurrent(ctx context.Context) {
	current, ok := s.state.CurrentOrder(ctx)
	if !ok {
		return
	}
	code := current.Code

	order, err := s.api.OrderByCode(ctx, code)
	if err != nil {
		// Состояние не трогаем: на экране остаётся последний
		// подтверждённый снапшот.
		s.log.Warnf(ctx, "re-fetch failed code=%s err=%v", code, err)
		return
	}
	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "re-fetch returned invalid snapshot code=%s err=%v", code, err)
		return
	}

	still, ok := s.state.CurrentOrder(ctx)
	if !ok || still.Code != code {
		s.log.Infof(ctx, "re-fetch discarded, current order changed code=%s", code)
		return
	}

	s.state.SetCurrentOrder(ctx, order)
}

// ApplyPushUpdate — применение снапшота из live-канала.
// Кривой снапшот отбрасывается, состояние остаётся прежним.
// Канал открыт ровно для наблюдаемого заказа, поэтому при пустом слоте
// текущего заказа снапшот занимает его.
func (s *OrderSyncService) ApplyPushUpdate(ctx context.Context, order *domain.Order) {
	if err := s.validator.Validate(ctx, order); err != nil {
		s.log.Warnf(ctx, "push update dropped err=%v", err)
		return
	}

	s.state.UpsertInList(ctx, order)
	if _, ok := s.state.CurrentOrder(ctx); !ok {
		s.state.SetCurrentOrder(ctx, order)
	}
}

// CanonicalCode — код заказа в канонической форме: верхний регистр,
// без пробелов по краям.
func CanonicalCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
