package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"grouporder/internal/domain"
)

// CreateOrderRequest — тело POST /orders/.
type CreateOrderRequest struct {
	Restaurant    int64            `json:"restaurant"`
	Menu          *int64           `json:"menu,omitempty"`
	CutoffTime    *time.Time       `json:"cutoff_time,omitempty"`
	InstapayLink  string           `json:"instapay_link,omitempty"`
	IsPrivate     bool             `json:"is_private,omitempty"`
	AssignedUsers []int64          `json:"assigned_users,omitempty"`
	DeliveryFee   *decimal.Decimal `json:"delivery_fee,omitempty"`
	Tip           *decimal.Decimal `json:"tip,omitempty"`
	ServiceFee    *decimal.Decimal `json:"service_fee,omitempty"`
	FeeSplitRule  string           `json:"fee_split_rule,omitempty"`
}

// AddOrderItemRequest — тело POST /order-items/: либо пункт меню,
// либо произвольная позиция (custom_name + custom_price), но не оба сразу.
type AddOrderItemRequest struct {
	Order       int64            `json:"order"`
	MenuItem    *int64           `json:"menu_item,omitempty"`
	CustomName  string           `json:"custom_name,omitempty"`
	CustomPrice *decimal.Decimal `json:"custom_price,omitempty"`
	Quantity    int              `json:"quantity"`
}

// OrderAPI — типизированный клиент Order Service для заказов и позиций.
// Мутации, возвращающие полный Order, отмечены явно; остальные отдают
// частичное тело, и вызывающая сторона обязана перечитать заказ по коду.
type OrderAPI interface {
	ListOrders(ctx context.Context, status string) ([]*domain.Order, error)
	OrderByCode(ctx context.Context, code string) (*domain.Order, error)
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)

	// Статусные мутации: ответ — полный Order.
	LockOrder(ctx context.Context, id int64) (*domain.Order, error)
	UnlockOrder(ctx context.Context, id int64) (*domain.Order, error)
	MarkOrdered(ctx context.Context, id int64) (*domain.Order, error)
	CloseOrder(ctx context.Context, id int64) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error

	// Позиции: ответы без серверных агрегатов.
	AddOrderItem(ctx context.Context, req AddOrderItemRequest) (*domain.OrderItem, error)
	RemoveOrderItem(ctx context.Context, id int64) error
	AddItemToMenu(ctx context.Context, itemID int64, menuID *int64) error
	UpdateMenuItemPrice(ctx context.Context, itemID int64, price decimal.Decimal) error
}
