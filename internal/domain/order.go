package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы совместного заказа (значения сервиса — в верхнем регистре).
type OrderStatus string

const (
	StatusOpen    OrderStatus = "OPEN"
	StatusLocked  OrderStatus = "LOCKED"
	StatusOrdered OrderStatus = "ORDERED"
	StatusClosed  OrderStatus = "CLOSED"
)

// Правила распределения сборов между участниками.
const (
	FeeSplitEqual         = "equal"
	FeeSplitProportional  = "proportional"
	FeeSplitCollectorPays = "collector_pays"
	FeeSplitCustom        = "custom"
)

// Order — снапшот совместного заказа, как его отдаёт Order Service.
// Подсистема синхронизации не интерпретирует содержимое дальше id/code:
// значение хранится и заменяется целиком, суммы пересчитывает сервер.
type Order struct {
	ID   int64       `json:"id"`
	Code string      `json:"code"`

	Restaurant     int64   `json:"restaurant"`
	RestaurantName string  `json:"restaurant_name"`
	Menu           *int64  `json:"menu"`
	MenuName       *string `json:"menu_name"`

	Collector             int64  `json:"collector"`
	CollectorName         string `json:"collector_name"`
	CollectorInstapayLink string `json:"collector_instapay_link"`

	Status     OrderStatus `json:"status"`
	CutoffTime *time.Time  `json:"cutoff_time"`

	InstapayLink string  `json:"instapay_link"`
	IsPrivate    bool    `json:"is_private"`
	AssignedUsers []int64 `json:"assigned_users"`

	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Tip          decimal.Decimal `json:"tip"`
	ServiceFee   decimal.Decimal `json:"service_fee"`
	FeeSplitRule string          `json:"fee_split_rule"`

	CreatedAt time.Time  `json:"created_at"`
	LockedAt  *time.Time `json:"locked_at"`
	OrderedAt *time.Time `json:"ordered_at"`
	ClosedAt  *time.Time `json:"closed_at"`

	Items        []OrderItem   `json:"items"`
	Participants []Participant `json:"participants"`
	Payments     []Payment     `json:"payments"`

	// Серверные агрегаты: push-канал и частичные ответы их не несут,
	// поэтому после мутаций позиций нужен полный re-fetch.
	TotalItemsCost decimal.Decimal `json:"total_items_cost"`
	TotalCost      decimal.Decimal `json:"total_cost"`

	ShareMessage string `json:"share_message"`
	JoinURL      string `json:"join_url"`
}

// OrderItem — позиция заказа: либо ссылка на пункт меню, либо произвольная.
type OrderItem struct {
	ID          int64            `json:"id"`
	Order       int64            `json:"order"`
	User        *int64           `json:"user"`
	UserName    string           `json:"user_name"`
	MenuItem    *int64           `json:"menu_item"`
	CustomName  *string          `json:"custom_name"`
	CustomPrice *decimal.Decimal `json:"custom_price"`
	Quantity    int              `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	TotalPrice  decimal.Decimal  `json:"total_price"`
	ItemName    string           `json:"item_name"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Participant — участник заказа (имеет хотя бы одну позицию).
type Participant struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Payment — платёж участника по заказу.
type Payment struct {
	ID        int64           `json:"id"`
	Order     int64           `json:"order"`
	OrderCode string          `json:"order_code"`
	User      int64           `json:"user"`
	UserName  string          `json:"user_name"`
	Amount    decimal.Decimal `json:"amount"`
	IsPaid    bool            `json:"is_paid"`
	PaidAt    *time.Time      `json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// Clone — глубокая копия снапшота: стор отдаёт и принимает копии,
// чтобы вызывающий код не мог мутировать внутреннее состояние.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	c := *o
	if o.AssignedUsers != nil {
		c.AssignedUsers = append([]int64(nil), o.AssignedUsers...)
	}
	if o.Items != nil {
		c.Items = append([]OrderItem(nil), o.Items...)
	}
	if o.Participants != nil {
		c.Participants = append([]Participant(nil), o.Participants...)
	}
	if o.Payments != nil {
		c.Payments = append([]Payment(nil), o.Payments...)
	}
	return &c
}
