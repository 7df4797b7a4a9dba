package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Справочные сущности сервиса: ресторан, меню, пункт меню, пресет сборов.
// Клиент хранит их как есть, без собственных инвариантов.

type Restaurant struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	CreatedBy     int64     `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type Menu struct {
	ID             int64     `json:"id"`
	Restaurant     int64     `json:"restaurant"`
	RestaurantName string    `json:"restaurant_name"`
	Name           string    `json:"name"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type MenuItem struct {
	ID          int64           `json:"id"`
	Menu        int64           `json:"menu"`
	MenuName    string          `json:"menu_name"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
}

type FeePreset struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Tip          decimal.Decimal `json:"tip"`
	ServiceFee   decimal.Decimal `json:"service_fee"`
	FeeSplitRule string          `json:"fee_split_rule"`
	CreatedAt    time.Time       `json:"created_at"`
}
