package ports

import (
	"context"
	"encoding/json"

	"grouporder/internal/domain"
)

// RestaurantRequest — тело создания/изменения ресторана.
type RestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CatalogAPI — обёртки над справочными ручками сервиса.
// Простые запрос-ответ вызовы без собственных инвариантов.
type CatalogAPI interface {
	ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, req RestaurantRequest) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, req RestaurantRequest) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id int64) error

	ListMenus(ctx context.Context, restaurantID int64) ([]*domain.Menu, error)
	ListMenuItems(ctx context.Context, menuID int64) ([]*domain.MenuItem, error)
	ListFeePresets(ctx context.Context) ([]*domain.FeePreset, error)

	ListPayments(ctx context.Context, orderID int64) ([]*domain.Payment, error)
	MonthlyReport(ctx context.Context, userID int64) (json.RawMessage, error)
}
