package usecase

import (
	"context"
	"encoding/json"

	"grouporder/internal/domain"
	"grouporder/internal/ports"
)

// CatalogService — справочные операции: рестораны, меню, пресеты сборов,
// платежи. Локального состояния у них нет, сервис лишь логирует неуспехи.
type CatalogService struct {
	api ports.CatalogAPI
	log ports.Logger
}

func NewCatalogService(api ports.CatalogAPI, log ports.Logger) *CatalogService {
	return &CatalogService{api: api, log: log}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	restaurants, err := s.api.ListRestaurants(ctx)
	if err != nil {
		s.log.Warnf(ctx, "api.ListRestaurants failed err=%v", err)
		return nil, err
	}
	return restaurants, nil
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, req ports.RestaurantRequest) (*domain.Restaurant, error) {
	restaurant, err := s.api.CreateRestaurant(ctx, req)
	if err != nil {
		s.log.Warnf(ctx, "api.CreateRestaurant failed err=%v", err)
		return nil, err
	}
	s.log.Infof(ctx, "restaurant created id=%d name=%s", restaurant.ID, restaurant.Name)
	return restaurant, nil
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, id int64, req ports.RestaurantRequest) (*domain.Restaurant, error) {
	restaurant, err := s.api.UpdateRestaurant(ctx, id, req)
	if err != nil {
		s.log.Warnf(ctx, "api.UpdateRestaurant failed id=%d err=%v", id, err)
		return nil, err
	}
	return restaurant, nil
}

func (s *CatalogService) DeleteRestaurant(ctx context.Context, id int64) error {
	if err := s.api.DeleteRestaurant(ctx, id); err != nil {
		s.log.Warnf(ctx, "api.DeleteRestaurant failed id=%d err=%v", id, err)
		return err
	}
	return nil
}

func (s *CatalogService) ListMenus(ctx context.Context, restaurantID int64) ([]*domain.Menu, error) {
	menus, err := s.api.ListMenus(ctx, restaurantID)
	if err != nil {
		s.log.Warnf(ctx, "api.ListMenus failed restaurant_id=%d err=%v", restaurantID, err)
		return nil, err
	}
	return menus, nil
}

func (s *CatalogService) ListMenuItems(ctx context.Context, menuID int64) ([]*domain.MenuItem, error) {
	items, err := s.api.ListMenuItems(ctx, menuID)
	if err != nil {
		s.log.Warnf(ctx, "api.ListMenuItems failed menu_id=%d err=%v", menuID, err)
		return nil, err
	}
	return items, nil
}

func (s *CatalogService) ListFeePresets(ctx context.Context) ([]*domain.FeePreset, error) {
	presets, err := s.api.ListFeePresets(ctx)
	if err != nil {
		s.log.Warnf(ctx, "api.ListFeePresets failed err=%v", err)
		return nil, err
	}
	return presets, nil
}

func (s *CatalogService) ListPayments(ctx context.Context, orderID int64) ([]*domain.Payment, error) {
	payments, err := s.api.ListPayments(ctx, orderID)
	if err != nil {
		s.log.Warnf(ctx, "api.ListPayments failed order_id=%d err=%v", orderID, err)
		return nil, err
	}
	return payments, nil
}

func (s *CatalogService) MonthlyReport(ctx context.Context, userID int64) (json.RawMessage, error) {
	report, err := s.api.MonthlyReport(ctx, userID)
	if err != nil {
		s.log.Warnf(ctx, "api.MonthlyReport failed user_id=%d err=%v", userID, err)
		return nil, err
	}
	return report, nil
}
