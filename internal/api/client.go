package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"grouporder/internal/auth"
	"grouporder/internal/domain"
	"grouporder/internal/ports"
	"grouporder/pkg/httpx"
	"grouporder/pkg/metrics"
	"grouporder/pkg/telemetry"
)

// Проверки, что клиент закрывает оба порта.
var (
	_ ports.OrderAPI   = (*Client)(nil)
	_ ports.CatalogAPI = (*Client)(nil)
)

// Client — REST-клиент Order Service.
// Тонкий слой: маршрут, заголовки, декодирование тела и ошибок.
// Всю координацию с локальным состоянием делает usecase-слой.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens auth.TokenSource
	log    ports.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens auth.TokenSource, log ports.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api: разбор базового URL: %w", err)
	}

	return &Client{
		base: u,
		http: &http.Client{
			Timeout:   timeout,
			Transport: &httpx.RequestIDTransport{},
		},
		tokens: tokens,
		log:    log,
	}, nil
}

// ------заказы------

func (c *Client) ListOrders(ctx context.Context, status string) ([]*domain.Order, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}

	var out []*domain.Order
	if err := c.do(ctx, "list_orders", http.MethodGet, "/orders/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) OrderByCode(ctx context.Context, code string) (*domain.Order, error) {
	q := url.Values{}
	q.Set("code", code)

	var out domain.Order
	if err := c.do(ctx, "order_by_code", http.MethodGet, "/orders/by_code/", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, req ports.CreateOrderRequest) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, "create_order", http.MethodPost, "/orders/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Статусные ручки возвращают полный снапшот заказа.

func (c *Client) LockOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return c.orderAction(ctx, "lock_order", id, "lock")
}

func (c *Client) UnlockOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return c.orderAction(ctx, "unlock_order", id, "unlock")
}

func (c *Client) MarkOrdered(ctx context.Context, id int64) (*domain.Order, error) {
	return c.orderAction(ctx, "mark_ordered", id, "mark_ordered")
}

func (c *Client) CloseOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return c.orderAction(ctx, "close_order", id, "close")
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	path := "/orders/" + strconv.FormatInt(id, 10) + "/"
	return c.do(ctx, "delete_order", http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) orderAction(ctx context.Context, endpoint string, id int64, action string) (*domain.Order, error) {
	path := "/orders/" + strconv.FormatInt(id, 10) + "/" + action + "/"

	var out domain.Order
	if err := c.do(ctx, endpoint, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ------позиции заказа------

func (c *Client) AddOrderItem(ctx context.Context, req ports.AddOrderItemRequest) (*domain.OrderItem, error) {
	var out domain.OrderItem
	if err := c.do(ctx, "add_order_item", http.MethodPost, "/order-items/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RemoveOrderItem(ctx context.Context, id int64) error {
	path := "/order-items/" + strconv.FormatInt(id, 10) + "/"
	return c.do(ctx, "remove_order_item", http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) AddItemToMenu(ctx context.Context, itemID int64, menuID *int64) error {
	path := "/order-items/" + strconv.FormatInt(itemID, 10) + "/add_to_menu/"

	body := map[string]any{}
	if menuID != nil {
		body["menu_id"] = *menuID
	}
	return c.do(ctx, "add_item_to_menu", http.MethodPost, path, nil, body, nil)
}

func (c *Client) UpdateMenuItemPrice(ctx context.Context, itemID int64, price decimal.Decimal) error {
	path := "/order-items/" + strconv.FormatInt(itemID, 10) + "/update_menu_item_price/"
	body := map[string]any{"price": price}
	return c.do(ctx, "update_menu_item_price", http.MethodPost, path, nil, body, nil)
}

// ------справочники------

func (c *Client) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	var out []*domain.Restaurant
	if err := c.do(ctx, "list_restaurants", http.MethodGet, "/restaurants/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRestaurant(ctx context.Context, req ports.RestaurantRequest) (*domain.Restaurant, error) {
	var out domain.Restaurant
	if err := c.do(ctx, "create_restaurant", http.MethodPost, "/restaurants/", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRestaurant(ctx context.Context, id int64, req ports.RestaurantRequest) (*domain.Restaurant, error) {
	path := "/restaurants/" + strconv.FormatInt(id, 10) + "/"

	var out domain.Restaurant
	if err := c.do(ctx, "update_restaurant", http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRestaurant(ctx context.Context, id int64) error {
	path := "/restaurants/" + strconv.FormatInt(id, 10) + "/"
	return c.do(ctx, "delete_restaurant", http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) ListMenus(ctx context.Context, restaurantID int64) ([]*domain.Menu, error) {
	q := url.Values{}
	q.Set("restaurant", strconv.FormatInt(restaurantID, 10))

	var out []*domain.Menu
	if err := c.do(ctx, "list_menus", http.MethodGet, "/menus/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMenuItems(ctx context.Context, menuID int64) ([]*domain.MenuItem, error) {
	q := url.Values{}
	q.Set("menu", strconv.FormatInt(menuID, 10))

	var out []*domain.MenuItem
	if err := c.do(ctx, "list_menu_items", http.MethodGet, "/menu-items/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListFeePresets(ctx context.Context) ([]*domain.FeePreset, error) {
	var out []*domain.FeePreset
	if err := c.do(ctx, "list_fee_presets", http.MethodGet, "/fee-presets/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListPayments(ctx context.Context, orderID int64) ([]*domain.Payment, error) {
	q := url.Values{}
	q.Set("order", strconv.FormatInt(orderID, 10))

	var out []*domain.Payment
	if err := c.do(ctx, "list_payments", http.MethodGet, "/payments/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MonthlyReport(ctx context.Context, userID int64) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))

	var out json.RawMessage
	if err := c.do(ctx, "monthly_report", http.MethodGet, "/orders/monthly_report/", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do — общий путь запроса: трейсинг, заголовки, метрики, ошибки.
// out == nil означает, что тело успешного ответа не интересует.
func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, body, out any) error {
	ctx, span := telemetry.Tracer().Start(ctx, "api."+endpoint,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", path),
		),
	)
	defer span.End()

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: %s: кодирование тела: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("api: %s: сборка запроса: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.fail(ctx, span, endpoint, err)
		return fmt.Errorf("api: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := decodeError(endpoint, resp)
		c.fail(ctx, span, endpoint, apiErr)
		return apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.fail(ctx, span, endpoint, err)
			return fmt.Errorf("api: %s: декодирование ответа: %w", endpoint, err)
		}
	}

	metrics.APIRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

func (c *Client) fail(ctx context.Context, span trace.Span, endpoint string, err error) {
	metrics.APIRequests.WithLabelValues(endpoint, "error").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.log.Warnf(ctx, "api: %s: %v", endpoint, err)
}
