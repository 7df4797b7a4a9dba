package stub

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"grouporder/internal/domain"
	"grouporder/internal/ports"
	"grouporder/pkg/httpx"
)

// Server — заглушка Order Service для локальной разработки: REST-ручки
// и live-канал с теми же контрактами, что у боевого сервиса. Состояние
// живёт в памяти, суммы пересчитываются на каждой мутации.
type Server struct {
	log   ports.Logger
	token string // ожидаемый токен; пустая строка отключает проверку
	hub   *hub

	mu          sync.Mutex
	seq         int64
	orders      map[int64]*domain.Order
	items       map[int64]*domain.OrderItem
	restaurants map[int64]*domain.Restaurant
	menus       map[int64]*domain.Menu
	menuItems   map[int64]*domain.MenuItem
	feePresets  []*domain.FeePreset
	payments    map[int64][]*domain.Payment
}

func NewServer(token string, log ports.Logger) *Server {
	return &Server{
		log:         log,
		token:       token,
		hub:         newHub(log),
		orders:      make(map[int64]*domain.Order),
		items:       make(map[int64]*domain.OrderItem),
		restaurants: make(map[int64]*domain.Restaurant),
		menus:       make(map[int64]*domain.Menu),
		menuItems:   make(map[int64]*domain.MenuItem),
		payments:    make(map[int64][]*domain.Payment),
	}
}

// Router — gin-роутер со всеми ручками заглушки.
func (s *Server) Router(otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(s.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", s.requireToken)
	{
		api.GET("/orders/", s.listOrders)
		api.GET("/orders/by_code/", s.orderByCode)
		api.GET("/orders/monthly_report/", s.monthlyReport)
		api.POST("/orders/", s.createOrder)
		api.DELETE("/orders/:id/", s.deleteOrder)
		api.POST("/orders/:id/lock/", s.statusAction(domain.StatusOpen, domain.StatusLocked, "Order is not open"))
		api.POST("/orders/:id/unlock/", s.statusAction(domain.StatusLocked, domain.StatusOpen, "Order is not locked"))
		api.POST("/orders/:id/mark_ordered/", s.statusAction(domain.StatusLocked, domain.StatusOrdered, "Order must be locked first"))
		api.POST("/orders/:id/close/", s.closeOrder)

		api.POST("/order-items/", s.addOrderItem)
		api.DELETE("/order-items/:id/", s.removeOrderItem)
		api.POST("/order-items/:id/add_to_menu/", s.addItemToMenu)
		api.POST("/order-items/:id/update_menu_item_price/", s.updateMenuItemPrice)

		api.GET("/restaurants/", s.listRestaurants)
		api.POST("/restaurants/", s.createRestaurant)
		api.PATCH("/restaurants/:id/", s.updateRestaurant)
		api.DELETE("/restaurants/:id/", s.deleteRestaurant)

		api.GET("/menus/", s.listMenus)
		api.GET("/menu-items/", s.listMenuItems)
		api.GET("/fee-presets/", s.listFeePresets)
		api.GET("/payments/", s.listPayments)
	}

	r.GET("/ws/orders/:id/", s.serveWS)

	return r
}

// requireToken — проверка Bearer-токена; при пустом ожидаемом токене
// доступ свободный.
func (s *Server) requireToken(c *gin.Context) {
	if s.token == "" {
		return
	}

	header := c.GetHeader("Authorization")
	if header != "Bearer "+s.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			gin.H{"detail": "Authentication credentials were not provided."})
	}
}

// ------заказы------

func (s *Server) listOrders(c *gin.Context) {
	status := c.Query("status")

	s.mu.Lock()
	out := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status == "" || string(o.Status) == status {
			out = append(out, o.Clone())
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	c.JSON(http.StatusOK, out)
}

func (s *Server) orderByCode(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Code parameter required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.Code == code {
			c.JSON(http.StatusOK, o.Clone())
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
}

func (s *Server) createOrder(c *gin.Context) {
	var req ports.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	restaurant, ok := s.restaurants[req.Restaurant]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"restaurant": []string{"Invalid restaurant"}})
		return
	}

	s.seq++
	order := &domain.Order{
		ID:             s.seq,
		Code:           newOrderCode(),
		Restaurant:     restaurant.ID,
		RestaurantName: restaurant.Name,
		Menu:           req.Menu,
		Status:         domain.StatusOpen,
		CutoffTime:     req.CutoffTime,
		InstapayLink:   req.InstapayLink,
		IsPrivate:      req.IsPrivate,
		AssignedUsers:  req.AssignedUsers,
		FeeSplitRule:   orDefault(req.FeeSplitRule, domain.FeeSplitEqual),
		CreatedAt:      time.Now().UTC(),
		Items:          []domain.OrderItem{},
	}
	if req.DeliveryFee != nil {
		order.DeliveryFee = *req.DeliveryFee
	}
	if req.Tip != nil {
		order.Tip = *req.Tip
	}
	if req.ServiceFee != nil {
		order.ServiceFee = *req.ServiceFee
	}
	s.recalcTotals(order)
	s.orders[order.ID] = order

	c.JSON(http.StatusCreated, order.Clone())
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	order, exists := s.orders[id]
	if exists && order.Status != domain.StatusOpen {
		s.mu.Unlock()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Can only delete open orders"})
		return
	}
	delete(s.orders, id)
	for itemID, item := range s.items {
		if item.Order == id {
			delete(s.items, itemID)
		}
	}
	s.mu.Unlock()

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	s.hub.closeRoom(id)
	c.Status(http.StatusNoContent)
}

// statusAction — общий обработчик переходов lock/unlock/mark_ordered:
// проверка текущего статуса, перевод, рассылка снапшота.
func (s *Server) statusAction(from, to domain.OrderStatus, refusal string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		s.mu.Lock()
		order, exists := s.orders[id]
		if !exists {
			s.mu.Unlock()
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
			return
		}
		if order.Status != from {
			s.mu.Unlock()
			c.JSON(http.StatusBadRequest, gin.H{"error": refusal})
			return
		}

		order.Status = to
		now := time.Now().UTC()
		switch to {
		case domain.StatusLocked:
			order.LockedAt = &now
		case domain.StatusOrdered:
			order.OrderedAt = &now
		case domain.StatusOpen:
			order.LockedAt = nil
		}
		snapshot := order.Clone()
		s.mu.Unlock()

		s.hub.broadcast(c.Request.Context(), snapshot)
		c.JSON(http.StatusOK, snapshot)
	}
}

// closeOrder — CLOSED из ORDERED или LOCKED; здесь же считаются платежи.
func (s *Server) closeOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	order, exists := s.orders[id]
	if !exists {
		s.mu.Unlock()
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if order.Status != domain.StatusOrdered && order.Status != domain.StatusLocked {
		s.mu.Unlock()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must be ordered or locked first"})
		return
	}

	order.Status = domain.StatusClosed
	now := time.Now().UTC()
	order.ClosedAt = &now
	s.calcPayments(order, now)
	snapshot := order.Clone()
	s.mu.Unlock()

	s.hub.broadcast(c.Request.Context(), snapshot)
	c.JSON(http.StatusOK, snapshot)
}

// ------позиции------

func (s *Server) addOrderItem(c *gin.Context) {
	var req ports.AddOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if req.Quantity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"quantity": []string{"Ensure this value is greater than or equal to 1."}})
		return
	}

	s.mu.Lock()
	order, exists := s.orders[req.Order]
	if !exists {
		s.mu.Unlock()
		c.JSON(http.StatusBadRequest, gin.H{"order": []string{"Invalid order"}})
		return
	}
	if order.Status != domain.StatusOpen {
		s.mu.Unlock()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is not open"})
		return
	}

	s.seq++
	item := domain.OrderItem{
		ID:        s.seq,
		Order:     order.ID,
		MenuItem:  req.MenuItem,
		Quantity:  req.Quantity,
		CreatedAt: time.Now().UTC(),
	}
	switch {
	case req.MenuItem != nil:
		mi, ok := s.menuItems[*req.MenuItem]
		if !ok {
			s.mu.Unlock()
			c.JSON(http.StatusBadRequest, gin.H{"menu_item": []string{"Invalid menu item"}})
			return
		}
		item.UnitPrice = mi.Price
		item.ItemName = mi.Name
	case req.CustomName != "" && req.CustomPrice != nil:
		name := req.CustomName
		item.CustomName = &name
		item.CustomPrice = req.CustomPrice
		item.UnitPrice = *req.CustomPrice
		item.ItemName = name
	default:
		s.mu.Unlock()
		c.JSON(http.StatusBadRequest, gin.H{"non_field_errors": []string{"Either menu_item or custom_name with custom_price is required"}})
		return
	}
	item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

	s.items[item.ID] = &item
	order.Items = append(order.Items, item)
	s.recalcTotals(order)
	snapshot := order.Clone()
	s.mu.Unlock()

	s.hub.broadcast(c.Request.Context(), snapshot)
	// Как и боевой сервис, ручка отвечает только созданной позицией.
	c.JSON(http.StatusCreated, item)
}

func (s *Server) removeOrderItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	item, exists := s.items[id]
	if !exists {
		s.mu.Unlock()
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	delete(s.items, id)

	order := s.orders[item.Order]
	var snapshot *domain.Order
	if order != nil {
		kept := order.Items[:0]
		for _, it := range order.Items {
			if it.ID != id {
				kept = append(kept, it)
			}
		}
		order.Items = kept
		s.recalcTotals(order)
		snapshot = order.Clone()
	}
	s.mu.Unlock()

	if snapshot != nil {
		s.hub.broadcast(c.Request.Context(), snapshot)
	}
	c.Status(http.StatusNoContent)
}

// addItemToMenu — произвольная позиция становится пунктом меню.
func (s *Server) addItemToMenu(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		MenuID *int64 `json:"menu_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if item.CustomName == nil || item.CustomPrice == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only custom items can be added to menu"})
		return
	}

	menuID := int64(0)
	if req.MenuID != nil {
		menuID = *req.MenuID
	} else if order := s.orders[item.Order]; order != nil && order.Menu != nil {
		menuID = *order.Menu
	}
	menu, ok := s.menus[menuID]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu not found"})
		return
	}

	s.seq++
	mi := &domain.MenuItem{
		ID:          s.seq,
		Menu:        menu.ID,
		MenuName:    menu.Name,
		Name:        *item.CustomName,
		Price:       *item.CustomPrice,
		IsAvailable: true,
		CreatedAt:   time.Now().UTC(),
	}
	s.menuItems[mi.ID] = mi

	c.JSON(http.StatusOK, gin.H{"menu_item": mi.ID})
}

func (s *Server) updateMenuItemPrice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Price decimal.Decimal `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.items[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if item.MenuItem == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item is not linked to a menu"})
		return
	}
	mi, ok := s.menuItems[*item.MenuItem]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	mi.Price = req.Price
	c.JSON(http.StatusOK, gin.H{"price": mi.Price})
}

// ------справочники------

func (s *Server) listRestaurants(c *gin.Context) {
	s.mu.Lock()
	out := make([]*domain.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		out = append(out, r)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) createRestaurant(c *gin.Context) {
	var req ports.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"name": []string{"This field may not be blank."}})
		return
	}

	s.mu.Lock()
	s.seq++
	r := &domain.Restaurant{
		ID:          s.seq,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.restaurants[r.ID] = r
	s.mu.Unlock()

	c.JSON(http.StatusCreated, r)
}

func (s *Server) updateRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ports.RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, exists := s.restaurants[id]
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	if req.Name != "" {
		r.Name = req.Name
	}
	if req.Description != "" {
		r.Description = req.Description
	}
	c.JSON(http.StatusOK, r)
}

func (s *Server) deleteRestaurant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	_, exists := s.restaurants[id]
	delete(s.restaurants, id)
	s.mu.Unlock()

	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listMenus(c *gin.Context) {
	restaurantID, _ := strconv.ParseInt(c.Query("restaurant"), 10, 64)

	s.mu.Lock()
	out := make([]*domain.Menu, 0)
	for _, m := range s.menus {
		if restaurantID == 0 || m.Restaurant == restaurantID {
			out = append(out, m)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) listMenuItems(c *gin.Context) {
	menuID, _ := strconv.ParseInt(c.Query("menu"), 10, 64)

	s.mu.Lock()
	out := make([]*domain.MenuItem, 0)
	for _, mi := range s.menuItems {
		if menuID == 0 || mi.Menu == menuID {
			out = append(out, mi)
		}
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) listFeePresets(c *gin.Context) {
	s.mu.Lock()
	out := append([]*domain.FeePreset(nil), s.feePresets...)
	s.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) listPayments(c *gin.Context) {
	orderID, _ := strconv.ParseInt(c.Query("order"), 10, 64)

	s.mu.Lock()
	out := append([]*domain.Payment(nil), s.payments[orderID]...)
	s.mu.Unlock()
	c.JSON(http.StatusOK, out)
}

func (s *Server) monthlyReport(c *gin.Context) {
	userID, _ := strconv.ParseInt(c.Query("user_id"), 10, 64)

	s.mu.Lock()
	total := decimal.Zero
	closed := 0
	for _, o := range s.orders {
		if o.Status == domain.StatusClosed {
			closed++
			total = total.Add(o.TotalCost)
		}
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"user_id":       userID,
		"total_spend":   total,
		"closed_orders": closed,
	})
}

// ------live-канал------

// serveWS — вход в комнату заказа; токен принимается в query
// (заголовки в браузерном WebSocket недоступны).
func (s *Server) serveWS(c *gin.Context) {
	if s.token != "" && c.Query("token") != s.token {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	s.mu.Lock()
	_, exists := s.orders[id]
	s.mu.Unlock()
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found."})
		return
	}

	s.hub.serve(c.Request.Context(), c.Writer, c.Request, id)
}

// ------вспомогательные функции------

// SeedCatalog — наполняет заглушку стартовым справочником:
// ресторан, меню, пара пунктов и пресет сборов.
func (s *Server) SeedCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	r := &domain.Restaurant{ID: s.seq, Name: "Pasta Place", CreatedAt: time.Now().UTC()}
	s.restaurants[r.ID] = r

	s.seq++
	m := &domain.Menu{ID: s.seq, Restaurant: r.ID, RestaurantName: r.Name, Name: "Lunch", IsActive: true, CreatedAt: time.Now().UTC()}
	s.menus[m.ID] = m

	for name, price := range map[string]string{"Carbonara": "85.00", "Margherita": "70.00"} {
		s.seq++
		s.menuItems[s.seq] = &domain.MenuItem{
			ID: s.seq, Menu: m.ID, MenuName: m.Name,
			Name: name, Price: decimal.RequireFromString(price),
			IsAvailable: true, CreatedAt: time.Now().UTC(),
		}
	}

	s.feePresets = append(s.feePresets, &domain.FeePreset{
		ID: 9001, Name: "Standard delivery",
		DeliveryFee:  decimal.RequireFromString("20.00"),
		FeeSplitRule: domain.FeeSplitEqual,
		CreatedAt:    time.Now().UTC(),
	})
}

// recalcTotals — серверные агрегаты: сумма позиций и полная стоимость.
func (s *Server) recalcTotals(order *domain.Order) {
	total := decimal.Zero
	for i := range order.Items {
		total = total.Add(order.Items[i].TotalPrice)
	}
	order.TotalItemsCost = total
	order.TotalCost = total.Add(order.DeliveryFee).Add(order.Tip).Add(order.ServiceFee)
}

// calcPayments — платежи при закрытии: равный раздел полной стоимости
// между участниками.
func (s *Server) calcPayments(order *domain.Order, now time.Time) {
	if len(order.Participants) == 0 {
		return
	}

	share := order.TotalCost.Div(decimal.NewFromInt(int64(len(order.Participants)))).Round(2)
	payments := make([]*domain.Payment, 0, len(order.Participants))
	for _, p := range order.Participants {
		s.seq++
		payments = append(payments, &domain.Payment{
			ID: s.seq, Order: order.ID, OrderCode: order.Code,
			User: p.ID, UserName: p.Username,
			Amount: share, CreatedAt: now,
		})
	}
	s.payments[order.ID] = payments
	order.Payments = make([]domain.Payment, 0, len(payments))
	for _, p := range payments {
		order.Payments = append(order.Payments, *p)
	}
}

// newOrderCode — шестисимвольный код в верхнем регистре.
func newOrderCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
