package stub

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"grouporder/internal/domain"
	"grouporder/internal/ports"
)

// hub — комнаты live-канала: по одной на заказ.
// Каждая мутация заказа рассылается всем подключённым к его комнате.
type hub struct {
	log ports.Logger

	mu    sync.Mutex
	rooms map[int64]map[*websocket.Conn]*sync.Mutex
}

func newHub(log ports.Logger) *hub {
	return &hub{
		log:   log,
		rooms: make(map[int64]map[*websocket.Conn]*sync.Mutex),
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// serve — обслуживает одно подключение: регистрация в комнате,
// ответ pong на ping, снятие с учёта при разрыве.
func (h *hub) serve(ctx context.Context, w http.ResponseWriter, r *http.Request, orderID int64) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf(ctx, "stub ws: upgrade failed err=%v", err)
		return
	}

	writeMu := &sync.Mutex{}

	h.mu.Lock()
	room, ok := h.rooms[orderID]
	if !ok {
		room = make(map[*websocket.Conn]*sync.Mutex)
		h.rooms[orderID] = room
	}
	room[conn] = writeMu
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[orderID], conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(data, &msg) != nil {
			continue
		}
		if msg.Type == "ping" {
			writeMu.Lock()
			err := conn.WriteJSON(map[string]string{"type": "pong"})
			writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

// broadcast — рассылает снапшот заказа его комнате.
func (h *hub) broadcast(ctx context.Context, order *domain.Order) {
	payload, err := json.Marshal(map[string]any{
		"type":  "order_update",
		"order": order,
	})
	if err != nil {
		h.log.Errorf(ctx, "stub ws: marshal broadcast err=%v", err)
		return
	}

	h.mu.Lock()
	conns := make(map[*websocket.Conn]*sync.Mutex, len(h.rooms[order.ID]))
	for conn, mu := range h.rooms[order.ID] {
		conns[conn] = mu
	}
	h.mu.Unlock()

	for conn, mu := range conns {
		mu.Lock()
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Warnf(ctx, "stub ws: broadcast write failed err=%v", err)
		}
		mu.Unlock()
	}
}

// closeRoom — штатно закрывает все подключения комнаты (код 1000).
// Используется при удалении заказа.
func (h *hub) closeRoom(orderID int64) {
	h.mu.Lock()
	room := h.rooms[orderID]
	delete(h.rooms, orderID)
	h.mu.Unlock()

	for conn, mu := range room {
		mu.Lock()
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "order deleted"),
			time.Now().Add(time.Second),
		)
		mu.Unlock()
		conn.Close()
	}
}
