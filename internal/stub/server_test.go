package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"grouporder/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newTestServer(t *testing.T, token string) (*Server, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := NewServer(token, noopLogger{})
	s.SeedCatalog()

	srv := httptest.NewServer(s.Router(""))
	t.Cleanup(srv.Close)
	return s, srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func decodeOrder(t *testing.T, resp *http.Response) *domain.Order {
	t.Helper()
	defer resp.Body.Close()

	var o domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&o); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	return &o
}

func createOrder(t *testing.T, srv *httptest.Server) *domain.Order {
	t.Helper()

	resp := postJSON(t, srv.URL+"/api/orders/", map[string]any{"restaurant": 1})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create order status %d", resp.StatusCode)
	}
	return decodeOrder(t, resp)
}

func TestCreateOrder_CodeAndDefaults(t *testing.T) {
	_, srv := newTestServer(t, "")

	order := createOrder(t, srv)
	if len(order.Code) != 6 || order.Code != strings.ToUpper(order.Code) {
		t.Fatalf("code must be 6 uppercase chars, got %q", order.Code)
	}
	if order.Status != domain.StatusOpen {
		t.Fatalf("new order must be OPEN, got %s", order.Status)
	}
	if order.FeeSplitRule != domain.FeeSplitEqual {
		t.Fatalf("default split rule must be equal, got %q", order.FeeSplitRule)
	}
}

func TestAddItem_RecomputesTotals(t *testing.T) {
	_, srv := newTestServer(t, "")
	order := createOrder(t, srv)

	resp := postJSON(t, srv.URL+"/api/order-items/", map[string]any{
		"order": order.ID, "custom_name": "Soup", "custom_price": "30.00", "quantity": 2,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add item status %d", resp.StatusCode)
	}
	resp.Body.Close()

	got, err := http.Get(srv.URL + "/api/orders/by_code/?code=" + order.Code)
	if err != nil {
		t.Fatalf("by_code: %v", err)
	}
	refreshed := decodeOrder(t, got)

	if len(refreshed.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(refreshed.Items))
	}
	if refreshed.TotalItemsCost.String() != "60" {
		t.Fatalf("totals must be recomputed server-side, got %s", refreshed.TotalItemsCost)
	}
}

func TestStatusFlow_LockRefusedTwice(t *testing.T) {
	_, srv := newTestServer(t, "")
	order := createOrder(t, srv)

	url := srv.URL + "/api/orders/" + itoa(order.ID) + "/lock/"

	resp := postJSON(t, url, nil)
	locked := decodeOrder(t, resp)
	if locked.Status != domain.StatusLocked || locked.LockedAt == nil {
		t.Fatalf("expected LOCKED with timestamp, got %+v", locked)
	}

	resp = postJSON(t, url, nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("second lock must be refused, status %d", resp.StatusCode)
	}

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	if body["error"] != "Order is not open" {
		t.Fatalf("unexpected refusal body %v", body)
	}
}

func TestRequireToken(t *testing.T) {
	_, srv := newTestServer(t, "secret")

	resp, err := http.Get(srv.URL + "/api/orders/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token must be rejected, status %d", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/orders/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("get with token: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("valid token must pass, status %d", resp.StatusCode)
	}
}

func TestWS_PingPongAndBroadcast(t *testing.T) {
	_, srv := newTestServer(t, "")
	order := createOrder(t, srv)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders/" + itoa(order.ID) + "/"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// ping → pong
	if err := conn.WriteJSON(map[string]string{"type": "ping"}); err != nil {
		t.Fatalf("write ping: %v", err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil || !strings.Contains(string(data), `"pong"`) {
		t.Fatalf("expected pong, got %s err=%v", data, err)
	}

	// Мутация по REST должна прилететь в комнату.
	postJSON(t, srv.URL+"/api/orders/"+itoa(order.ID)+"/lock/", nil).Body.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}

	var env struct {
		Type  string       `json:"type"`
		Order domain.Order `json:"order"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("decode broadcast: %v", err)
	}
	if env.Type != "order_update" || env.Order.Status != domain.StatusLocked {
		t.Fatalf("unexpected broadcast %s", data)
	}
}

func TestWS_TokenRejected(t *testing.T) {
	_, srv := newTestServer(t, "secret")

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders/1/?token=wrong"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		t.Fatalf("dial with wrong token must fail")
	}
	if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 handshake response, got %+v", resp)
	}
	resp.Body.Close()
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
