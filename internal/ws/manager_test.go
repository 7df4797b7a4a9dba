package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"grouporder/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type staticToken string

func (s staticToken) Token() string { return string(s) }

var upgrader = websocket.Upgrader{}

func testConfig(srv *httptest.Server) Config {
	return Config{
		BaseURL:           "ws" + strings.TrimPrefix(srv.URL, "http"),
		HeartbeatInterval: 0, // в большинстве тестов heartbeat не нужен
		ReconnectDelay:    20 * time.Millisecond,
		MaxReconnects:     5,
		HandshakeTimeout:  time.Second,
	}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out: %s", msg)
}

func TestConnect_DeliversOrderUpdate(t *testing.T) {
	var gotPath, gotToken atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		gotToken.Store(r.URL.Query().Get("token"))

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type": "order_update", "order": {"id": 7, "code": "AB12CD", "status": "LOCKED"}}`))

		// Держим канал открытым, пока клиент не закроет его сам.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	updates := make(chan *domain.Order, 1)
	m := NewManager(testConfig(srv), staticToken("test-token"), noopLogger{})
	defer m.Disconnect()

	m.Connect(context.Background(), 7, func(_ context.Context, o *domain.Order) {
		updates <- o
	})

	select {
	case o := <-updates:
		if o.ID != 7 || o.Status != domain.StatusLocked {
			t.Fatalf("unexpected update %+v", o)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("order_update not delivered")
	}

	if gotPath.Load() != "/ws/orders/7/" {
		t.Fatalf("unexpected path %v", gotPath.Load())
	}
	if gotToken.Load() != "test-token" {
		t.Fatalf("token must travel in the query string, got %v", gotToken.Load())
	}
	waitFor(t, m.Connected, "channel must report connected")
}

func TestConnect_SameOrderIsNoop(t *testing.T) {
	var dials int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&dials, 1)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	m := NewManager(testConfig(srv), staticToken(""), noopLogger{})
	defer m.Disconnect()

	m.Connect(context.Background(), 7, nil)
	waitFor(t, m.Connected, "first connect")

	m.Connect(context.Background(), 7, nil)
	m.Connect(context.Background(), 7, nil)
	time.Sleep(100 * time.Millisecond)

	if n := atomic.LoadInt64(&dials); n != 1 {
		t.Fatalf("repeat connects to the same order must not redial, dials=%d", n)
	}
}

func TestConnect_DifferentOrderReplacesChannel(t *testing.T) {
	paths := make(chan string, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	m := NewManager(testConfig(srv), staticToken(""), noopLogger{})
	defer m.Disconnect()

	m.Connect(context.Background(), 7, nil)
	waitFor(t, m.Connected, "first connect")

	m.Connect(context.Background(), 8, nil)
	waitFor(t, m.Connected, "second connect")

	if p := <-paths; p != "/ws/orders/7/" {
		t.Fatalf("first dial to wrong path %q", p)
	}
	if p := <-paths; p != "/ws/orders/8/" {
		t.Fatalf("second dial to wrong path %q", p)
	}
}

func TestDisconnect_NormalClosure_NoReconnect(t *testing.T) {
	var dials int64
	closeCodes := make(chan int, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&dials, 1)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.SetCloseHandler(func(code int, _ string) error {
			closeCodes <- code
			return nil
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	m := NewManager(testConfig(srv), staticToken(""), noopLogger{})

	m.Connect(context.Background(), 7, nil)
	waitFor(t, m.Connected, "connect")

	m.Disconnect()

	select {
	case code := <-closeCodes:
		if code != websocket.CloseNormalClosure {
			t.Fatalf("disconnect must close with 1000, got %d", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("close frame not received")
	}

	// Ждём дольше паузы переподключения: новых попыток быть не должно.
	time.Sleep(100 * time.Millisecond)
	if n := atomic.LoadInt64(&dials); n != 1 {
		t.Fatalf("normal closure must not trigger reconnect, dials=%d", n)
	}
	if m.Connected() {
		t.Fatalf("channel must report disconnected")
	}
}

func TestServerNormalClosure_NoReconnect(t *testing.T) {
	var dials int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&dials, 1)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "order closed"))
	}))
	defer srv.Close()

	m := NewManager(testConfig(srv), staticToken(""), noopLogger{})
	defer m.Disconnect()

	m.Connect(context.Background(), 7, nil)

	time.Sleep(200 * time.Millisecond)
	if n := atomic.LoadInt64(&dials); n != 1 {
		t.Fatalf("server-side 1000 must not trigger reconnect, dials=%d", n)
	}
}

func TestAbnormalClose_Reconnects(t *testing.T) {
	var dials int64
	updates := make(chan *domain.Order, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(&dials, 1)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		if n == 1 {
			// Обрыв без кадра закрытия.
			conn.Close()
			return
		}

		defer conn.Close()
		conn.WriteMessage(websocket.TextMessage,
			[]byte(`{"type": "order_update", "order": {"id": 7, "code": "AB12CD"}}`))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	m := NewManager(testConfig(srv), staticToken(""), noopLogger{})
	defer m.Disconnect()

	m.Connect(context.Background(), 7, func(_ context.Context, o *domain.Order) {
		select {
		case updates <- o:
		default:
		}
	})

	select {
	case <-updates:
	case <-time.After(3 * time.Second):
		t.Fatalf("update after reconnect not delivered")
	}

	if n := atomic.LoadInt64(&dials); n < 2 {
		t.Fatalf("abnormal close must trigger reconnect, dials=%d", n)
	}
}

func TestReconnectBudget_Exhausted(t *testing.T) {
	var dials int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&dials, 1)
		http.Error(w, "no upgrade", http.StatusBadRequest)
	}))
	defer srv.Close()

	cfg := testConfig(srv)
	cfg.MaxReconnects = 2

	m := NewManager(cfg, staticToken(""), noopLogger{})
	defer m.Disconnect()

	m.Connect(context.Background(), 7, nil)

	// Первая попытка плюс две по бюджету.
	waitFor(t, func() bool { return atomic.LoadInt64(&dials) == 3 }, "3 dial attempts")

	time.Sleep(100 * time.Millisecond)
	if n := atomic.LoadInt64(&dials); n != 3 {
		t.Fatalf("budget exhausted, no further dials expected, got %d", n)
	}
	if m.Connected() {
		t.Fatalf("channel must stay closed after exhausting the budget")
	}
}

func TestHeartbeat_SendsPing(t *testing.T) {
	pings := make(chan struct{}, 4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if strings.Contains(string(data), `"ping"`) {
				conn.WriteMessage(websocket.TextMessage, []byte(`{"type": "pong"}`))
				select {
				case pings <- struct{}{}:
				default:
				}
			}
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv)
	cfg.HeartbeatInterval = 20 * time.Millisecond

	m := NewManager(cfg, staticToken(""), noopLogger{})
	defer m.Disconnect()

	m.Connect(context.Background(), 7, nil)

	select {
	case <-pings:
	case <-time.After(2 * time.Second):
		t.Fatalf("heartbeat ping not received")
	}
}
