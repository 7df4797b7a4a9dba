package ws

import (
	"context"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"grouporder/internal/auth"
	"grouporder/internal/ports"
	"grouporder/pkg/ctxmeta"
	"grouporder/pkg/metrics"
)

var _ ports.LiveChannel = (*Manager)(nil)

// Config — параметры live-канала.
type Config struct {
	BaseURL           string        // ws://host, без пути
	HeartbeatInterval time.Duration // период исходящих ping
	ReconnectDelay    time.Duration // фиксированная пауза между попытками
	MaxReconnects     int           // бюджет переподключений на сессию
	HandshakeTimeout  time.Duration
}

// Manager — live-канал заказа поверх gorilla/websocket.
// Одновременно открыт максимум один канал; Connect с другим id
// штатно закрывает прежний. Сетевые сбои внутри бюджета попыток
// гасятся переподключением с фиксированной паузой.
type Manager struct {
	cfg    Config
	tokens auth.TokenSource
	log    ports.Logger
	dialer *websocket.Dialer

	mu        sync.Mutex
	sess      *session
	conn      *websocket.Conn
	connected bool

	writeMu sync.Mutex
}

// session — одно логическое подключение к заказу. Живёт от Connect
// до Disconnect/Connect с другим id и переживает переподключения.
type session struct {
	orderID int64
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewManager(cfg Config, tokens auth.TokenSource, log ports.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		tokens: tokens,
		log:    log,
		dialer: &websocket.Dialer{HandshakeTimeout: cfg.HandshakeTimeout},
	}
}

// Connect — открывает канал для заказа. Повторный вызов с тем же id — no-op.
func (m *Manager) Connect(ctx context.Context, orderID int64, onUpdate ports.UpdateHandler) {
	m.mu.Lock()
	if m.sess != nil && m.sess.orderID == orderID {
		select {
		case <-m.sess.done:
			// Сессия уже завершилась (исчерпан бюджет) — открываем заново.
		default:
			m.mu.Unlock()
			return
		}
	}
	old := m.sess
	m.mu.Unlock()

	if old != nil {
		m.stopSession(old)
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sess := &session{
		orderID: orderID,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	m.mu.Lock()
	m.sess = sess
	m.mu.Unlock()

	go m.run(runCtx, sess, onUpdate)
}

// Disconnect — штатное закрытие текущего канала; без открытого канала no-op.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	sess := m.sess
	m.sess = nil
	m.mu.Unlock()

	if sess != nil {
		m.stopSession(sess)
	}
}

// Connected — открыт ли канал сейчас.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected
}

// stopSession — отправляет кадр закрытия (код 1000), отменяет контекст
// сессии и дожидается выхода цикла.
func (m *Manager) stopSession(sess *session) {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()

	if conn != nil {
		m.writeMu.Lock()
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		m.writeMu.Unlock()
	}

	sess.cancel()
	if conn != nil {
		_ = conn.Close()
	}
	<-sess.done
}

// run — цикл жизни сессии: подключение, чтение, переподключение.
// Счётчик попыток сбрасывается при каждом успешном открытии.
func (m *Manager) run(ctx context.Context, sess *session, onUpdate ports.UpdateHandler) {
	defer close(sess.done)

	attempts := 0
	for {
		conn, err := m.dial(ctx, sess.orderID)
		if err != nil {
			m.log.Warnf(ctx, "ws: подключение не удалось order_id=%d err=%v", sess.orderID, err)
			if !m.scheduleReconnect(ctx, &attempts) {
				return
			}
			continue
		}

		attempts = 0
		m.setConn(conn)
		m.log.Infof(ctx, "ws: канал открыт order_id=%d", sess.orderID)

		normal := m.readLoop(ctx, conn, onUpdate)
		m.clearConn(conn)

		if normal || ctx.Err() != nil {
			m.log.Infof(ctx, "ws: канал закрыт штатно order_id=%d", sess.orderID)
			return
		}
		if !m.scheduleReconnect(ctx, &attempts) {
			return
		}
	}
}

// dial — рукопожатие по адресу /ws/orders/{id}/ с токеном в query.
func (m *Manager) dial(ctx context.Context, orderID int64) (*websocket.Conn, error) {
	u, err := url.Parse(m.cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	u.Path = "/ws/orders/" + strconv.FormatInt(orderID, 10) + "/"
	if token := m.tokens.Token(); token != "" {
		q := u.Query()
		q.Set("token", token)
		u.RawQuery = q.Encode()
	}

	conn, resp, err := m.dialer.DialContext(ctx, u.String(), nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	return conn, err
}

// readLoop — читает кадры до ошибки; true, если закрытие штатное (1000).
// На время чтения живёт heartbeat этого подключения.
func (m *Manager) readLoop(ctx context.Context, conn *websocket.Conn, onUpdate ports.UpdateHandler) bool {
	stop := make(chan struct{})
	go m.heartbeat(ctx, conn, stop)
	defer close(stop)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return websocket.IsCloseError(err, websocket.CloseNormalClosure)
		}
		m.dispatch(ctx, data, onUpdate)
	}
}

// dispatch — декодирование и доставка одного кадра.
// Кривой кадр отбрасывается, канал продолжает жить.
func (m *Manager) dispatch(ctx context.Context, data []byte, onUpdate ports.UpdateHandler) {
	kind, order, err := decodeMessage(data)
	if err != nil {
		metrics.WSDecodeFailures.Inc()
		m.log.Warnf(ctx, "ws: кадр отброшен err=%v", err)
		return
	}

	metrics.WSMessages.WithLabelValues(kind).Inc()

	if kind == messageOrderUpdate && onUpdate != nil {
		onUpdate(ctxmeta.WithOrderCode(ctx, order.Code), order)
	}
}

// heartbeat — периодический {"type":"ping"}; останавливается вместе
// с подключением, которому принадлежит.
func (m *Manager) heartbeat(ctx context.Context, conn *websocket.Conn, stop <-chan struct{}) {
	if m.cfg.HeartbeatInterval <= 0 {
		return
	}

	ticker := time.NewTicker(m.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.writeMu.Lock()
			err := conn.WriteJSON(pingMessage{Type: "ping"})
			m.writeMu.Unlock()
			if err != nil {
				// Цикл чтения увидит ту же ошибку и решит судьбу канала.
				m.log.Warnf(ctx, "ws: ping не отправлен err=%v", err)
				return
			}
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// scheduleReconnect — фиксированная пауза перед следующей попыткой.
// false, когда бюджет исчерпан или сессия отменена.
func (m *Manager) scheduleReconnect(ctx context.Context, attempts *int) bool {
	if ctx.Err() != nil {
		return false
	}

	*attempts++
	if *attempts > m.cfg.MaxReconnects {
		m.log.Errorf(ctx, "ws: бюджет переподключений исчерпан (%d), канал остаётся закрытым", m.cfg.MaxReconnects)
		return false
	}

	metrics.WSReconnects.Inc()
	m.log.Infof(ctx, "ws: переподключение %d/%d через %s", *attempts, m.cfg.MaxReconnects, m.cfg.ReconnectDelay)

	select {
	case <-time.After(m.cfg.ReconnectDelay):
		return true
	case <-ctx.Done():
		return false
	}
}

func (m *Manager) setConn(conn *websocket.Conn) {
	m.mu.Lock()
	m.conn = conn
	m.connected = true
	m.mu.Unlock()
	metrics.WSConnected.Set(1)
}

func (m *Manager) clearConn(conn *websocket.Conn) {
	_ = conn.Close()

	m.mu.Lock()
	if m.conn == conn {
		m.conn = nil
	}
	m.connected = false
	m.mu.Unlock()
	metrics.WSConnected.Set(0)
}
