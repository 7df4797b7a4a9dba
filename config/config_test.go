package config_test

import (
	"testing"
	"time"

	cfg "grouporder/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("GO_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// API
	if c.API.BaseURL != "http://localhost:8000/api" {
		t.Fatalf("API.BaseURL: want default, got %q", c.API.BaseURL)
	}
	if c.API.RequestTimeout != 10*time.Second {
		t.Fatalf("API.RequestTimeout: want 10s, got %v", c.API.RequestTimeout)
	}

	// WS
	if c.WS.BaseURL != "" {
		t.Fatalf("WS.BaseURL: want empty default, got %q", c.WS.BaseURL)
	}
	if c.WS.HeartbeatInterval != 30*time.Second {
		t.Fatalf("WS.HeartbeatInterval: want 30s, got %v", c.WS.HeartbeatInterval)
	}
	if c.WS.ReconnectDelay != 3*time.Second || c.WS.MaxReconnects != 5 {
		t.Fatalf("WS reconnect defaults wrong: %+v", c.WS)
	}
	if c.WS.HandshakeTimeout != 10*time.Second {
		t.Fatalf("WS.HandshakeTimeout: want 10s, got %v", c.WS.HandshakeTimeout)
	}

	// Metrics
	if c.Metrics.Addr != ":2112" {
		t.Fatalf("Metrics.Addr: want :2112, got %q", c.Metrics.Addr)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "grouporder-sync" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Auth / Logger
	if c.Auth.Token != "" {
		t.Fatalf("Auth.Token: want empty default, got %q", c.Auth.Token)
	}
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "GO_TEST_OVR"

	t.Setenv(p+"_API_BASE_URL", "https://orders.example.com/api")
	t.Setenv(p+"_API_REQUEST_TIMEOUT", "2s")

	t.Setenv(p+"_WS_BASE_URL", "wss://orders.example.com")
	t.Setenv(p+"_WS_HEARTBEAT_INTERVAL", "15s")
	t.Setenv(p+"_WS_RECONNECT_DELAY", "500ms")
	t.Setenv(p+"_WS_MAX_RECONNECTS", "3")
	t.Setenv(p+"_WS_HANDSHAKE_TIMEOUT", "4s")

	t.Setenv(p+"_AUTH_TOKEN", "token-123")
	t.Setenv(p+"_METRICS_ADDR", ":9998")
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.API.BaseURL != "https://orders.example.com/api" || c.API.RequestTimeout != 2*time.Second {
		t.Fatalf("API overrides wrong: %+v", c.API)
	}
	if c.WS.BaseURL != "wss://orders.example.com" || c.WS.HeartbeatInterval != 15*time.Second {
		t.Fatalf("WS overrides wrong: %+v", c.WS)
	}
	if c.WS.ReconnectDelay != 500*time.Millisecond || c.WS.MaxReconnects != 3 || c.WS.HandshakeTimeout != 4*time.Second {
		t.Fatalf("WS reconnect overrides wrong: %+v", c.WS)
	}
	if c.Auth.Token != "token-123" {
		t.Fatalf("Auth.Token override wrong: %q", c.Auth.Token)
	}
	if c.Metrics.Addr != ":9998" || !c.Logger.IsProd {
		t.Fatalf("Metrics/Logger overrides wrong: %+v %+v", c.Metrics, c.Logger)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "GO_TEST_BAD"
	t.Setenv(p+"_WS_RECONNECT_DELAY", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
