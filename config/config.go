package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type API struct {
	BaseURL        string        `default:"http://localhost:8000/api" envconfig:"BASE_URL"`
	RequestTimeout time.Duration `default:"10s" envconfig:"REQUEST_TIMEOUT"`
}

type WS struct {
	// BaseURL — адрес live-канала; пустая строка → выводится из API.BaseURL (http→ws).
	BaseURL           string        `default:"" envconfig:"BASE_URL"`
	HeartbeatInterval time.Duration `default:"30s" envconfig:"HEARTBEAT_INTERVAL"`
	ReconnectDelay    time.Duration `default:"3s" envconfig:"RECONNECT_DELAY"`
	MaxReconnects     int           `default:"5" envconfig:"MAX_RECONNECTS"`
	HandshakeTimeout  time.Duration `default:"10s" envconfig:"HANDSHAKE_TIMEOUT"`
}

type Auth struct {
	Token string `default:"" envconfig:"TOKEN"`
}

type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"grouporder-sync" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Config struct {
	API     API
	WS      WS
	Auth    Auth
	Metrics Metrics
	Logger  Logger
	Tracing Tracing
}

// Load — читает конфигурацию с префиксом GROUPORDER.
func Load() (Config, error) {
	return LoadWithPrefix("GROUPORDER")
}

// LoadWithPrefix — то же, но с произвольным префиксом (удобно для тестов).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
