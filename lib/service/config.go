package service

import (
	"github.com/shopspring/decimal"
)

type Config struct {
	DatabaseUri             string          `envconfig:"DATABASE_URI" required:"true"`
	DatabaseMaxConns        int             `envconfig:"DATABASE_MAX_CONNS" default:"10"`
	DatabaseMaxIdleConns    int             `envconfig:"DATABASE_MAX_IDLE_CONNS" default:"5"`
	DatabaseConnMaxLifetime int             `envconfig:"DATABASE_CONN_MAX_LIFETIME" default:"1800"` // 30 minutes
	SentryDSN               string          `envconfig:"SENTRY_DSN"`
	SentryTracesSampleRate  float64         `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	DatadogAgentUrl         string          `envconfig:"DATADOG_AGENT_URL"`
	LogFilePath             string          `envconfig:"LOG_FILE_PATH"`
	CustomName              string          `envconfig:"CUSTOM_NAME"`
	Host                    string          `envconfig:"HOST" default:"localhost:3000"`
	Port                    int             `envconfig:"PORT" default:"3000"`
	DefaultRateLimit        int             `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit         int             `envconfig:"STRICT_RATE_LIMIT" default:"10"`
	BurstRateLimit          int             `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus        bool            `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort          int             `envconfig:"PROMETHEUS_PORT" default:"9092"`
	DefaultPageLimit        int             `envconfig:"DEFAULT_PAGE_LIMIT" default:"10"`
	MaxPageLimit            int             `envconfig:"MAX_PAGE_LIMIT" default:"100"` // server-side cap on ?limit=
	DefaultTaxRate          decimal.Decimal `envconfig:"DEFAULT_TAX_RATE" default:"0.10"`
	DefaultCurrency         string          `envconfig:"DEFAULT_CURRENCY" default:"JPY"`
}
