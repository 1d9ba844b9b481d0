package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: credentials and endpoints that differ per store / environment
// - default: values common across environments (intervals, timeouts, formats)
// - optional channels (Slack, SMS, AlimTalk, Postgres) are disabled when left empty
// -----------------------------------------------------------------------------

type Config struct {
	Commerce  CommerceConfig
	Poller    PollerConfig
	HTTP      HTTPConfig
	Slack     SlackConfig
	Ledger    LedgerConfig
	SENS      SENSConfig
	SMS       SMSConfig
	AlimTalk  AlimTalkConfig
	Ops       OpsConfig
	CORS      CORSConfig
	Log       LogConfig
	Telemetry TelemetryConfig
}

type CommerceConfig struct {
	ClientID      string        `envconfig:"COMMERCE_CLIENT_ID" required:"true"`
	ClientSecret  string        `envconfig:"COMMERCE_CLIENT_SECRET" required:"true"`
	BaseURL       string        `envconfig:"COMMERCE_BASE_URL" default:"https://api.commerce.naver.com"`
	SignatureSkew time.Duration `envconfig:"COMMERCE_SIGNATURE_SKEW" default:"290s"`
	RefreshMargin time.Duration `envconfig:"COMMERCE_TOKEN_REFRESH_MARGIN" default:"30m"`
	Lookback      time.Duration `envconfig:"COMMERCE_ORDER_LOOKBACK" default:"24h"`
	MaxRetries    int           `envconfig:"COMMERCE_MAX_RETRIES" default:"3"`
	RetryDelay    time.Duration `envconfig:"COMMERCE_RETRY_DELAY" default:"1s"`
	MaxPages      int           `envconfig:"COMMERCE_MAX_PAGES" default:"10"`
}

type PollerConfig struct {
	Interval time.Duration `envconfig:"POLL_INTERVAL" default:"10s"`
}

type HTTPConfig struct {
	Timeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

type SlackConfig struct {
	OrderWebhookURL string        `envconfig:"SLACK_ORDER_WEBHOOK_URL"`
	LogWebhookURL   string        `envconfig:"SLACK_LOG_WEBHOOK_URL"`
	BreakerFailures uint32        `envconfig:"SLACK_BREAKER_FAILURES" default:"3"`
	BreakerTimeout  time.Duration `envconfig:"SLACK_BREAKER_TIMEOUT" default:"30s"`
}

type LedgerConfig struct {
	CSVPath     string `envconfig:"LEDGER_CSV_PATH" default:"order.csv"`
	DatabaseURL string `envconfig:"LEDGER_DATABASE_URL"`
	SeedSeen    bool   `envconfig:"LEDGER_SEED_SEEN" default:"true"`
	TimeZone    string `envconfig:"LEDGER_TIMEZONE" default:"Asia/Seoul"`
	// seconds east of UTC, 9*60*60
	TimeZoneOffset int `envconfig:"LEDGER_TIMEZONE_OFFSET" default:"32400"`
}

// SENSConfig holds the NCP API gateway credentials shared by SMS and AlimTalk.
type SENSConfig struct {
	AccessKey     string        `envconfig:"SENS_ACCESS_KEY"`
	SecretKey     string        `envconfig:"SENS_SECRET_KEY"`
	BaseURL       string        `envconfig:"SENS_BASE_URL" default:"https://sens.apigw.ntruss.com"`
	TimestampSkew time.Duration `envconfig:"SENS_TIMESTAMP_SKEW" default:"290s"`
}

type SMSConfig struct {
	ServiceID string   `envconfig:"SMS_SERVICE_ID"`
	From      string   `envconfig:"SMS_FROM"`
	To        []string `envconfig:"SMS_TO"`
}

type AlimTalkConfig struct {
	ServiceID    string `envconfig:"ALIMTALK_SERVICE_ID"`
	PlusFriendID string `envconfig:"ALIMTALK_PLUS_FRIEND_ID"`
	TemplateCode string `envconfig:"ALIMTALK_TEMPLATE_CODE"`
	// text/template rendered with the order notification
	Content     string `envconfig:"ALIMTALK_CONTENT" default:"안녕하세요, {{.OrdererName}}님!\n\n{{.ProductName}} 구매해주셔서 감사합니다."`
	ButtonName  string `envconfig:"ALIMTALK_BUTTON_NAME"`
	ButtonURL   string `envconfig:"ALIMTALK_BUTTON_URL"`
	ButtonPCURL string `envconfig:"ALIMTALK_BUTTON_PC_URL"`
}

type OpsConfig struct {
	Port    string `envconfig:"OPS_PORT" default:"8080"`
	Enabled bool   `envconfig:"OPS_ENABLED" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Seoul"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type TelemetryConfig struct {
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"order-notifier"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Insecure     bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}

func (c SlackConfig) OrderEnabled() bool { return c.OrderWebhookURL != "" }

func (c SlackConfig) LogEnabled() bool { return c.LogWebhookURL != "" }

func (c SMSConfig) Enabled() bool { return c.ServiceID != "" && len(c.To) > 0 }

func (c AlimTalkConfig) Enabled() bool { return c.ServiceID != "" && c.TemplateCode != "" }

func (c LedgerConfig) Location() *time.Location {
	return time.FixedZone(c.TimeZone, c.TimeZoneOffset)
}

func (c Config) Validate() error {
	if c.Commerce.MaxRetries < 0 {
		return fmt.Errorf("COMMERCE_MAX_RETRIES must not be negative: %d", c.Commerce.MaxRetries)
	}
	if c.Commerce.MaxPages < 1 {
		return fmt.Errorf("COMMERCE_MAX_PAGES must be at least 1: %d", c.Commerce.MaxPages)
	}
	if c.Poller.Interval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive: %s", c.Poller.Interval)
	}
	if c.Commerce.RefreshMargin < 0 {
		return fmt.Errorf("COMMERCE_TOKEN_REFRESH_MARGIN must not be negative: %s", c.Commerce.RefreshMargin)
	}
	if c.Commerce.Lookback <= 0 {
		return fmt.Errorf("COMMERCE_ORDER_LOOKBACK must be positive: %s", c.Commerce.Lookback)
	}
	if c.Ops.Enabled && len(c.CORS.AllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must list at least one origin when OPS_ENABLED is set")
	}
	if (c.SMS.Enabled() || c.AlimTalk.Enabled()) && (c.SENS.AccessKey == "" || c.SENS.SecretKey == "") {
		return fmt.Errorf("SENS_ACCESS_KEY and SENS_SECRET_KEY are required when SMS or AlimTalk is enabled")
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Commerce: CommerceConfig{
			ClientID:      "test-client",
			ClientSecret:  "$2a$04$abcdefghijklmnopqrstuv",
			BaseURL:       "http://127.0.0.1:0",
			SignatureSkew: 290 * time.Second,
			RefreshMargin: 30 * time.Minute,
			Lookback:      24 * time.Hour,
			MaxRetries:    3,
			RetryDelay:    0, // no sleeping between attempts in tests
			MaxPages:      10,
		},
		Poller: PollerConfig{
			Interval: 10 * time.Millisecond,
		},
		HTTP: HTTPConfig{
			Timeout: 2 * time.Second,
		},
		Slack: SlackConfig{
			BreakerFailures: 3,
			BreakerTimeout:  time.Second,
		},
		Ledger: LedgerConfig{
			SeedSeen:       true,
			TimeZone:       "Asia/Seoul",
			TimeZoneOffset: 32400,
		},
		SENS: SENSConfig{
			BaseURL:       "http://127.0.0.1:0",
			TimestampSkew: 290 * time.Second,
		},
		Ops: OpsConfig{
			Port:    "8889", // Test port
			Enabled: true,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Seoul",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "order-notifier-test",
		},
	}
}
