//go:build unit

package config_test

import (
	"os"
	"testing"
	"time"

	"order-notifier/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("COMMERCE_CLIENT_ID", "client")
	t.Setenv("COMMERCE_CLIENT_SECRET", "$2a$04$abcdefghijklmnopqrstuv")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "https://api.commerce.naver.com", cfg.Commerce.BaseURL)
		assert.Equal(t, 290*time.Second, cfg.Commerce.SignatureSkew)
		assert.Equal(t, 30*time.Minute, cfg.Commerce.RefreshMargin)
		assert.Equal(t, 24*time.Hour, cfg.Commerce.Lookback)
		assert.Equal(t, 3, cfg.Commerce.MaxRetries)
		assert.Equal(t, 10*time.Second, cfg.Poller.Interval)
		assert.Equal(t, 15*time.Second, cfg.HTTP.Timeout)
		assert.Equal(t, "order.csv", cfg.Ledger.CSVPath)
		assert.True(t, cfg.Ledger.SeedSeen)
		assert.False(t, cfg.Slack.OrderEnabled())
		assert.False(t, cfg.SMS.Enabled())
		assert.False(t, cfg.AlimTalk.Enabled())
	})

	t.Run("missing client id", func(t *testing.T) {
		setRequired(t)
		// Setenv first so the original value is restored afterwards
		require.NoError(t, os.Unsetenv("COMMERCE_CLIENT_ID"))

		_, err := config.LoadConfig()
		require.Error(t, err)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("POLL_INTERVAL", "30s")
		t.Setenv("SMS_SERVICE_ID", "ncp:sms:kr:1:svc")
		t.Setenv("SMS_TO", "01011112222,01033334444")
		t.Setenv("SENS_ACCESS_KEY", "ak")
		t.Setenv("SENS_SECRET_KEY", "sk")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Poller.Interval)
		assert.Equal(t, []string{"01011112222", "01033334444"}, cfg.SMS.To)
		assert.True(t, cfg.SMS.Enabled())
	})

	t.Run("empty CORS origins fail at startup", func(t *testing.T) {
		setRequired(t)
		t.Setenv("CORS_ALLOW_ORIGINS", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CORS_ALLOW_ORIGINS")
	})

	t.Run("SMS without SENS keys", func(t *testing.T) {
		setRequired(t)
		t.Setenv("SMS_SERVICE_ID", "ncp:sms:kr:1:svc")
		t.Setenv("SMS_TO", "01011112222")
		t.Setenv("SENS_ACCESS_KEY", "")
		t.Setenv("SENS_SECRET_KEY", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SENS_ACCESS_KEY")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "test config is valid", mutate: func(*config.Config) {}},
		{
			name:    "negative retries",
			mutate:  func(c *config.Config) { c.Commerce.MaxRetries = -1 },
			wantErr: "COMMERCE_MAX_RETRIES",
		},
		{
			name:    "zero pages",
			mutate:  func(c *config.Config) { c.Commerce.MaxPages = 0 },
			wantErr: "COMMERCE_MAX_PAGES",
		},
		{
			name:    "zero interval",
			mutate:  func(c *config.Config) { c.Poller.Interval = 0 },
			wantErr: "POLL_INTERVAL",
		},
		{
			name:    "zero lookback",
			mutate:  func(c *config.Config) { c.Commerce.Lookback = 0 },
			wantErr: "COMMERCE_ORDER_LOOKBACK",
		},
		{
			name:    "negative refresh margin",
			mutate:  func(c *config.Config) { c.Commerce.RefreshMargin = -time.Minute },
			wantErr: "COMMERCE_TOKEN_REFRESH_MARGIN",
		},
		{
			name:    "ops server without CORS origins",
			mutate:  func(c *config.Config) { c.CORS.AllowOrigins = nil },
			wantErr: "CORS_ALLOW_ORIGINS",
		},
		{
			name: "no CORS origins with ops server disabled",
			mutate: func(c *config.Config) {
				c.Ops.Enabled = false
				c.CORS.AllowOrigins = nil
			},
		},
		{
			name: "alimtalk without SENS keys",
			mutate: func(c *config.Config) {
				c.AlimTalk.ServiceID = "ncp:kkobizmsg:kr:1:svc"
				c.AlimTalk.TemplateCode = "order01"
			},
			wantErr: "SENS_ACCESS_KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
