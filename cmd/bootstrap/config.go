package bootstrap

import (
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/pkg/signature"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(ValidateCredentials),
)

// ValidateCredentials rejects a client secret that can never produce a signature.
func ValidateCredentials(cfg config.Config) error {
	if err := signature.ValidateSecret(cfg.Commerce.ClientSecret); err != nil {
		return errs.Wrap(err, "COMMERCE_CLIENT_SECRET")
	}
	return nil
}
