package bootstrap

import (
	"order-notifier/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is enough to hold a commerce API token.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	TelemetryModule,
	components.LogChannelModule,
	components.CommerceModule,
)

// Module wires everything the poller needs. The ops HTTP server is added by the run command.
var Module = fx.Options(
	CoreModule,
	DBModule,
	components.LedgerModule,
	components.NotifyModule,
	components.UseCaseModule,
)
