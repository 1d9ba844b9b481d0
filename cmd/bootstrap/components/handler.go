package components

import (
	"order-notifier/internal/handler"
	"order-notifier/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewStatusHandler,
	),
	fx.Invoke(handler.NewRouter),
)
