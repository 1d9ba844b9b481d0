package components

import (
	"order-notifier/internal/infra/commerce"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/signature"
	"order-notifier/internal/usecase"

	"go.uber.org/fx"
)

var CommerceModule = fx.Module("commerce",
	fx.Provide(
		clock.NewRealClock,
		commerce.NewHTTPClient,
		fx.Annotate(
			signature.NewBcryptSigner,
			fx.As(new(usecase.Signer)),
		),
		fx.Annotate(
			commerce.NewTokenEndpoint,
			fx.As(new(usecase.TokenIssuer)),
		),
		usecase.NewTokenManager,
		func(tokens usecase.TokenProvider) commerce.TokenSource {
			return tokens
		},
		fx.Annotate(
			commerce.NewOrderClient,
			fx.As(new(usecase.OrderSource)),
		),
	),
)
