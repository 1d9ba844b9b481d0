package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"
	"time"

	"order-notifier/internal/domain/order"
)

type TokenRequest struct {
	ClientID    string
	TimestampMs int64
	Signature   string
}

type IssuedToken struct {
	AccessToken string
	TokenType   string
	// zero when the endpoint omitted expires_in
	ExpiresIn time.Duration
}

// TokenIssuer performs the token endpoint call.
type TokenIssuer interface {
	Issue(ctx context.Context, req TokenRequest) (IssuedToken, error)
}

type Signer interface {
	Sign(clientID, clientSecret string, timestampMs int64) (string, error)
}

type RefreshEvent struct {
	Success    bool
	At         time.Time
	ValidUntil time.Time
	Err        error
}

// RefreshObserver receives one event per refresh attempt. Its errors never affect the refresh.
type RefreshObserver interface {
	OnRefresh(ctx context.Context, ev RefreshEvent) error
}

type OrderSource interface {
	ListRecentPaidOrders(ctx context.Context, lookback time.Duration) ([]order.Summary, error)
	FetchOrderDetails(ctx context.Context, productOrderIDs []string) ([]order.Detail, error)
}

// SeenOrderStore is the set of product order ids already handed to dispatch.
type SeenOrderStore interface {
	// MarkNew adds ids to the set and returns the ones that were not present, in input order.
	MarkNew(ctx context.Context, ids []string) ([]string, error)
	Len() int
}

type Dispatcher interface {
	Dispatch(ctx context.Context, n order.Notification) error
}

// Reporter forwards operator facing failure messages to the log channel.
type Reporter interface {
	Report(ctx context.Context, msg string) error
}
