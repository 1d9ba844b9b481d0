package usecase

//go:generate mockgen -source=token_manager.go -destination=../../tests/mock/usecase/token_manager.go -package=usecasemock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"order-notifier/internal/domain/token"
	"order-notifier/internal/pkg/clock"
	"order-notifier/internal/pkg/config"
	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/pkg/metrics"
)

// TokenProvider owns the commerce API bearer token.
type TokenProvider interface {
	// GetValidToken returns the held token while it is usable and refreshes synchronously otherwise.
	GetValidToken(ctx context.Context) (token.Token, error)
	// Refresh always requests a new token. On failure the previous token is kept.
	Refresh(ctx context.Context) (token.Token, error)
	Snapshot() TokenSnapshot
}

type TokenSnapshot struct {
	State         token.State
	Usable        bool
	IssuedAt      time.Time
	ValidUntil    time.Time
	LastRefreshAt time.Time
	LastError     string
	Refreshes     int
	Failures      int
}

type tokenManagerImpl struct {
	clientID      string
	clientSecret  string
	skew          time.Duration
	refreshMargin time.Duration

	signer   Signer
	issuer   TokenIssuer
	observer RefreshObserver
	clock    clock.Clock
	logger   *slog.Logger
	metrics  *metrics.Metrics

	// serializes refreshes; mu guards the fields below
	refreshMu sync.Mutex

	mu            sync.RWMutex
	current       token.Token
	state         token.State
	lastErr       error
	lastRefreshAt time.Time
	refreshes     int
	failures      int
}

func NewTokenManager(
	cfg config.Config,
	signer Signer,
	issuer TokenIssuer,
	observer RefreshObserver,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) TokenProvider {
	return &tokenManagerImpl{
		clientID:      cfg.Commerce.ClientID,
		clientSecret:  cfg.Commerce.ClientSecret,
		skew:          cfg.Commerce.SignatureSkew,
		refreshMargin: cfg.Commerce.RefreshMargin,
		signer:        signer,
		issuer:        issuer,
		observer:      observer,
		clock:         clk,
		logger:        logger,
		metrics:       m,
		state:         token.StateUninitialized,
	}
}

func (m *tokenManagerImpl) GetValidToken(ctx context.Context) (token.Token, error) {
	if tok, ok := m.usable(); ok {
		return tok, nil
	}

	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	// a concurrent caller may have refreshed while we waited
	if tok, ok := m.usable(); ok {
		return tok, nil
	}
	return m.refreshLocked(ctx)
}

func (m *tokenManagerImpl) Refresh(ctx context.Context) (token.Token, error) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()
	return m.refreshLocked(ctx)
}

func (m *tokenManagerImpl) Snapshot() TokenSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := TokenSnapshot{
		State:         m.state,
		Usable:        m.current.UsableAt(m.clock.Now()),
		LastRefreshAt: m.lastRefreshAt,
		Refreshes:     m.refreshes,
		Failures:      m.failures,
	}
	if !m.current.IsZero() {
		snap.IssuedAt = m.current.IssuedAt()
		snap.ValidUntil = m.current.ValidUntil()
	}
	if m.lastErr != nil {
		snap.LastError = m.lastErr.Error()
	}
	return snap
}

func (m *tokenManagerImpl) usable() (token.Token, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current.UsableAt(m.clock.Now()) {
		return m.current, true
	}
	return token.Token{}, false
}

// refreshLocked must be called with refreshMu held.
func (m *tokenManagerImpl) refreshLocked(ctx context.Context) (token.Token, error) {
	m.mu.Lock()
	m.state = token.StateRefreshing
	m.mu.Unlock()

	now := m.clock.Now()
	timestamp := now.Add(-m.skew).UnixMilli()

	sign, err := m.signer.Sign(m.clientID, m.clientSecret, timestamp)
	if err != nil {
		return m.fail(ctx, now, errs.Mark(errs.Wrap(err, "sign token request"), errs.ErrAuth))
	}

	issued, err := m.issuer.Issue(ctx, TokenRequest{
		ClientID:    m.clientID,
		TimestampMs: timestamp,
		Signature:   sign,
	})
	if err != nil {
		return m.fail(ctx, now, errs.Mark(errs.Wrap(err, "issue token"), errs.ErrAuth))
	}

	tok, err := token.NewToken(issued.AccessToken, now, issued.ExpiresIn, m.refreshMargin)
	if err != nil {
		return m.fail(ctx, now, errs.Mark(errs.Wrap(err, "token response"), errs.ErrAuth))
	}

	m.mu.Lock()
	m.current = tok
	m.state = token.StateValid
	m.lastErr = nil
	m.lastRefreshAt = now
	m.refreshes++
	m.mu.Unlock()

	m.metrics.TokenRefreshesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	m.logger.Info("access token refreshed", slog.Time("valid_until", tok.ValidUntil()))
	m.notify(ctx, RefreshEvent{Success: true, At: now, ValidUntil: tok.ValidUntil()})

	return tok, nil
}

func (m *tokenManagerImpl) fail(ctx context.Context, at time.Time, err error) (token.Token, error) {
	m.mu.Lock()
	m.state = token.StateRefreshFailed
	m.lastErr = err
	m.lastRefreshAt = at
	m.failures++
	m.mu.Unlock()

	m.metrics.TokenRefreshesTotal.WithLabelValues(metrics.ResultFailure).Inc()
	m.logger.Error("access token refresh failed", "error", err)
	m.notify(ctx, RefreshEvent{Success: false, At: at, Err: err})

	return token.Token{}, err
}

func (m *tokenManagerImpl) notify(ctx context.Context, ev RefreshEvent) {
	if m.observer == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("refresh observer panicked", "panic", fmt.Sprint(r))
		}
	}()
	if err := m.observer.OnRefresh(ctx, ev); err != nil {
		m.logger.Warn("refresh observer failed", "error", err, "success", ev.Success)
	}
}
