package token

import (
	"errors"
	"time"
)

var (
	ErrEmptyAccessToken = errors.New("access token is empty")
	ErrNegativeMargin   = errors.New("refresh margin cannot be negative")
)

const (
	// Used when the token endpoint omits expires_in.
	DefaultExpiresIn     = 10800 * time.Second
	DefaultRefreshMargin = 30 * time.Minute
)

type State string

const (
	StateUninitialized State = "UNINITIALIZED"
	StateValid         State = "VALID"
	StateRefreshing    State = "REFRESHING"
	StateRefreshFailed State = "REFRESH_FAILED"
)

func (s State) String() string {
	return string(s)
}

// Token is replaced wholesale on refresh and never mutated.
type Token struct {
	accessToken   string
	issuedAt      time.Time
	expiresIn     time.Duration
	refreshMargin time.Duration
}

func NewToken(accessToken string, issuedAt time.Time, expiresIn, refreshMargin time.Duration) (Token, error) {
	if accessToken == "" {
		return Token{}, ErrEmptyAccessToken
	}
	if refreshMargin < 0 {
		return Token{}, ErrNegativeMargin
	}
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}

	return Token{
		accessToken:   accessToken,
		issuedAt:      issuedAt,
		expiresIn:     expiresIn,
		refreshMargin: refreshMargin,
	}, nil
}

func (t Token) AccessToken() string {
	return t.accessToken
}

func (t Token) IssuedAt() time.Time {
	return t.issuedAt
}

func (t Token) ExpiresIn() time.Duration {
	return t.expiresIn
}

func (t Token) RefreshMargin() time.Duration {
	return t.refreshMargin
}

func (t Token) ValidUntil() time.Time {
	return t.issuedAt.Add(t.expiresIn)
}

// UsableAt reports now < ValidUntil - RefreshMargin.
func (t Token) UsableAt(now time.Time) bool {
	if t.IsZero() {
		return false
	}
	return now.Before(t.ValidUntil().Add(-t.refreshMargin))
}

func (t Token) IsZero() bool {
	return t.accessToken == ""
}
