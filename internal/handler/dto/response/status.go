package response

import (
	"time"

	"order-notifier/internal/pkg/errs"
	"order-notifier/internal/usecase"

	"github.com/jinzhu/copier"
)

type TokenStatus struct {
	State         string    `json:"state"`
	Usable        bool      `json:"usable"`
	IssuedAt      time.Time `json:"issued_at,omitzero"`
	ValidUntil    time.Time `json:"valid_until,omitzero"`
	LastRefreshAt time.Time `json:"last_refresh_at,omitzero"`
	LastError     string    `json:"last_error,omitempty"`
	Refreshes     int       `json:"refreshes"`
	Failures      int       `json:"failures"`
}

type TickStatus struct {
	TickID     string    `json:"tick_id"`
	StartedAt  time.Time `json:"started_at"`
	DurationMs int64     `json:"duration_ms"`
	Listed     int       `json:"listed"`
	NewIDs     []string  `json:"new_ids"`
	Fetched    int       `json:"fetched"`
	Dispatched int       `json:"dispatched"`
	Failed     []string  `json:"failed,omitempty"`
	Missing    []string  `json:"missing,omitempty"`
	Error      string    `json:"error,omitempty"`
	Panicked   bool      `json:"panicked,omitempty"`
}

type StatusResponse struct {
	Token      TokenStatus `json:"token"`
	LastTick   *TickStatus `json:"last_tick"`
	SeenOrders int         `json:"seen_orders"`
}

func FromTokenSnapshot(s usecase.TokenSnapshot) (TokenStatus, error) {
	var out TokenStatus
	if err := copier.Copy(&out, &s); err != nil {
		return TokenStatus{}, errs.Wrap(err, "map token snapshot")
	}
	out.State = s.State.String()
	return out, nil
}

func FromTickResult(r usecase.TickResult) (*TickStatus, error) {
	out := &TickStatus{}
	if err := copier.Copy(out, &r); err != nil {
		return nil, errs.Wrap(err, "map tick result")
	}
	out.DurationMs = r.Duration.Milliseconds()
	if out.NewIDs == nil {
		out.NewIDs = []string{}
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out, nil
}
