package order

import (
	"slices"
	"time"

	"order-notifier/internal/pkg/errs"
)

type Status string

const (
	StatusPayed Status = "PAYED"
)

// Summary is one entry of the last-changed-statuses list, used for id extraction only.
type Summary struct {
	ProductOrderID    string
	OrderID           string
	LastChangedStatus Status
	LastChangedAt     time.Time
}

type Detail struct {
	ProductOrderID string
	OrderID        string
	OrderDate      time.Time
	OrdererName    string
	OrdererTel     string
	ProductName    string
	ProductOption  string
	Quantity       int
}

// IDs returns the distinct non-empty product order ids in first-seen order.
func IDs(summaries []Summary) []string {
	ids := make([]string, 0, len(summaries))
	seen := make(map[string]struct{}, len(summaries))
	for _, s := range summaries {
		if s.ProductOrderID == "" {
			continue
		}
		if _, ok := seen[s.ProductOrderID]; ok {
			continue
		}
		seen[s.ProductOrderID] = struct{}{}
		ids = append(ids, s.ProductOrderID)
	}
	return ids
}

// SortByOrderDateDesc sorts in place, latest order first. Equal dates keep their input order.
func SortByOrderDateDesc(details []Detail) {
	slices.SortStableFunc(details, func(a, b Detail) int {
		return b.OrderDate.Compare(a.OrderDate)
	})
}

// The commerce API sends "2024-01-01T10:00:00.000+09:00"; some payloads drop the colon in the offset.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
}

func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, errs.Wrapf(lastErr, "parse provider time %q", s)
}
