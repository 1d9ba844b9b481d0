//go:build unit

package order_test

import (
	"testing"
	"time"

	"order-notifier/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDs(t *testing.T) {
	summaries := []order.Summary{
		{ProductOrderID: "B"},
		{ProductOrderID: "A"},
		{ProductOrderID: ""},
		{ProductOrderID: "B"},
		{ProductOrderID: "C"},
	}

	if diff := cmp.Diff([]string{"B", "A", "C"}, order.IDs(summaries)); diff != "" {
		t.Errorf("IDs mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, order.IDs(nil))
}

func TestSortByOrderDateDesc(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	earlier := time.Date(2024, 1, 1, 10, 0, 0, 0, kst)
	later := time.Date(2024, 1, 2, 10, 0, 0, 0, kst)

	details := []order.Detail{
		{ProductOrderID: "early", OrderDate: earlier},
		{ProductOrderID: "late", OrderDate: later},
		{ProductOrderID: "early-2", OrderDate: earlier},
	}
	order.SortByOrderDateDesc(details)

	got := make([]string, 0, len(details))
	for _, d := range details {
		got = append(got, d.ProductOrderID)
	}
	if diff := cmp.Diff([]string{"late", "early", "early-2"}, got); diff != "" {
		t.Errorf("sort mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTime(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339 with offset", in: "2024-01-01T10:00:00+09:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, kst)},
		{name: "milliseconds", in: "2024-01-01T10:00:00.123+09:00", want: time.Date(2024, 1, 1, 10, 0, 0, 123_000_000, kst)},
		{name: "offset without colon", in: "2024-01-01T10:00:00.123+0900", want: time.Date(2024, 1, 1, 10, 0, 0, 123_000_000, kst)},
		{name: "empty", in: ""},
		{name: "garbage", in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseTime(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestNewNotification(t *testing.T) {
	date := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	got := order.NewNotification(order.Detail{
		ProductOrderID: "P1",
		OrderID:        "O1",
		OrderDate:      date,
		OrdererName:    "홍길동",
		ProductName:    "테스트 상품",
		Quantity:       2,
	})

	want := order.Notification{
		ProductOrderID: "P1",
		OrderID:        "O1",
		OrderDate:      date,
		OrdererName:    "홍길동",
		OrdererTel:     "N/A",
		ProductName:    "테스트 상품",
		ProductOption:  "N/A",
		Quantity:       2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewNotification mismatch (-want +got):\n%s", diff)
	}
}
