//go:build unit || integration

package builder

import (
	"time"

	"order-notifier/internal/domain/order"
)

type OrderBuilder struct {
	ProductOrderID string
	OrderID        string
	OrderDate      time.Time
	OrdererName    string
	OrdererTel     string
	ProductName    string
	ProductOption  string
	Quantity       int
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ProductOrderID: "2024010112345",
		OrderID:        "2024010100001",
		OrderDate:      time.Date(2024, 1, 1, 1, 2, 3, 0, time.UTC),
		OrdererName:    "홍길동",
		OrdererTel:     "010-1234-5678",
		ProductName:    "테스트 상품",
		ProductOption:  "옵션1",
		Quantity:       1,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithID(productOrderID string) *OrderBuilder {
	b.ProductOrderID = productOrderID
	return b
}

// Build methods
func (b *OrderBuilder) BuildSummary() order.Summary {
	return order.Summary{
		ProductOrderID:    b.ProductOrderID,
		OrderID:           b.OrderID,
		LastChangedStatus: order.StatusPayed,
		LastChangedAt:     b.OrderDate,
	}
}

func (b *OrderBuilder) BuildDetail() order.Detail {
	return order.Detail{
		ProductOrderID: b.ProductOrderID,
		OrderID:        b.OrderID,
		OrderDate:      b.OrderDate,
		OrdererName:    b.OrdererName,
		OrdererTel:     b.OrdererTel,
		ProductName:    b.ProductName,
		ProductOption:  b.ProductOption,
		Quantity:       b.Quantity,
	}
}

func (b *OrderBuilder) BuildNotification() order.Notification {
	return order.NewNotification(b.BuildDetail())
}
