package order

import "time"

const placeholder = "N/A"

// Notification is the semantic content handed to every dispatch channel.
type Notification struct {
	ProductOrderID string
	OrderID        string
	OrderDate      time.Time
	OrdererName    string
	OrdererTel     string
	ProductName    string
	ProductOption  string
	Quantity       int
}

func NewNotification(d Detail) Notification {
	return Notification{
		ProductOrderID: d.ProductOrderID,
		OrderID:        d.OrderID,
		OrderDate:      d.OrderDate,
		OrdererName:    orPlaceholder(d.OrdererName),
		OrdererTel:     orPlaceholder(d.OrdererTel),
		ProductName:    orPlaceholder(d.ProductName),
		ProductOption:  orPlaceholder(d.ProductOption),
		Quantity:       d.Quantity,
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
