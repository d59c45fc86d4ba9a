package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the customer part of a booking.
type Customer struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// OrderLineItem is one resolved selection.
type OrderLineItem struct {
	OfferingID string          `json:"offeringId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Category   Category        `json:"category"`
}

// OrderSummary is the read-only view of a selection resolved against a catalog.
type OrderSummary struct {
	Customer  Customer        `json:"customer"`
	LineItems []OrderLineItem `json:"lineItems"`
	Total     decimal.Decimal `json:"total"`
}

// BookingPayload is what the booking-write service receives.
type BookingPayload struct {
	Customer  Customer        `json:"customer"`
	LineItems []OrderLineItem `json:"lineItems"`
	Total     decimal.Decimal `json:"total"`
}

// Payload converts the summary into its wire shape.
func (s OrderSummary) Payload() BookingPayload {
	items := make([]OrderLineItem, len(s.LineItems))
	copy(items, s.LineItems)
	return BookingPayload{
		Customer:  s.Customer,
		LineItems: items,
		Total:     s.Total,
	}
}

// BookingReceipt acknowledges an accepted booking.
type BookingReceipt struct {
	BookingID  string    `json:"bookingId"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"receivedAt"`
}
