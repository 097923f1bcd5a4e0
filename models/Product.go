package models

import "github.com/shopspring/decimal"

// Product is a catalogue entry returned by the upstream products API.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}
