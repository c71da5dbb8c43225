package model

import "hotelier/shared/model"

const (
	BillTableName  = "bills"
	BillEntityName = "bill"

	ItemTableName  = "bill_items"
	ItemEntityName = "bill_item"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldSubtotal    = "subtotal"
	FieldTaxRate     = "tax_rate"
	FieldTaxAmount   = "tax_amount"
	FieldTotal       = "total"
	FieldIsPaid      = "is_paid"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldQuantity    = "quantity"
	FieldCategory    = "category"
)

const (
	CategoryRoom    = "room"
	CategoryService = "service"
	CategoryFood    = "food"
	CategoryAmenity = "amenity"
	CategoryOther   = "other"
)

// Subtotal, TaxAmount and Total are derived from the bill items and are only
// ever written by recomputation, never edited directly.
type Bill struct {
	ID        string  `db:"id"`
	BookingID string  `db:"booking_id"`
	Subtotal  float64 `db:"subtotal"`
	TaxRate   float64 `db:"tax_rate"`
	TaxAmount float64 `db:"tax_amount"`
	Total     float64 `db:"total"`
	IsPaid    bool    `db:"is_paid"`
	model.Metadata
}

type BillItem struct {
	ID          string  `db:"id"`
	BookingID   string  `db:"booking_id"`
	Description string  `db:"description"`
	Amount      float64 `db:"amount"`
	Quantity    int     `db:"quantity"`
	Category    string  `db:"category"`
	model.Metadata
}
