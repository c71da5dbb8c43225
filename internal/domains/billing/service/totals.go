package service

import (
	"math"
	"time"

	"hotelier/internal/domains/billing/model"
)

// NumberOfNights returns the billable night count for a stay, never less
// than one so same-day stays still produce a room charge.
func NumberOfNights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}

	return nights
}

// ComputeTotals derives subtotal, tax amount and total from the full item
// set. Callers overwrite the bill's stored values with the result instead of
// adjusting them incrementally.
func ComputeTotals(items []model.BillItem, taxRatePercent float64) (subtotal, taxAmount, total float64) {
	for _, item := range items {
		subtotal += item.Amount * float64(item.Quantity)
	}

	subtotal = roundCents(subtotal)
	taxAmount = roundCents(subtotal * taxRatePercent / 100)
	total = roundCents(subtotal + taxAmount)

	return subtotal, taxAmount, total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
