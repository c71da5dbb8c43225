package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/billing/model"
	"hotelier/internal/domains/billing/service"
)

func TestNumberOfNights(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "two night stay",
			checkIn:  day(1),
			checkOut: day(3),
			want:     2,
		},
		{
			name:     "single night stay",
			checkIn:  day(1),
			checkOut: day(2),
			want:     1,
		},
		{
			name:     "same day stay still bills one night",
			checkIn:  day(1),
			checkOut: day(1),
			want:     1,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 9, 3, 11, 0, 0, 0, time.UTC),
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.NumberOfNights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []model.BillItem
		taxRate      float64
		wantSubtotal float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name: "room charge only",
			items: []model.BillItem{
				{Amount: 100, Quantity: 2, Category: model.CategoryRoom},
			},
			taxRate:      10,
			wantSubtotal: 200,
			wantTax:      20,
			wantTotal:    220,
		},
		{
			name: "room charge plus minibar",
			items: []model.BillItem{
				{Amount: 100, Quantity: 2, Category: model.CategoryRoom},
				{Amount: 15, Quantity: 1, Category: model.CategoryService},
			},
			taxRate:      10,
			wantSubtotal: 215,
			wantTax:      21.50,
			wantTotal:    236.50,
		},
		{
			name:         "no items",
			items:        nil,
			taxRate:      10,
			wantSubtotal: 0,
			wantTax:      0,
			wantTotal:    0,
		},
		{
			name: "fractional amounts round to cents",
			items: []model.BillItem{
				{Amount: 33.335, Quantity: 3, Category: model.CategoryFood},
			},
			taxRate:      10,
			wantSubtotal: 100.01,
			wantTax:      10,
			wantTotal:    110.01,
		},
		{
			name: "zero tax rate",
			items: []model.BillItem{
				{Amount: 50, Quantity: 1, Category: model.CategoryOther},
			},
			taxRate:      0,
			wantSubtotal: 50,
			wantTax:      0,
			wantTotal:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, taxAmount, total := service.ComputeTotals(tt.items, tt.taxRate)

			assert.Equal(t, tt.wantSubtotal, subtotal)
			assert.Equal(t, tt.wantTax, taxAmount)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
