package dto

import (
	"time"

	"hotelier/internal/domains/billing/model"
	bookingDto "hotelier/internal/domains/booking/model/dto"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type AddBillItemRequest struct {
	Description string  `json:"description" validate:"required,max=255"`
	Amount      float64 `json:"amount"      validate:"required,min=0"`
	Quantity    int     `json:"quantity"    validate:"required,min=1"`
	Category    string  `json:"category"    validate:"required,oneof=room service food amenity other"`
}

func (c *AddBillItemRequest) ToModel(bookingID, user string) model.BillItem {
	return model.BillItem{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Description: c.Description,
		Amount:      c.Amount,
		Quantity:    c.Quantity,
		Category:    c.Category,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// StayCompletedEvent is published once per finished stay, after the
// completion transaction commits.
type StayCompletedEvent struct {
	BookingID    string    `json:"booking_id"`
	GuestName    string    `json:"guest_name"`
	RoomNumber   int       `json:"room_number"`
	RoomType     string    `json:"room_type"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Total        float64   `json:"total"`
	CompletedAt  time.Time `json:"completed_at"`
}

type BillItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
}

func (r *BillItemResponse) FromModel(model model.BillItem) {
	r.ID = model.ID
	r.Description = model.Description
	r.Amount = model.Amount
	r.Quantity = model.Quantity
	r.Category = model.Category
}

type BillResponse struct {
	ID        string                     `json:"id"`
	BookingID string                     `json:"booking_id"`
	Subtotal  float64                    `json:"subtotal"`
	TaxRate   float64                    `json:"tax_rate"`
	TaxAmount float64                    `json:"tax_amount"`
	Total     float64                    `json:"total"`
	IsPaid    bool                       `json:"is_paid"`
	Booking   bookingDto.BookingResponse `json:"booking"`
	Items     []BillItemResponse         `json:"items"`
	gDto.Metadata
}

func (r *BillResponse) FromModel(bill model.Bill, items []model.BillItem) {
	r.ID = bill.ID
	r.BookingID = bill.BookingID
	r.Subtotal = bill.Subtotal
	r.TaxRate = bill.TaxRate
	r.TaxAmount = bill.TaxAmount
	r.Total = bill.Total
	r.IsPaid = bill.IsPaid
	r.Metadata.FromModel(bill.Metadata)

	r.Items = make([]BillItemResponse, len(items))
	for i, item := range items {
		r.Items[i].FromModel(item)
	}
}
