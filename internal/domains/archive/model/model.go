package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "archived_bills"
	EntityName = "archived_bill"

	FieldID           = "id"
	FieldGuestName    = "guest_name"
	FieldPhone        = "phone"
	FieldRoomNumber   = "room_number"
	FieldRoomType     = "room_type"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldTotal        = "total"
	FieldCompletedAt  = "completed_at"
)

// ArchivedBill is the immutable snapshot written exactly once when a stay
// completes. Once the live booking, bill and guest rows are gone this is the
// only durable record of the stay.
type ArchivedBill struct {
	ID           string    `db:"id"`
	GuestName    string    `db:"guest_name"`
	Phone        string    `db:"phone"`
	RoomNumber   int       `db:"room_number"`
	RoomType     string    `db:"room_type"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Total        float64   `db:"total"`
	CompletedAt  time.Time `db:"completed_at"`
	model.Metadata
}
