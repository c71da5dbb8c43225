package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestID         = "guest_id"
	FieldRoomID          = "room_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldNumberOfGuests  = "number_of_guests"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
)

// Booking states move strictly forward: reserved -> checked-in ->
// checked-out. Completion deletes the row; the archive keeps the trace.
const (
	StatusReserved   = "reserved"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
)

type Booking struct {
	ID              string    `db:"id"`
	GuestID         string    `db:"guest_id"`
	RoomID          string    `db:"room_id"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	NumberOfGuests  int       `db:"number_of_guests"`
	SpecialRequests string    `db:"special_requests"`
	Status          string    `db:"status"`

	GuestFirstName string  `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  string  `db:"guest_last_name"  table:"guests" column:"last_name"`
	GuestPhone     string  `db:"guest_phone"      table:"guests" column:"phone"`
	RoomNumber     int     `db:"room_number"      table:"rooms"  column:"number"`
	RoomType       string  `db:"room_type"        table:"rooms"  column:"type"`
	RoomPrice      float64 `db:"room_price"       table:"rooms"  column:"price_per_night"`

	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN guests ON guests.id = bookings.guest_id JOIN rooms ON rooms.id = bookings.room_id"
}

func (b *Booking) GuestFullName() string {
	return b.GuestFirstName + " " + b.GuestLastName
}
