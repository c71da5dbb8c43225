package model

import (
	"hotelier/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldNumber        = "number"
	FieldType          = "type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldFloor         = "floor"
	FieldAmenities     = "amenities"
	FieldPhoto         = "photo"
	FieldStatus        = "status"
)

const (
	TypeStandard     = "standard"
	TypeDeluxe       = "deluxe"
	TypeSuite        = "suite"
	TypePresidential = "presidential"
)

// Room status is owned by the booking lifecycle; the only manual transition
// is available <-> maintenance.
const (
	StatusAvailable   = "available"
	StatusReserved    = "reserved"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID            string         `db:"id"`
	Number        int            `db:"number"`
	Type          string         `db:"type"`
	Capacity      int            `db:"capacity"`
	PricePerNight float64        `db:"price_per_night"`
	Floor         int            `db:"floor"`
	Amenities     pq.StringArray `db:"amenities"`
	Photo         string         `db:"photo"`
	Status        string         `db:"status"`
	model.Metadata
}
