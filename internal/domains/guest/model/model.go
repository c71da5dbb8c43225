package model

import "hotelier/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldIDNumber  = "id_number"
	FieldAddress   = "address"
)

// Guest rows live only as long as their stay: completing a bill deletes the
// guest, leaving the archived snapshot as the sole trace.
type Guest struct {
	ID        string  `db:"id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     string  `db:"email"`
	Phone     string  `db:"phone"`
	IDNumber  string  `db:"id_number"`
	Address   *string `db:"address"`
	model.Metadata
}

func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
