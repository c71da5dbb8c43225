package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

const DateFormat = "2006-01-02"

type CreateBookingRequest struct {
	GuestID         string `json:"guest_id"         validate:"required"`
	RoomID          string `json:"room_id"          validate:"required"`
	CheckInDate     string `json:"check_in_date"    validate:"required"`
	CheckOutDate    string `json:"check_out_date"   validate:"required"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"required,min=1"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(DateFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := timezone.Parse(DateFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:              uuid.NewString(),
		GuestID:         c.GuestID,
		RoomID:          c.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  c.NumberOfGuests,
		SpecialRequests: c.SpecialRequests,
		Status:          model.StatusReserved,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type BookingResponse struct {
	ID              string  `json:"id"`
	GuestID         string  `json:"guest_id"`
	RoomID          string  `json:"room_id"`
	GuestName       string  `json:"guest_name"`
	GuestPhone      string  `json:"guest_phone"`
	RoomNumber      int     `json:"room_number"`
	RoomType        string  `json:"room_type"`
	RoomPrice       float64 `json:"room_price"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	NumberOfGuests  int     `json:"number_of_guests"`
	SpecialRequests string  `json:"special_requests"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.GuestID = mod.GuestID
	r.RoomID = mod.RoomID
	r.GuestName = mod.GuestFullName()
	r.GuestPhone = mod.GuestPhone
	r.RoomNumber = mod.RoomNumber
	r.RoomType = mod.RoomType
	r.RoomPrice = mod.RoomPrice
	r.CheckInDate = mod.CheckInDate.Format(DateFormat)
	r.CheckOutDate = mod.CheckOutDate.Format(DateFormat)
	r.NumberOfGuests = mod.NumberOfGuests
	r.SpecialRequests = mod.SpecialRequests
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// StartOfDay truncates t to midnight in the application timezone.
func StartOfDay(t time.Time) time.Time {
	t = timezone.ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, timezone.GetLocation())
}
