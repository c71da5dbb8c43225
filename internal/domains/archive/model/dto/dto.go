package dto

import (
	"hotelier/internal/domains/archive/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

const dateFormat = "2006-01-02"

type ArchivedBillResponse struct {
	ID           string  `json:"id"`
	GuestName    string  `json:"guest_name"`
	Phone        string  `json:"phone"`
	RoomNumber   int     `json:"room_number"`
	RoomType     string  `json:"room_type"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Total        float64 `json:"total"`
	CompletedAt  string  `json:"completed_at"`
}

func (r *ArchivedBillResponse) FromModel(model model.ArchivedBill) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Phone = model.Phone
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.CheckInDate = model.CheckInDate.Format(dateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(dateFormat)
	r.Total = model.Total
	r.CompletedAt = timezone.Format(model.CompletedAt, constant.DateFormat)
}

type GetArchivedBillsResponse struct {
	ArchivedBills []ArchivedBillResponse `json:"archived_bills"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetArchivedBillsResponse) FromModels(models []model.ArchivedBill, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ArchivedBills = make([]ArchivedBillResponse, len(models))
	for i, mod := range models {
		r.ArchivedBills[i].FromModel(mod)
	}
}
