package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number        int                   `json:"number"          validate:"required,min=1"`
	Type          string                `json:"type"            validate:"required,oneof=standard deluxe suite presidential"`
	Capacity      int                   `json:"capacity"        validate:"required,min=1"`
	PricePerNight float64               `json:"price_per_night" validate:"omitempty,min=0"`
	Floor         int                   `json:"floor"           validate:"omitempty"`
	Amenities     []string              `json:"amenities"       validate:"omitempty,dive,max=100"`
	Photo         *multipart.FileHeader `json:"photo"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile     multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, photoURL string) model.Room {
	return model.Room{
		ID:            uuid.NewString(),
		Number:        c.Number,
		Type:          c.Type,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Floor:         c.Floor,
		Amenities:     c.Amenities,
		Photo:         photoURL,
		Status:        model.StatusAvailable,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=available maintenance"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Number        int      `json:"number"`
	Type          string   `json:"type"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Floor         int      `json:"floor"`
	Amenities     []string `json:"amenities"`
	Photo         string   `json:"photo"`
	Status        string   `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Floor = model.Floor
	r.Amenities = model.Amenities
	r.Photo = model.Photo
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
