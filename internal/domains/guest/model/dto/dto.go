package dto

import (
	"hotelier/internal/domains/guest/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name"  validate:"required,max=100"`
	Email     string  `json:"email"      validate:"omitempty,email,max=100"`
	Phone     string  `json:"phone"      validate:"omitempty,max=20"`
	IDNumber  string  `json:"id_number"  validate:"required,max=50"`
	Address   *string `json:"address"    validate:"omitempty,max=255"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:        uuid.NewString(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		IDNumber:  c.IDNumber,
		Address:   c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type GuestResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	IDNumber  string  `json:"id_number"`
	Address   *string `json:"address"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.IDNumber = model.IDNumber
	r.Address = model.Address
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
