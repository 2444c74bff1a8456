package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateGuestRequest struct {
	FirstName   string         `json:"first_name"  validate:"required,max=100"`
	LastName    string         `json:"last_name"   validate:"required,max=100"`
	Email       string         `json:"email"       validate:"required,email,max=100"`
	Phone       string         `json:"phone"       validate:"omitempty,max=20"`
	IDNumber    string         `json:"id_number"   validate:"omitempty,max=50"`
	Nationality string         `json:"nationality" validate:"omitempty,max=50"`
	Preferences map[string]any `json:"preferences" validate:"omitempty"`
	VIPStatus   *bool          `json:"vip_status"  validate:"omitempty"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	vip := false
	if c.VIPStatus != nil {
		vip = *c.VIPStatus
	}

	return model.Guest{
		ID:          uuid.NewString(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		IDNumber:    c.IDNumber,
		Nationality: c.Nationality,
		Preferences: c.Preferences,
		VIPStatus:   vip,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName   string         `db:"first_name"  json:"first_name"  validate:"omitempty,max=100"`
	LastName    string         `db:"last_name"   json:"last_name"   validate:"omitempty,max=100"`
	Email       string         `db:"email"       json:"email"       validate:"omitempty,email,max=100"`
	Phone       string         `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	IDNumber    string         `db:"id_number"   json:"id_number"   validate:"omitempty,max=50"`
	Nationality string         `db:"nationality" json:"nationality" validate:"omitempty,max=50"`
	Preferences map[string]any `db:"preferences" json:"preferences" validate:"omitempty"`
	VIPStatus   *bool          `db:"vip_status"  json:"vip_status"  validate:"omitempty"`
}

type GuestResponse struct {
	ID          string         `json:"id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	IDNumber    string         `json:"id_number"`
	Nationality string         `json:"nationality"`
	Preferences map[string]any `json:"preferences"`
	VIPStatus   bool           `json:"vip_status"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.IDNumber = model.IDNumber
	r.Nationality = model.Nationality
	r.Preferences = model.Preferences
	r.VIPStatus = model.VIPStatus
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
