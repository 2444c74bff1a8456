package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID          string          `json:"room_id"          validate:"required"`
	GuestID         string          `json:"guest_id"         validate:"required"`
	CheckIn         string          `json:"check_in"         validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	CheckOut        string          `json:"check_out"        validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Adults          int             `json:"adults"           validate:"omitempty,min=0"`
	Children        int             `json:"children"         validate:"omitempty,min=0"`
	TotalAmount     decimal.Decimal `json:"total_amount"     validate:"required,dgte=0"`
	Status          string          `json:"status"           validate:"omitempty,oneof=confirmed checked_in checked_out cancelled"`
	Channel         string          `json:"channel"          validate:"omitempty,max=50"`
	SpecialRequests string          `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusConfirmed
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		GuestID:         c.GuestID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Adults:          c.Adults,
		Children:        c.Children,
		TotalAmount:     c.TotalAmount,
		Status:          status,
		Channel:         c.Channel,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	RoomID          string           `db:"room_id"          json:"room_id"          validate:"omitempty"`
	GuestID         string           `db:"guest_id"         json:"guest_id"         validate:"omitempty"`
	CheckIn         *time.Time       `db:"check_in"         json:"check_in"         validate:"omitempty"`
	CheckOut        *time.Time       `db:"check_out"        json:"check_out"        validate:"omitempty"`
	Adults          *int             `db:"adults"           json:"adults"           validate:"omitempty,min=0"`
	Children        *int             `db:"children"         json:"children"         validate:"omitempty,min=0"`
	TotalAmount     *decimal.Decimal `db:"total_amount"     json:"total_amount"     validate:"omitempty,dgte=0"`
	Status          string           `db:"status"           json:"status"           validate:"omitempty,oneof=confirmed checked_in checked_out cancelled"`
	Channel         string           `db:"channel"          json:"channel"          validate:"omitempty,max=50"`
	SpecialRequests *string          `db:"special_requests" json:"special_requests" validate:"omitempty,max=500"`
	ExternalSyncID  *string          `db:"external_sync_id" json:"external_sync_id" validate:"omitempty"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	RoomID          string          `json:"room_id"`
	GuestID         string          `json:"guest_id"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	Channel         string          `json:"channel"`
	SpecialRequests string          `json:"special_requests"`
	ExternalSyncID  string          `json:"external_sync_id"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.GuestID = model.GuestID
	r.CheckIn = timezone.Format(model.CheckIn, constant.DateFormat)
	r.CheckOut = timezone.Format(model.CheckOut, constant.DateFormat)
	r.Adults = model.Adults
	r.Children = model.Children
	r.TotalAmount = model.TotalAmount
	r.Status = model.Status
	r.Channel = model.Channel
	r.SpecialRequests = model.SpecialRequests
	r.ExternalSyncID = model.ExternalSyncID
	r.Metadata.FromModel(model.Metadata)
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
