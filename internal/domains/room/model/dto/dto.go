package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	Number       string          `json:"number"        validate:"required,max=20"`
	Type         string          `json:"type"          validate:"required,max=50"`
	Status       string          `json:"status"        validate:"omitempty,oneof=available occupied pending maintenance"`
	Floor        int             `json:"floor"         validate:"omitempty,min=0"`
	MaxOccupancy int             `json:"max_occupancy" validate:"omitempty,min=1"`
	BasePrice    decimal.Decimal `json:"base_price"    validate:"required,dgte=0"`
	Amenities    []string        `json:"amenities"     validate:"omitempty,dive,max=100"`
	Notes        string          `json:"notes"         validate:"omitempty,max=500"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:           uuid.NewString(),
		Number:       c.Number,
		Type:         c.Type,
		Status:       status,
		Floor:        c.Floor,
		MaxOccupancy: c.MaxOccupancy,
		BasePrice:    c.BasePrice,
		Amenities:    c.Amenities,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number       string           `db:"number"        json:"number"        validate:"omitempty,max=20"`
	Type         string           `db:"type"          json:"type"          validate:"omitempty,max=50"`
	Status       string           `db:"status"        json:"status"        validate:"omitempty,oneof=available occupied pending maintenance"`
	Floor        *int             `db:"floor"         json:"floor"         validate:"omitempty,min=0"`
	MaxOccupancy *int             `db:"max_occupancy" json:"max_occupancy" validate:"omitempty,min=1"`
	BasePrice    *decimal.Decimal `db:"base_price"    json:"base_price"    validate:"omitempty,dgte=0"`
	Amenities    []string         `db:"amenities"     json:"amenities"     validate:"omitempty,dive,max=100"`
	LastCleaned  *time.Time       `db:"last_cleaned"  json:"last_cleaned"  validate:"omitempty"`
	Notes        *string          `db:"notes"         json:"notes"         validate:"omitempty,max=500"`
}

type UpdateRoomStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=available occupied pending maintenance"`
}

type RoomResponse struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Floor        int             `json:"floor"`
	MaxOccupancy int             `json:"max_occupancy"`
	BasePrice    decimal.Decimal `json:"base_price"`
	Amenities    []string        `json:"amenities"`
	LastCleaned  *string         `json:"last_cleaned"`
	Notes        string          `json:"notes"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Type = model.Type
	r.Status = model.Status
	r.Floor = model.Floor
	r.MaxOccupancy = model.MaxOccupancy
	r.BasePrice = model.BasePrice
	r.Amenities = model.Amenities
	r.Notes = model.Notes

	if model.LastCleaned != nil {
		lastCleaned := timezone.Format(*model.LastCleaned, constant.DateFormat)
		r.LastCleaned = &lastCleaned
	}

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
