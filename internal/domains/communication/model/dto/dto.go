package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/communication/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateCommunicationRequest struct {
	GuestID   string `json:"guest_id"   validate:"required"`
	BookingID string `json:"booking_id" validate:"omitempty"`
	Type      string `json:"type"       validate:"required,oneof=email sms in_person phone"`
	Subject   string `json:"subject"    validate:"omitempty,max=200"`
	Message   string `json:"message"    validate:"required,max=2000"`
	Direction string `json:"direction"  validate:"required,oneof=inbound outbound"`
	Status    string `json:"status"     validate:"omitempty,oneof=sent delivered read failed"`
}

func (c *CreateCommunicationRequest) ToModel(user string) model.Communication {
	status := model.StatusSent
	if c.Status != "" {
		status = c.Status
	}

	return model.Communication{
		ID:        uuid.NewString(),
		GuestID:   c.GuestID,
		BookingID: c.BookingID,
		Type:      c.Type,
		Subject:   c.Subject,
		Message:   c.Message,
		Direction: c.Direction,
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCommunicationRequest struct {
	BookingID *string `db:"booking_id" json:"booking_id" validate:"omitempty"`
	Type      string  `db:"type"       json:"type"       validate:"omitempty,oneof=email sms in_person phone"`
	Subject   *string `db:"subject"    json:"subject"    validate:"omitempty,max=200"`
	Message   string  `db:"message"    json:"message"    validate:"omitempty,max=2000"`
	Status    string  `db:"status"     json:"status"     validate:"omitempty,oneof=sent delivered read failed"`
}

type CommunicationResponse struct {
	ID        string `json:"id"`
	GuestID   string `json:"guest_id"`
	BookingID string `json:"booking_id"`
	Type      string `json:"type"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Direction string `json:"direction"`
	Status    string `json:"status"`
	gDto.Metadata
}

func (r *CommunicationResponse) FromModel(model model.Communication) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.BookingID = model.BookingID
	r.Type = model.Type
	r.Subject = model.Subject
	r.Message = model.Message
	r.Direction = model.Direction
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetCommunicationsResponse struct {
	Communications []CommunicationResponse `json:"communications"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetCommunicationsResponse) FromModels(models []model.Communication, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Communications = make([]CommunicationResponse, len(models))
	for i, mod := range models {
		r.Communications[i].FromModel(mod)
	}
}

// GuestMessageEvent is the payload published for outbound guest messages.
// Delivery workers consume it and confirm the message as delivered.
type GuestMessageEvent struct {
	ID      string `json:"id"`
	GuestID string `json:"guest_id"`
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (e *GuestMessageEvent) FromModel(model model.Communication) {
	e.ID = model.ID
	e.GuestID = model.GuestID
	e.Type = model.Type
	e.Subject = model.Subject
	e.Message = model.Message
}
