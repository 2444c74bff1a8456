package dto

import (
	"time"

	"github.com/google/uuid"

	"frontdesk/internal/domains/maintenance/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateMaintenanceRequest struct {
	RoomID      string `json:"room_id"     validate:"required"`
	StaffID     string `json:"staff_id"    validate:"omitempty"`
	Type        string `json:"type"        validate:"required,oneof=cleaning repair inspection"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high urgent"`
	Description string `json:"description" validate:"required,max=1000"`
	Notes       string `json:"notes"       validate:"omitempty,max=1000"`
}

func (c *CreateMaintenanceRequest) ToModel(user string) model.MaintenanceRequest {
	priority := model.PriorityMedium
	if c.Priority != "" {
		priority = c.Priority
	}

	return model.MaintenanceRequest{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		StaffID:     c.StaffID,
		Type:        c.Type,
		Priority:    priority,
		Description: c.Description,
		Status:      model.StatusPending,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMaintenanceRequest struct {
	RoomID      string     `db:"room_id"      json:"room_id"      validate:"omitempty"`
	StaffID     *string    `db:"staff_id"     json:"staff_id"     validate:"omitempty"`
	Type        string     `db:"type"         json:"type"         validate:"omitempty,oneof=cleaning repair inspection"`
	Priority    string     `db:"priority"     json:"priority"     validate:"omitempty,oneof=low medium high urgent"`
	Description string     `db:"description"  json:"description"  validate:"omitempty,max=1000"`
	Status      string     `db:"status"       json:"status"       validate:"omitempty,oneof=pending in_progress completed"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at" validate:"omitempty"`
	Notes       *string    `db:"notes"        json:"notes"        validate:"omitempty,max=1000"`
}

type MaintenanceResponse struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"room_id"`
	StaffID     string  `json:"staff_id"`
	Type        string  `json:"type"`
	Priority    string  `json:"priority"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	CompletedAt *string `json:"completed_at"`
	Notes       string  `json:"notes"`
	gDto.Metadata
}

func (r *MaintenanceResponse) FromModel(model model.MaintenanceRequest) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.StaffID = model.StaffID
	r.Type = model.Type
	r.Priority = model.Priority
	r.Description = model.Description
	r.Status = model.Status
	r.Notes = model.Notes

	if model.CompletedAt != nil {
		completedAt := timezone.Format(*model.CompletedAt, constant.DateFormat)
		r.CompletedAt = &completedAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetMaintenanceResponse struct {
	Requests  []MaintenanceResponse `json:"requests"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetMaintenanceResponse) FromModels(models []model.MaintenanceRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]MaintenanceResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
