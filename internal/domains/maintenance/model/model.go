package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	EntityName = "maintenance_request"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldStaffID     = "staff_id"
	FieldType        = "type"
	FieldPriority    = "priority"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldCompletedAt = "completed_at"
	FieldNotes       = "notes"
)

const (
	TypeCleaning   = "cleaning"
	TypeRepair     = "repair"
	TypeInspection = "inspection"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type MaintenanceRequest struct {
	ID          string     `db:"id"`
	RoomID      string     `db:"room_id"`
	StaffID     string     `db:"staff_id"`
	Type        string     `db:"type"`
	Priority    string     `db:"priority"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	CompletedAt *time.Time `db:"completed_at"`
	Notes       string     `db:"notes"`
	model.Metadata
}
