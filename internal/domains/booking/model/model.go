package model

import (
	"time"

	"github.com/shopspring/decimal"

	"frontdesk/shared/model"
)

const (
	EntityName = "booking"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldGuestID         = "guest_id"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldAdults          = "adults"
	FieldChildren        = "children"
	FieldTotalAmount     = "total_amount"
	FieldStatus          = "status"
	FieldChannel         = "channel"
	FieldSpecialRequests = "special_requests"
	FieldExternalSyncID  = "external_sync_id"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

type Booking struct {
	ID              string          `db:"id"`
	RoomID          string          `db:"room_id"`
	GuestID         string          `db:"guest_id"`
	CheckIn         time.Time       `db:"check_in"`
	CheckOut        time.Time       `db:"check_out"`
	Adults          int             `db:"adults"`
	Children        int             `db:"children"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	Status          string          `db:"status"`
	Channel         string          `db:"channel"`
	SpecialRequests string          `db:"special_requests"`
	ExternalSyncID  string          `db:"external_sync_id"`
	model.Metadata
}

// CanTransitionTo reports whether the booking status may move to target.
// Valid flow is confirmed to checked_in to checked_out, with cancelled
// reachable from confirmed or checked_in.
func (b Booking) CanTransitionTo(target string) bool {
	switch target {
	case StatusCheckedIn:
		return b.Status == StatusConfirmed
	case StatusCheckedOut:
		return b.Status == StatusCheckedIn
	case StatusCancelled:
		return b.Status == StatusConfirmed || b.Status == StatusCheckedIn
	default:
		return false
	}
}
