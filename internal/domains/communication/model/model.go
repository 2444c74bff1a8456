package model

import (
	"frontdesk/shared/model"
)

const (
	EntityName = "communication"

	FieldID        = "id"
	FieldGuestID   = "guest_id"
	FieldBookingID = "booking_id"
	FieldType      = "type"
	FieldSubject   = "subject"
	FieldMessage   = "message"
	FieldDirection = "direction"
	FieldStatus    = "status"
)

const (
	TypeEmail    = "email"
	TypeSMS      = "sms"
	TypeInPerson = "in_person"
	TypePhone    = "phone"
)

const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
	StatusFailed    = "failed"
)

type Communication struct {
	ID        string `db:"id"`
	GuestID   string `db:"guest_id"`
	BookingID string `db:"booking_id"`
	Type      string `db:"type"`
	Subject   string `db:"subject"`
	Message   string `db:"message"`
	Direction string `db:"direction"`
	Status    string `db:"status"`
	model.Metadata
}
