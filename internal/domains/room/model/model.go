package model

import (
	"time"

	"github.com/shopspring/decimal"

	"frontdesk/shared/model"
)

const (
	EntityName = "room"

	FieldID           = "id"
	FieldNumber       = "number"
	FieldType         = "type"
	FieldStatus       = "status"
	FieldFloor        = "floor"
	FieldMaxOccupancy = "max_occupancy"
	FieldBasePrice    = "base_price"
	FieldAmenities    = "amenities"
	FieldLastCleaned  = "last_cleaned"
	FieldNotes        = "notes"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusPending     = "pending"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID           string          `db:"id"`
	Number       string          `db:"number"`
	Type         string          `db:"type"`
	Status       string          `db:"status"`
	Floor        int             `db:"floor"`
	MaxOccupancy int             `db:"max_occupancy"`
	BasePrice    decimal.Decimal `db:"base_price"`
	Amenities    []string        `db:"amenities"`
	LastCleaned  *time.Time      `db:"last_cleaned"`
	Notes        string          `db:"notes"`
	model.Metadata
}
