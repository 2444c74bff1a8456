package model

import (
	"time"

	"github.com/shopspring/decimal"

	"frontdesk/shared/model"
)

const (
	EntityName = "payment"

	FieldID               = "id"
	FieldBookingID        = "booking_id"
	FieldAmount           = "amount"
	FieldMethod           = "method"
	FieldStatus           = "status"
	FieldExternalChargeID = "external_charge_id"
	FieldProcessedAt      = "processed_at"
)

const (
	MethodCreditCard   = "credit_card"
	MethodCash         = "cash"
	MethodBankTransfer = "bank_transfer"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

type Payment struct {
	ID               string          `db:"id"`
	BookingID        string          `db:"booking_id"`
	Amount           decimal.Decimal `db:"amount"`
	Method           string          `db:"method"`
	Status           string          `db:"status"`
	ExternalChargeID string          `db:"external_charge_id"`
	ProcessedAt      *time.Time      `db:"processed_at"`
	model.Metadata
}
