package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"frontdesk/internal/domains/payment/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreatePaymentRequest struct {
	BookingID        string          `json:"booking_id"         validate:"required"`
	Amount           decimal.Decimal `json:"amount"             validate:"required,dgte=0"`
	Method           string          `json:"method"             validate:"required,oneof=credit_card cash bank_transfer"`
	Status           string          `json:"status"             validate:"omitempty,oneof=pending completed failed refunded"`
	ExternalChargeID string          `json:"external_charge_id" validate:"omitempty"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	// A payment recorded as already completed, a cash payment at the desk for
	// example, gets its processing time stamped on creation.
	var processedAt *time.Time
	if status == model.StatusCompleted {
		now := timezone.Now()
		processedAt = &now
	}

	return model.Payment{
		ID:               uuid.NewString(),
		BookingID:        c.BookingID,
		Amount:           c.Amount,
		Method:           c.Method,
		Status:           status,
		ExternalChargeID: c.ExternalChargeID,
		ProcessedAt:      processedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Amount           *decimal.Decimal `db:"amount"             json:"amount"             validate:"omitempty,dgte=0"`
	Method           string           `db:"method"             json:"method"             validate:"omitempty,oneof=credit_card cash bank_transfer"`
	Status           string           `db:"status"             json:"status"             validate:"omitempty,oneof=pending completed failed refunded"`
	ExternalChargeID *string          `db:"external_charge_id" json:"external_charge_id" validate:"omitempty"`
	ProcessedAt      *time.Time       `db:"processed_at"       json:"processed_at"       validate:"omitempty"`
}

type CreatePaymentIntentRequest struct {
	BookingID string          `json:"booking_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"     validate:"required,dgte=0"`
	Currency  string          `json:"currency"   validate:"omitempty,len=3"`
}

func (c *CreatePaymentIntentRequest) ToModel(user, externalChargeID string) model.Payment {
	return model.Payment{
		ID:               uuid.NewString(),
		BookingID:        c.BookingID,
		Amount:           c.Amount,
		Method:           model.MethodCreditCard,
		Status:           model.StatusPending,
		ExternalChargeID: externalChargeID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type PaymentResponse struct {
	ID               string          `json:"id"`
	BookingID        string          `json:"booking_id"`
	Amount           decimal.Decimal `json:"amount"`
	Method           string          `json:"method"`
	Status           string          `json:"status"`
	ExternalChargeID string          `json:"external_charge_id"`
	ProcessedAt      *string         `json:"processed_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.ExternalChargeID = model.ExternalChargeID

	if model.ProcessedAt != nil {
		processedAt := timezone.Format(*model.ProcessedAt, constant.DateFormat)
		r.ProcessedAt = &processedAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type PaymentIntentResponse struct {
	IntentID     string          `json:"intent_id"`
	ClientSecret string          `json:"client_secret"`
	Status       string          `json:"status"`
	Payment      PaymentResponse `json:"payment"`
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
