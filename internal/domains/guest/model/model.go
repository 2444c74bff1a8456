package model

import (
	"frontdesk/shared/model"
)

const (
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldIDNumber    = "id_number"
	FieldNationality = "nationality"
	FieldPreferences = "preferences"
	FieldVIPStatus   = "vip_status"
)

type Guest struct {
	ID          string         `db:"id"`
	FirstName   string         `db:"first_name"`
	LastName    string         `db:"last_name"`
	Email       string         `db:"email"`
	Phone       string         `db:"phone"`
	IDNumber    string         `db:"id_number"`
	Nationality string         `db:"nationality"`
	Preferences map[string]any `db:"preferences"`
	VIPStatus   bool           `db:"vip_status"`
	model.Metadata
}
