package model

import (
	"encoding/json"

	"frontdesk/shared/model"
)

const (
	EntityName = "setting"

	FieldID    = "id"
	FieldKey   = "key"
	FieldValue = "value"
)

// Setting is a property-wide configuration entry. Value carries whatever
// structure the caller stored, addressed by the business key rather than
// the record id.
type Setting struct {
	ID    string          `db:"id"`
	Key   string          `db:"key"`
	Value json.RawMessage `db:"value"`
	model.Metadata
}
