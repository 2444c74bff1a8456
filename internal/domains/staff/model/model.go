package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	EntityName = "staff"

	FieldID         = "id"
	FieldEmployeeID = "employee_id"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldDepartment = "department"
	FieldPosition   = "position"
	FieldShift      = "shift"
	FieldIsActive   = "is_active"
	FieldStartDate  = "start_date"
)

const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
)

type Staff struct {
	ID         string    `db:"id"`
	EmployeeID string    `db:"employee_id"`
	FirstName  string    `db:"first_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	Department string    `db:"department"`
	Position   string    `db:"position"`
	Shift      string    `db:"shift"`
	IsActive   bool      `db:"is_active"`
	StartDate  time.Time `db:"start_date"`
	model.Metadata
}
