package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/staff/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateStaffRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,max=20"`
	FirstName  string `json:"first_name"  validate:"required,max=100"`
	LastName   string `json:"last_name"   validate:"required,max=100"`
	Email      string `json:"email"       validate:"required,email,max=100"`
	Phone      string `json:"phone"       validate:"omitempty,max=20"`
	Department string `json:"department"  validate:"required,max=50"`
	Position   string `json:"position"    validate:"omitempty,max=50"`
	Shift      string `json:"shift"       validate:"omitempty,oneof=morning afternoon night"`
	IsActive   *bool  `json:"is_active"   validate:"omitempty"`
	StartDate  string `json:"start_date"  validate:"required,datetime=2006-01-02"`
}

func (c *CreateStaffRequest) ToModel(user string) (model.Staff, error) {
	startDate, err := timezone.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Staff{}, err
	}

	// New hires are active unless the request says otherwise.
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.Staff{
		ID:         uuid.NewString(),
		EmployeeID: c.EmployeeID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Department: c.Department,
		Position:   c.Position,
		Shift:      c.Shift,
		IsActive:   isActive,
		StartDate:  startDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateStaffRequest carries start_date without a db tag; the service parses
// the date-only string before it reaches the patch map.
type UpdateStaffRequest struct {
	EmployeeID string  `db:"employee_id" json:"employee_id" validate:"omitempty,max=20"`
	FirstName  string  `db:"first_name"  json:"first_name"  validate:"omitempty,max=100"`
	LastName   string  `db:"last_name"   json:"last_name"   validate:"omitempty,max=100"`
	Email      string  `db:"email"       json:"email"       validate:"omitempty,email,max=100"`
	Phone      *string `db:"phone"       json:"phone"       validate:"omitempty,max=20"`
	Department string  `db:"department"  json:"department"  validate:"omitempty,max=50"`
	Position   *string `db:"position"    json:"position"    validate:"omitempty,max=50"`
	Shift      string  `db:"shift"       json:"shift"       validate:"omitempty,oneof=morning afternoon night"`
	IsActive   *bool   `db:"is_active"   json:"is_active"   validate:"omitempty"`
	StartDate  string  `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

type StaffResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Shift      string `json:"shift"`
	IsActive   bool   `json:"is_active"`
	StartDate  string `json:"start_date"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.EmployeeID = model.EmployeeID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Department = model.Department
	r.Position = model.Position
	r.Shift = model.Shift
	r.IsActive = model.IsActive
	r.StartDate = timezone.Format(model.StartDate, constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
