package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"frontdesk/internal/domains/setting/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type UpsertSettingRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

func (u *UpsertSettingRequest) ToModel(key, user string) model.Setting {
	return model.Setting{
		ID:    uuid.NewString(),
		Key:   key,
		Value: u.Value,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SettingResponse struct {
	ID    string          `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
	gDto.Metadata
}

func (r *SettingResponse) FromModel(model model.Setting) {
	r.ID = model.ID
	r.Key = model.Key
	r.Value = model.Value
	r.Metadata.FromModel(model.Metadata)
}

type GetSettingsResponse struct {
	Settings  []SettingResponse `json:"settings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSettingsResponse) FromModels(models []model.Setting, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Settings = make([]SettingResponse, len(models))
	for i, mod := range models {
		r.Settings[i].FromModel(mod)
	}
}
