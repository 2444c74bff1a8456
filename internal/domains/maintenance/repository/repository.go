package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/maintenance/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/store"
)

type Maintenance interface {
	Insert(ctx context.Context, model model.MaintenanceRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.MaintenanceRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.MaintenanceRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	*store.Collection[model.MaintenanceRequest]
}

func New(otel otel.Otel) Maintenance {
	return &repositoryImpl{
		Collection: store.NewCollection[model.MaintenanceRequest](model.EntityName, model.FieldID, otel),
	}
}
