package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/communication/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/store"
)

type Communication interface {
	Insert(ctx context.Context, model model.Communication) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Communication, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Communication, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	*store.Collection[model.Communication]
}

func New(otel otel.Otel) Communication {
	return &repositoryImpl{
		Collection: store.NewCollection[model.Communication](model.EntityName, model.FieldID, otel),
	}
}
