package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/payment/model"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/store"
)

type Payment interface {
	GetAll(ctx context.Context) ([]model.Payment, error)
	Get(ctx context.Context, id string) (model.Payment, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, payment model.Payment) error
	Key() string
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
}

func New(st store.Store, otl otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.CollectionKey, func(payment model.Payment) string {
			return payment.ID
		}, st, otl),
	}
}
