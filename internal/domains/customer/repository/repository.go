package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/customer/model"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/store"
)

type Customer interface {
	GetAll(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id string) (model.Customer, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, customer model.Customer) error
	Update(ctx context.Context, customer model.Customer) error
	ReplaceAll(ctx context.Context, customers []model.Customer) error
	Key() string
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
}

func New(st store.Store, otl otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.CollectionKey, func(customer model.Customer) string {
			return customer.ID
		}, st, otl),
	}
}
