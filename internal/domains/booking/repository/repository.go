package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/store"
)

type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, booking model.Booking) error
	Update(ctx context.Context, booking model.Booking) error
	ReplaceAll(ctx context.Context, bookings []model.Booking) error
	Snapshot(bookings []model.Booking) (store.Snapshot, error)
	Key() string
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(st store.Store, otl otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.CollectionKey, func(booking model.Booking) string {
			return booking.ID
		}, st, otl),
	}
}
