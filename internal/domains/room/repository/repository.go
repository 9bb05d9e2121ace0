package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/store"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, id string) (model.Room, error)
	Exist(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, room model.Room) error
	Update(ctx context.Context, room model.Room) error
	ReplaceAll(ctx context.Context, rooms []model.Room) error
	Snapshot(rooms []model.Room) (store.Snapshot, error)
	Key() string
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(st store.Store, otl otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository(model.EntityName, model.CollectionKey, func(room model.Room) string {
			return room.ID
		}, st, otl),
	}
}
