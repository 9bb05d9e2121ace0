package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/shared/store"
)

// Repository is a typed view over one persisted collection. Every read decodes
// the whole snapshot and every write replaces it; record-level operations are
// built on top of that contract, which is what keeps multi-record mutations
// trivially consistent within a single collection.
type Repository[T any] struct {
	store  store.Store
	otel   otel.Otel
	entity string
	key    string
	id     func(T) string
}

// NewRepository builds a repository for the given collection. The id function
// extracts the primary identifier from a record; lookups and updates match on it.
func NewRepository[T any](entityName, collectionKey string, id func(T) string, st store.Store, otl otel.Otel) Repository[T] {
	return Repository[T]{
		store:  st,
		otel:   otl,
		entity: entityName,
		key:    collectionKey,
		id:     id,
	}
}

// Key returns the collection key this repository persists under.
func (repo *Repository[T]) Key() string {
	return repo.key
}

func (repo *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	scope.SetAttribute(constant.OtelCollectionAttributeKey, repo.key)

	data, err := repo.store.Load(ctx, repo.key)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to load collection (%s): %w", repo.entity, err)
	}

	if data == nil {
		return []T{}, nil
	}

	models := []T{}
	if err := json.Unmarshal(data, &models); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode collection (%s): %w", repo.entity, err)
	}

	return models, nil
}

// Get returns the record with the given id, or the zero value when absent.
// Callers detect absence by checking the model's empty identifier.
func (repo *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	var zero T

	models, err := repo.GetAll(ctx)
	if err != nil {
		return zero, err
	}

	for _, model := range models {
		if repo.id(model) == id {
			return model, nil
		}
	}

	return zero, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	models, err := repo.GetAll(ctx)
	if err != nil {
		return false, err
	}

	for _, model := range models {
		if repo.id(model) == id {
			return true, nil
		}
	}

	return false, nil
}

func (repo *Repository[T]) Count(ctx context.Context) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	models, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	return len(models), nil
}

// Insert appends a record and persists the augmented snapshot.
func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	models, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}

	return repo.ReplaceAll(ctx, append(models, model))
}

// Update replaces the record matching the model's id within the snapshot.
func (repo *Repository[T]) Update(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	models, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}

	found := false

	for index := range models {
		if repo.id(models[index]) == repo.id(model) {
			models[index] = model
			found = true

			break
		}
	}

	if !found {
		return fmt.Errorf("record not found in collection (%s): %s", repo.entity, repo.id(model))
	}

	return repo.ReplaceAll(ctx, models)
}

// ReplaceAll persists the given records as the new whole-collection snapshot.
func (repo *Repository[T]) ReplaceAll(ctx context.Context, models []T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.ReplaceAll", constant.OtelRepositoryScopeName, repo.entity))
	defer scope.End()

	snapshot, err := repo.Snapshot(models)
	if err != nil {
		scope.TraceError(err)

		return err
	}

	if err := repo.store.Save(ctx, snapshot.Key, snapshot.Data); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return failure.WriteError(err) //nolint:wrapcheck
	}

	return nil
}

// Snapshot encodes the records without persisting them, for callers that
// commit several collections in one atomic store write.
func (repo *Repository[T]) Snapshot(models []T) (store.Snapshot, error) {
	if models == nil {
		models = []T{}
	}

	data, err := json.Marshal(models)
	if err != nil {
		logger.ErrorWithStack(err)

		return store.Snapshot{}, fmt.Errorf("failed to encode collection (%s): %w", repo.entity, err)
	}

	return store.Snapshot{Key: repo.key, Data: data}, nil
}
