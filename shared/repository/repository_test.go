package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/infras/otel/mocks"
	"frontdesk/shared/repository"
	"frontdesk/shared/store"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestRepository(st store.Store) repository.Repository[testRecord] {
	return repository.NewRepository("record", "records", func(r testRecord) string { return r.ID }, st, mocks.NewOtel())
}

func TestRepository_GetAllEmptyCollection(t *testing.T) {
	repo := newTestRepository(store.NewMemory())

	records, err := repo.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestRepository_InsertAndGet(t *testing.T) {
	repo := newTestRepository(store.NewMemory())
	ctx := context.Background()

	err := repo.Insert(ctx, testRecord{ID: "R1", Name: "first"})
	assert.NoError(t, err)

	err = repo.Insert(ctx, testRecord{ID: "R2", Name: "second"})
	assert.NoError(t, err)

	record, err := repo.Get(ctx, "R2")
	assert.NoError(t, err)
	assert.Equal(t, "second", record.Name)

	// absence comes back as the zero value
	record, err = repo.Get(ctx, "R3")
	assert.NoError(t, err)
	assert.Empty(t, record.ID)

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_Exist(t *testing.T) {
	repo := newTestRepository(store.NewMemory())
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testRecord{ID: "R1"}))

	exist, err := repo.Exist(ctx, "R1")
	assert.NoError(t, err)
	assert.True(t, exist)

	exist, err = repo.Exist(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, exist)
}

func TestRepository_Update(t *testing.T) {
	repo := newTestRepository(store.NewMemory())
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testRecord{ID: "R1", Name: "before"}))

	err := repo.Update(ctx, testRecord{ID: "R1", Name: "after"})
	assert.NoError(t, err)

	record, err := repo.Get(ctx, "R1")
	assert.NoError(t, err)
	assert.Equal(t, "after", record.Name)

	err = repo.Update(ctx, testRecord{ID: "missing"})
	assert.Error(t, err)
}

func TestRepository_SnapshotCommitsAtomically(t *testing.T) {
	st := store.NewMemory()
	repo := newTestRepository(st)
	other := repository.NewRepository("other", "others", func(r testRecord) string { return r.ID }, st, mocks.NewOtel())
	ctx := context.Background()

	first, err := repo.Snapshot([]testRecord{{ID: "R1"}})
	assert.NoError(t, err)

	second, err := other.Snapshot([]testRecord{{ID: "O1"}})
	assert.NoError(t, err)

	assert.NoError(t, st.SaveAll(ctx, first, second))

	records, err := repo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	others, err := other.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, others, 1)
}
