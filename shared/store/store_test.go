package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/store"
)

func TestMemoryStore_LoadAbsentCollection(t *testing.T) {
	st := store.NewMemory()

	data, err := st.Load(context.Background(), "rooms")

	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestMemoryStore_SaveAndLoad(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	err := st.Save(ctx, "rooms", []byte(`[{"id":"RM101"}]`))
	assert.NoError(t, err)

	data, err := st.Load(ctx, "rooms")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"RM101"}]`), data)

	// snapshot write replaces the whole collection
	err = st.Save(ctx, "rooms", []byte(`[]`))
	assert.NoError(t, err)

	data, err = st.Load(ctx, "rooms")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)
}

func TestMemoryStore_SaveAll(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	err := st.SaveAll(ctx,
		store.Snapshot{Key: "rooms", Data: []byte(`[{"id":"RM101","status":"booked"}]`)},
		store.Snapshot{Key: "bookings", Data: []byte(`[{"id":"BK1"}]`)},
	)
	assert.NoError(t, err)

	rooms, err := st.Load(ctx, "rooms")
	assert.NoError(t, err)
	assert.Contains(t, string(rooms), "booked")

	bookings, err := st.Load(ctx, "bookings")
	assert.NoError(t, err)
	assert.Contains(t, string(bookings), "BK1")
}

func TestMemoryStore_NextSeq(t *testing.T) {
	st := store.NewMemory()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := st.NextSeq(ctx, "customer")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// independent counter per name
	got, err := st.NextSeq(ctx, "invoice")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
