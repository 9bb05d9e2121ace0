package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/postgres"
)

const (
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Snapshot is a whole-collection replacement payload: persisting one replaces
// the entire collection under Key, never a single record.
type Snapshot struct {
	Key  string
	Data []byte
}

// Store is the persistence contract every repository runs on. Collections are
// opaque blobs keyed by collection name; SaveAll commits several snapshots as
// one atomic write so paired mutations (room + booking) cannot diverge.
// NextSeq hands out monotonic sequence numbers for display-style IDs.
type Store interface {
	Load(ctx context.Context, collectionKey string) ([]byte, error)
	Save(ctx context.Context, collectionKey string, data []byte) error
	SaveAll(ctx context.Context, snapshots ...Snapshot) error
	NextSeq(ctx context.Context, name string) (int64, error)
}

// New selects the snapshot store backend from configuration. The postgres
// driver opens its own connections; the redis driver reuses the cache client.
func New(cfg *config.Config, redisClient *goRedis.Client) Store {
	switch cfg.Store.Driver {
	case DriverPostgres:
		return NewPostgres(postgres.New(cfg))
	case DriverMemory:
		log.Warn().Msg("Using in-memory snapshot store, data will not survive a restart")

		return NewMemory()
	default:
		return NewRedis(redisClient)
	}
}
