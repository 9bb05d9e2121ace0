package store

import (
	"context"
	"errors"
	"fmt"

	goRedis "github.com/redis/go-redis/v9"

	"frontdesk/shared/logger"
)

const seqKeyPrefix = "seq:"

type redisStore struct {
	client *goRedis.Client
}

// NewRedis returns a Store persisting each collection under its own key.
func NewRedis(client *goRedis.Client) Store {
	return &redisStore{client: client}
}

func (r *redisStore) Load(ctx context.Context, collectionKey string) ([]byte, error) {
	data, err := r.client.Get(ctx, collectionKey).Bytes()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return nil, nil
		}

		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to load collection (%s): %w", collectionKey, err)
	}

	return data, nil
}

func (r *redisStore) Save(ctx context.Context, collectionKey string, data []byte) error {
	if err := r.client.Set(ctx, collectionKey, data, 0).Err(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save collection (%s): %w", collectionKey, err)
	}

	return nil
}

func (r *redisStore) SaveAll(ctx context.Context, snapshots ...Snapshot) error {
	_, err := r.client.TxPipelined(ctx, func(pipe goRedis.Pipeliner) error {
		for _, snapshot := range snapshots {
			pipe.Set(ctx, snapshot.Key, snapshot.Data, 0)
		}

		return nil
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save collections atomically: %w", err)
	}

	return nil
}

func (r *redisStore) NextSeq(ctx context.Context, name string) (int64, error) {
	seq, err := r.client.Incr(ctx, seqKeyPrefix+name).Result()
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to advance sequence (%s): %w", name, err)
	}

	return seq, nil
}
