package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"frontdesk/infras/postgres"
	"frontdesk/shared/logger"
)

const (
	queryLoadCollection = `SELECT data FROM collections WHERE key = $1`
	querySaveCollection = `INSERT INTO collections (key, data) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data`
	queryNextSeq = `INSERT INTO sequences (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value`
)

type postgresStore struct {
	db *postgres.Connection
}

// NewPostgres returns a Store keeping each collection as a single JSONB row.
func NewPostgres(db *postgres.Connection) Store {
	return &postgresStore{db: db}
}

func (p *postgresStore) Load(ctx context.Context, collectionKey string) ([]byte, error) {
	var data []byte

	err := p.db.Read.GetContext(ctx, &data, queryLoadCollection, collectionKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to load collection (%s): %w", collectionKey, err)
	}

	return data, nil
}

func (p *postgresStore) Save(ctx context.Context, collectionKey string, data []byte) error {
	if _, err := p.db.Write.ExecContext(ctx, querySaveCollection, collectionKey, data); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save collection (%s): %w", collectionKey, err)
	}

	return nil
}

func (p *postgresStore) SaveAll(ctx context.Context, snapshots ...Snapshot) error {
	tx, err := p.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}

	for _, snapshot := range snapshots {
		if _, err := tx.ExecContext(ctx, querySaveCollection, snapshot.Key, snapshot.Data); err != nil {
			logger.ErrorWithStack(err)

			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}

			return fmt.Errorf("failed to save collection (%s): %w", snapshot.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit snapshot transaction: %w", err)
	}

	return nil
}

func (p *postgresStore) NextSeq(ctx context.Context, name string) (int64, error) {
	var seq int64

	if err := p.db.Write.GetContext(ctx, &seq, queryNextSeq, name); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to advance sequence (%s): %w", name, err)
	}

	return seq, nil
}
