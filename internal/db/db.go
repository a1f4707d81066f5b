// Package db provides PostgreSQL access for storing scraped interview questions.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Batch is one connection and one open transaction, used for a single company's load.
// It is not safe for concurrent use.
type Batch struct {
	conn *pgx.Conn
	tx   pgx.Tx
}

// Connect opens a fresh connection and begins the batch transaction
func Connect(ctx context.Context, databaseURL string) (*Batch, error) {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	return &Batch{conn: conn, tx: tx}, nil
}

// Commit commits every row inserted so far
func (b *Batch) Commit(ctx context.Context) error {
	if err := b.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// Close rolls back anything uncommitted and closes the connection
func (b *Batch) Close(ctx context.Context) error {
	// Rollback after Commit is a no-op returning ErrTxClosed
	_ = b.tx.Rollback(ctx)
	if err := b.conn.Close(ctx); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}
