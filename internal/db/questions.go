package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Company Methods
// -----------------------------------------------------------------------------

// FindCompanyID looks up a company whose name contains fragment, ignoring case.
// It returns "" and no error when nothing matches.
func (b *Batch) FindCompanyID(ctx context.Context, fragment string) (string, error) {
	var id string
	err := b.tx.QueryRow(ctx,
		`SELECT id FROM "Company" WHERE name ILIKE $1 ESCAPE '\' LIMIT 1`,
		ContainsPattern(fragment),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find company %q: %w", fragment, err)
	}
	return id, nil
}

// ContainsPattern builds an escaped LIKE pattern matching any name containing fragment
func ContainsPattern(fragment string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(strings.TrimSpace(fragment))) + "%"
}

// -----------------------------------------------------------------------------
// Question Methods
// -----------------------------------------------------------------------------

const insertQuestionSQL = `INSERT INTO "PYQ" (id, "companyId", question, difficulty, category, tags, "askedCount", "lastSeen", verified, source, "createdAt")
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	ON CONFLICT DO NOTHING`

// InsertQuestion inserts row inside its own savepoint.
// It reports false when the row already existed. On error only this row is rolled back.
func (b *Batch) InsertQuestion(ctx context.Context, row *QuestionRow) (bool, error) {
	if row.Tags == nil {
		row.Tags = []string{}
	}

	sp, err := b.tx.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to create savepoint: %w", err)
	}

	tag, err := sp.Exec(ctx, insertQuestionSQL,
		row.ID, row.CompanyID, row.Question, row.Difficulty, row.Category, row.Tags,
		row.AskedCount, row.LastSeen, row.Verified, row.Source,
	)
	if err != nil {
		_ = sp.Rollback(ctx)
		return false, fmt.Errorf("failed to insert question: %w", err)
	}

	if err := sp.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to release savepoint: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
