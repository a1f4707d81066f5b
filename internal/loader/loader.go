// Package loader writes extracted question candidates to the question store, one company batch at a time.
package loader

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/pyq-scraper/internal/db"
	"github.com/jonathan/pyq-scraper/internal/types"
)

// Session is one open batch against the store
type Session interface {
	FindCompanyID(ctx context.Context, fragment string) (string, error)
	InsertQuestion(ctx context.Context, row *db.QuestionRow) (bool, error)
	Commit(ctx context.Context) error
	Close(ctx context.Context) error
}

// Store opens sessions
type Store interface {
	Open(ctx context.Context) (Session, error)
}

// PostgresStore opens a fresh PostgreSQL connection per batch
type PostgresStore struct {
	DatabaseURL string
}

// Open connects to the database and begins a batch
func (s PostgresStore) Open(ctx context.Context) (Session, error) {
	batch, err := db.Connect(ctx, s.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

// ResolutionError reports a company key that matched no stored company
type ResolutionError struct {
	CompanyKey string
	Fragment   string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("company %q (searched %q) not found", e.CompanyKey, e.Fragment)
}

// Result summarizes one Load call
type Result struct {
	Company    string          `json:"company"`
	CompanyID  string          `json:"company_id,omitempty"`
	Inserted   int             `json:"inserted"`
	Duplicates int             `json:"duplicates"`
	Failed     int             `json:"failed"`
	Outcomes   []types.Outcome `json:"-"`
}

// Fatal reports whether the batch was abandoned
func (r Result) Fatal() bool {
	for _, o := range r.Outcomes {
		if o.Status == types.StatusFatal {
			return true
		}
	}
	return false
}

// Loader resolves company keys and inserts candidates
type Loader struct {
	store   Store
	aliases map[string]string
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithAliases replaces the company alias table
func WithAliases(aliases map[string]string) Option {
	return func(l *Loader) { l.aliases = aliases }
}

// WithClock overrides the lastSeen timestamp source
func WithClock(now func() time.Time) Option {
	return func(l *Loader) { l.now = now }
}

// New creates a Loader over store
func New(store Store, logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{
		store:   store,
		aliases: DefaultAliases(),
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load writes candidates for companyKey. Nothing is written if the company
// cannot be resolved; a failing row is skipped and the rest are still written.
func (l *Loader) Load(ctx context.Context, companyKey string, candidates []types.QuestionCandidate) Result {
	result := Result{Company: companyKey}
	log := l.logger.With(zap.String("company", companyKey), zap.String("stage", string(types.StageLoad)))

	if len(candidates) == 0 {
		log.Info("no questions to insert")
		return result
	}

	session, err := l.store.Open(ctx)
	if err != nil {
		log.Error("failed to open store", zap.Error(err))
		result.Outcomes = append(result.Outcomes, types.Fatal(types.StageLoad, companyKey, err))
		return result
	}
	defer func() {
		if err := session.Close(ctx); err != nil {
			log.Warn("failed to close store session", zap.Error(err))
		}
	}()

	fragment := l.Fragment(companyKey)
	companyID, err := session.FindCompanyID(ctx, fragment)
	if err == nil && companyID == "" {
		err = &ResolutionError{CompanyKey: companyKey, Fragment: fragment}
	}
	if err != nil {
		log.Error("company not resolved, skipping batch", zap.String("fragment", fragment), zap.Error(err))
		result.Outcomes = append(result.Outcomes, types.Fatal(types.StageLoad, companyKey, err))
		return result
	}
	result.CompanyID = companyID

	now := l.now()
	for _, c := range candidates {
		inserted, err := session.InsertQuestion(ctx, db.NewQuestionRow(companyID, c, now))
		switch {
		case err != nil:
			result.Failed++
			result.Outcomes = append(result.Outcomes, types.Skipped(types.StageLoad, c.Text, err))
			log.Warn("insert failed", zap.String("source", c.Source), zap.Error(err))
		case inserted:
			result.Inserted++
		default:
			result.Duplicates++
		}
	}

	if err := session.Commit(ctx); err != nil {
		log.Error("commit failed", zap.Error(err))
		result.Outcomes = append(result.Outcomes, types.Fatal(types.StageLoad, companyKey, err))
		result.Inserted = 0
		return result
	}

	log.Info("inserted questions",
		zap.Int("inserted", result.Inserted),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("failed", result.Failed),
	)
	return result
}

// Fragment returns the company-name fragment searched for companyKey
func (l *Loader) Fragment(companyKey string) string {
	if name, ok := l.aliases[companyKey]; ok {
		return name
	}
	return companyKey
}
