package loader

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/pyq-scraper/internal/db"
	"github.com/jonathan/pyq-scraper/internal/types"
)

// fakeStore is an in-memory store whose rows are unique on (company, question)
type fakeStore struct {
	companies map[string]string // name -> id
	rows      map[string]*db.QuestionRow
	opens     int
	commits   int
	closes    int
	openErr   error
	failOn    string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		companies: map[string]string{
			"Tata Consultancy Services": "c-tata",
			"Amazon":                    "c-amazon",
			"Goldman Sachs":             "c-goldman",
		},
		rows: make(map[string]*db.QuestionRow),
	}
}

func (s *fakeStore) Open(context.Context) (Session, error) {
	s.opens++
	if s.openErr != nil {
		return nil, s.openErr
	}
	return &fakeSession{store: s, pending: make(map[string]*db.QuestionRow)}, nil
}

type fakeSession struct {
	store   *fakeStore
	pending map[string]*db.QuestionRow
}

func (f *fakeSession) FindCompanyID(_ context.Context, fragment string) (string, error) {
	for name, id := range f.store.companies {
		if strings.Contains(strings.ToLower(name), strings.ToLower(fragment)) {
			return id, nil
		}
	}
	return "", nil
}

func (f *fakeSession) InsertQuestion(_ context.Context, row *db.QuestionRow) (bool, error) {
	if f.store.failOn != "" && row.Question == f.store.failOn {
		return false, errors.New("constraint violation")
	}
	key := row.CompanyID + "|" + row.Question
	if _, ok := f.store.rows[key]; ok {
		return false, nil
	}
	if _, ok := f.pending[key]; ok {
		return false, nil
	}
	f.pending[key] = row
	return true, nil
}

func (f *fakeSession) Commit(context.Context) error {
	for k, v := range f.pending {
		f.store.rows[k] = v
	}
	f.store.commits++
	return nil
}

func (f *fakeSession) Close(context.Context) error {
	f.store.closes++
	return nil
}

func candidates(texts ...string) []types.QuestionCandidate {
	out := make([]types.QuestionCandidate, 0, len(texts))
	for _, text := range texts {
		out = append(out, types.QuestionCandidate{
			Text:       text,
			Difficulty: types.DifficultyMedium,
			Category:   types.CategoryTechnical,
			Tags:       []string{},
			Source:     "https://example.com/post",
		})
	}
	return out
}

func TestLoad_EmptyNeverOpens(t *testing.T) {
	store := newFakeStore()
	result := New(store, nil).Load(context.Background(), "amazon", nil)

	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 0, store.opens)
	assert.False(t, result.Fatal())
}

func TestLoad_AliasResolution(t *testing.T) {
	store := newFakeStore()
	result := New(store, nil).Load(context.Background(), "tcs", candidates("What is normalization in a database?"))

	assert.Equal(t, "c-tata", result.CompanyID)
	assert.Equal(t, 1, result.Inserted)
	assert.Len(t, store.rows, 1)
	for _, row := range store.rows {
		assert.Equal(t, "c-tata", row.CompanyID)
		assert.Equal(t, db.InitialAskedCount, row.AskedCount)
		assert.False(t, row.Verified)
	}
}

func TestLoad_UnresolvedCompany(t *testing.T) {
	store := newFakeStore()
	delete(store.companies, "Tata Consultancy Services")

	result := New(store, nil).Load(context.Background(), "tcs", candidates("What is normalization in a database?"))

	assert.Equal(t, 0, result.Inserted)
	assert.Empty(t, store.rows)
	assert.Equal(t, 0, store.commits)
	assert.Equal(t, 1, store.closes)
	require.True(t, result.Fatal())

	var resErr *ResolutionError
	require.ErrorAs(t, result.Outcomes[0].Err, &resErr)
	assert.Equal(t, "tata", resErr.Fragment)
}

func TestLoad_OpenFailure(t *testing.T) {
	store := newFakeStore()
	store.openErr = errors.New("connection refused")

	result := New(store, nil).Load(context.Background(), "amazon", candidates("Explain the CAP theorem in detail"))

	assert.Equal(t, 0, result.Inserted)
	assert.True(t, result.Fatal())
	assert.Equal(t, 0, store.closes)
}

func TestLoad_RowFailureContinues(t *testing.T) {
	store := newFakeStore()
	store.failOn = "second question fails here"

	result := New(store, nil).Load(context.Background(), "amazon",
		candidates("first question is fine", "second question fails here", "third question is fine"))

	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, store.rows, 2)
	assert.Equal(t, 1, store.commits, "commit once per batch")
	assert.False(t, result.Fatal())
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, types.StatusSkipped, result.Outcomes[0].Status)
}

func TestLoad_Idempotent(t *testing.T) {
	store := newFakeStore()
	l := New(store, nil)
	batch := candidates("Design a URL shortener service", "Explain how a hash map works")

	first := l.Load(context.Background(), "amazon", batch)
	rowsAfterFirst := len(store.rows)
	second := l.Load(context.Background(), "amazon", batch)

	assert.Equal(t, 2, first.Inserted)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Duplicates)
	assert.Equal(t, rowsAfterFirst, len(store.rows))
}

func TestLoad_DuplicateWithinBatch(t *testing.T) {
	store := newFakeStore()
	result := New(store, nil).Load(context.Background(), "amazon",
		candidates("Explain how a hash map works", "Explain how a hash map works"))

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Duplicates)
}

func TestLoad_UsesClock(t *testing.T) {
	store := newFakeStore()
	fixed := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	New(store, nil, WithClock(func() time.Time { return fixed })).
		Load(context.Background(), "goldmansachs", candidates("Tell me about a conflict in your team"))

	require.Len(t, store.rows, 1)
	for _, row := range store.rows {
		assert.Equal(t, fixed, row.LastSeen)
		assert.Equal(t, "c-goldman", row.CompanyID)
	}
}

func TestFragment(t *testing.T) {
	l := New(newFakeStore(), nil, WithAliases(map[string]string{"gs": "goldman"}))
	assert.Equal(t, "goldman", l.Fragment("gs"))
	assert.Equal(t, "unknown", l.Fragment("unknown"))

	d := New(newFakeStore(), nil)
	assert.Equal(t, "jp morgan", d.Fragment("jpmorgan"))
	assert.Equal(t, "american", d.Fragment("amex"))
}

func TestDefaultAliases_CoversCompanies(t *testing.T) {
	aliases := DefaultAliases()
	assert.Len(t, aliases, 18)
	assert.Equal(t, "tata", aliases["tcs"])
	assert.Equal(t, "deutsche", aliases["deutschebank"])
}
