package pipeline

import (
	"github.com/jonathan/pyq-scraper/internal/loader"
	"github.com/jonathan/pyq-scraper/internal/types"
)

// CompanyReport is the result of one source/company pass
type CompanyReport struct {
	Source     string          `json:"source"`
	Company    string          `json:"company"`
	Documents  int             `json:"documents"`
	Candidates int             `json:"candidates"`
	Load       loader.Result   `json:"load"`
	Outcomes   []types.Outcome `json:"outcomes,omitempty"`
}

// Skipped counts units dropped at any stage
func (r CompanyReport) Skipped() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == types.StatusSkipped {
			n++
		}
	}
	return n
}

// Fatal reports whether the company batch was abandoned
func (r CompanyReport) Fatal() bool {
	return r.Load.Fatal()
}

// Summary aggregates every company report of a run
type Summary struct {
	Reports []CompanyReport `json:"reports"`
}

// Inserted is the total number of new rows written
func (s *Summary) Inserted() int {
	n := 0
	for _, r := range s.Reports {
		n += r.Load.Inserted
	}
	return n
}

// Candidates is the total number of extracted candidates
func (s *Summary) Candidates() int {
	n := 0
	for _, r := range s.Reports {
		n += r.Candidates
	}
	return n
}

// FatalCompanies lists "source/company" for every abandoned batch
func (s *Summary) FatalCompanies() []string {
	var out []string
	for _, r := range s.Reports {
		if r.Fatal() {
			out = append(out, r.Source+"/"+r.Company)
		}
	}
	return out
}
