package types

import "fmt"

// Stage names a step of the scrape pipeline
type Stage string

const (
	StageFetch   Stage = "fetch"
	StageExtract Stage = "extract"
	StageLoad    Stage = "load"
)

// Status is the result class of one unit of work
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped" // the unit failed and was dropped; the batch continues
	StatusFatal   Status = "fatal"   // the whole company batch was abandoned
)

// Outcome records what happened to a single unit (a page, a post, a row, a batch).
type Outcome struct {
	Stage  Stage  `json:"stage"`
	Unit   string `json:"unit"`
	Status Status `json:"status"`
	Err    error  `json:"-"`
}

// Skipped builds a skipped outcome for unit
func Skipped(stage Stage, unit string, err error) Outcome {
	return Outcome{Stage: stage, Unit: unit, Status: StatusSkipped, Err: err}
}

// Fatal builds a batch-fatal outcome for unit
func Fatal(stage Stage, unit string, err error) Outcome {
	return Outcome{Stage: stage, Unit: unit, Status: StatusFatal, Err: err}
}

func (o Outcome) String() string {
	if o.Err != nil {
		return fmt.Sprintf("%s %s %s: %v", o.Stage, o.Status, o.Unit, o.Err)
	}
	return fmt.Sprintf("%s %s %s", o.Stage, o.Status, o.Unit)
}
