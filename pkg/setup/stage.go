package setup

import "context"

// Outcome tells the driver what to do after a stage.
type Outcome int

const (
	// Continue proceeds to the next stage.
	Continue Outcome = iota
	// ContinueWithWarning proceeds after printing the message as a warning.
	ContinueWithWarning
	// Abort ends the run after printing the message.
	Abort
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case ContinueWithWarning:
		return "continue-with-warning"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// StageResult is what a stage reports back to the driver.
type StageResult struct {
	Outcome Outcome
	Message string
}

// Stage is one step of the guided setup.
type Stage struct {
	Name   string
	Icon   string
	Banner string
	Run    func(ctx context.Context) (StageResult, error)
}

func proceed(msg string) (StageResult, error) {
	return StageResult{Outcome: Continue, Message: msg}, nil
}

func warn(msg string) (StageResult, error) {
	return StageResult{Outcome: ContinueWithWarning, Message: msg}, nil
}

func abort(msg string) (StageResult, error) {
	return StageResult{Outcome: Abort, Message: msg}, nil
}
