package check

import "github.com/cockroachdb/errors"

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "cmd: node", "dir: backend/node_modules"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures, may carry hints
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Hints returns the remediation hints attached to the failure, if any.
func (r Result) Hints() []string {
	if r.Err == nil {
		return nil
	}
	return errors.GetAllHints(r.Err)
}

// AllOK reports whether every result passed. An empty list is OK.
func AllOK(results ...Result) bool {
	for _, r := range results {
		if !r.OK() {
			return false
		}
	}
	return true
}
