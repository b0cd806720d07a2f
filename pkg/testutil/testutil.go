// Package testutil holds helpers shared by the check packages' tests.
package testutil

import (
	"strings"

	"github.com/vertti/devsetup/pkg/check"
)

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}

// OKResult returns a passing result with the given name and details.
func OKResult(name string, details ...string) check.Result {
	return check.Result{Name: name, Status: check.StatusOK, Details: details}
}
