package check

// Checker is implemented by all probe types.
// Each probe inspects one aspect of the development environment
// and returns a Result; probes never return errors to the caller.
//
// Implementations:
//   - cmdcheck.Check: verifies a tool is installed and reports its version
//   - dircheck.Check: verifies a dependency directory exists
type Checker interface {
	Run() Result
}
