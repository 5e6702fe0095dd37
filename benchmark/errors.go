package benchmark

import "fmt"

// EmptyJobSetError reports a run that was configured with no workloads. It is
// raised before any disk-space allocation or external invocation happens.
type EmptyJobSetError struct {
	Config string // name of the configuration being built
}

func (e *EmptyJobSetError) Error() string {
	return fmt.Sprintf("configuration %q has no workloads", e.Config)
}

// ZeroOperationsError reports a workload that completed no operations, which
// leaves the derived per-operation timings undefined. It must surface rather
// than silently report zero.
type ZeroOperationsError struct {
	Workload string
	Field    string // the stat whose derivation failed
}

func (e *ZeroOperationsError) Error() string {
	return fmt.Sprintf("workload %q completed zero operations, cannot derive %s", e.Workload, e.Field)
}

// ExternalToolError reports a failed invocation of the load generator or the
// capacity probe, or an unusable result payload. There is no retry; it aborts
// the remaining matrix.
type ExternalToolError struct {
	Tool   string
	Config string
	Err    error
}

func (e *ExternalToolError) Error() string {
	if e.Config == "" {
		return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s failed running configuration %q: %v", e.Tool, e.Config, e.Err)
}

func (e *ExternalToolError) Unwrap() error { return e.Err }
