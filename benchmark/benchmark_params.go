package benchmark

import "time"

// HarnessParams holds the parameters for a whole harness invocation. It is
// built once from the command line and passed read-only to every component.
type HarnessParams struct {
	Directory      string        // Directory on the device under test
	BuildDir       string        // Build tree containing the load generator and the capacity probe
	Duration       time.Duration // Duration of one load-generator run
	ReadReqSizeKB  int           // Request size of read jobs in KB
	WriteReqSizeKB int           // Request size of write jobs in KB
	Shards         int           // Number of load-generator shards
	MaxDataSizeMB  int64         // Upper bound on the per-job data set size
	PropertiesFile string        // Path of the capacity probe's output
}
