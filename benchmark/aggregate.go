package benchmark

// ShardStats is the raw counter bundle one shard reports for one workload.
type ShardStats struct {
	TotalRequests   float64 `yaml:"total_requests"`
	TotalOperations float64 `yaml:"io_queue_total_operations"`
	TotalExecSec    float64 `yaml:"io_queue_total_exec_sec"`
	TotalDelaySec   float64 `yaml:"io_queue_total_delay_sec"`
	MaxInFlight     float64 `yaml:"max_in_flight"`
}

// ShardLatencies carries the latency percentiles of one workload on one
// shard, in nanoseconds.
type ShardLatencies struct {
	P95 float64 `yaml:"p0.95"`
}

// ShardResult is one shard's measurement of one named workload.
type ShardResult struct {
	ThroughputKBs float64        `yaml:"throughput"`
	IOPS          float64        `yaml:"IOPS"`
	Latencies     ShardLatencies `yaml:"latencies"`
	Stats         ShardStats     `yaml:"stats"`
}

// ShardRecord maps workload names to one shard's results for them. A shard
// does not have to report every workload of the run.
type ShardRecord map[string]ShardResult

// AggregatedResult merges every shard's measurement of one workload. All
// fields are sums over the shards except P95LatencyNs and MaxInFlight, which
// are means over the number of shard records processed.
type AggregatedResult struct {
	Name  string
	Count int // shard records processed for the run

	ThroughputKBs float64
	IOPS          float64
	P95LatencyNs  float64

	TotalRequests   float64
	TotalOperations float64
	TotalExecSec    float64
	TotalDelaySec   float64
	MaxInFlight     float64
}

// Aggregate reduces per-shard records into one result per workload name.
// Every field is summed while the records are consumed; once all of them
// have been, a second pass turns the latency percentile and the in-flight
// peak into means. The divisor of those means is the total number of shard
// records, even for workloads some shards never reported, so sparse
// reporting skews them low.
func Aggregate(records []ShardRecord) map[string]*AggregatedResult {
	merged := make(map[string]*AggregatedResult)

	for _, record := range records {
		for name, res := range record {
			acc := merged[name]
			if acc == nil {
				acc = &AggregatedResult{Name: name}
				merged[name] = acc
			}
			acc.ThroughputKBs += res.ThroughputKBs
			acc.IOPS += res.IOPS
			acc.P95LatencyNs += res.Latencies.P95
			acc.TotalRequests += res.Stats.TotalRequests
			acc.TotalOperations += res.Stats.TotalOperations
			acc.TotalExecSec += res.Stats.TotalExecSec
			acc.TotalDelaySec += res.Stats.TotalDelaySec
			acc.MaxInFlight += res.Stats.MaxInFlight
		}
	}

	shards := len(records)
	for _, acc := range merged {
		acc.Count = shards
		acc.P95LatencyNs /= float64(shards)
		acc.MaxInFlight /= float64(shards)
	}
	return merged
}

// AverageQueueDelayNs derives the mean time one operation spent queued in
// the scheduler. The scale factor matches the load generator's own reporting
// convention.
func (r *AggregatedResult) AverageQueueDelayNs() (float64, error) {
	return r.perOperation(r.TotalDelaySec, "io_queue_total_delay_sec")
}

// AverageExecTimeNs derives the mean time one operation spent executing.
func (r *AggregatedResult) AverageExecTimeNs() (float64, error) {
	return r.perOperation(r.TotalExecSec, "io_queue_total_exec_sec")
}

func (r *AggregatedResult) perOperation(totalSec float64, field string) (float64, error) {
	if r.TotalOperations == 0 {
		return 0, &ZeroOperationsError{Workload: r.Name, Field: field}
	}
	return totalSec * 1000000 / r.TotalOperations, nil
}
