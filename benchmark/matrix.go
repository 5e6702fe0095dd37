package benchmark

import (
	"fmt"
	"math"

	"ioschedbench/config"
	"ioschedbench/report"
)

// readRateFraction is the share of the device's read IOPS ceiling the rated
// read jobs aim for in total.
const readRateFraction = 0.5

// backgroundWriteParallelism fixes the in-flight depth of the competing
// sequential write job.
const backgroundWriteParallelism = 64

var sleepModes = []SleepMode{SleepDefault, SleepLowRes, SleepPolling}

// MatrixRunner walks the sleep-mode x read-concurrency x workload-mix matrix,
// one blocking load-generator run at a time. It holds no state beyond the
// configuration currently executing and never retries: the first failure
// aborts the whole matrix.
type MatrixRunner struct {
	params    HarnessParams
	baseline  *config.BaselineCapacity
	generator LoadGenerator
}

// NewMatrixRunner builds a runner over an already-selected device baseline.
func NewMatrixRunner(params HarnessParams, baseline *config.BaselineCapacity, generator LoadGenerator) *MatrixRunner {
	return &MatrixRunner{params: params, baseline: baseline, generator: generator}
}

// concurrencyCandidates returns the read fiber counts to sweep. The computed
// candidate is the level at which each fiber ends up rated at about one
// request per second.
func concurrencyCandidates(perShardRateGoal float64) []int {
	computed := int(math.Round(perShardRateGoal))
	if computed < 1 {
		computed = 1
	}
	return []int{5, 128, computed}
}

// Run executes the whole matrix sequentially: each concurrency level is
// measured once with the rated read alone and once against a fixed
// background write. Errors carry the name of the configuration that was
// executing.
func (m *MatrixRunner) Run() error {
	perShardRateGoal := m.baseline.ReadIOPS * readRateFraction / float64(m.params.Shards)

	for _, mode := range sleepModes {
		for _, concurrency := range concurrencyCandidates(perShardRateGoal) {
			rate := perShardRateGoal / float64(concurrency)

			read := NamedIntent{
				Name: fmt.Sprintf("read_rated_%d", int(rate)),
				Intent: WorkloadIntent{
					Kind:          RandRead,
					ReqSizeKB:     m.params.ReadReqSizeKB,
					Parallelism:   concurrency,
					RatePerSecond: rate,
					SleepMode:     mode,
				},
			}
			write := NamedIntent{
				Name: "write",
				Intent: WorkloadIntent{
					Kind:        SeqWrite,
					ReqSizeKB:   m.params.WriteReqSizeKB,
					Parallelism: backgroundWriteParallelism,
					SleepMode:   mode,
				},
			}

			pure := fmt.Sprintf("%s/c%d/read-only", mode, concurrency)
			if err := m.runOne(pure, []NamedIntent{read}); err != nil {
				return err
			}
			mixed := fmt.Sprintf("%s/c%d/read-vs-write", mode, concurrency)
			if err := m.runOne(mixed, []NamedIntent{read, write}); err != nil {
				return err
			}
		}
	}
	return nil
}

// runOne drives a single configuration through the generator, then reduces
// and reports its output. Workloads are reported in the order they were
// configured.
func (m *MatrixRunner) runOne(configName string, jobs []NamedIntent) error {
	fmt.Printf("\nRunning %s\n", configName)

	records, err := m.generator.Run(configName, jobs)
	if err != nil {
		return err
	}
	merged := Aggregate(records)

	for _, j := range jobs {
		res, ok := merged[j.Name]
		if !ok {
			return &ExternalToolError{Tool: "io_tester", Config: configName,
				Err: fmt.Errorf("workload %q missing from result payload", j.Name)}
		}

		queueDelay, err := res.AverageQueueDelayNs()
		if err != nil {
			return fmt.Errorf("configuration %q: %w", configName, err)
		}
		execTime, err := res.AverageExecTimeNs()
		if err != nil {
			return fmt.Errorf("configuration %q: %w", configName, err)
		}

		score := Normalize(res, m.baseline)
		report.ShowStatLine(j.Name, report.StatLine{
			ThroughputKBs:  res.ThroughputKBs,
			IOPS:           res.IOPS,
			P95LatencyNs:   res.P95LatencyNs,
			QueueDelayNs:   queueDelay,
			ExecTimeNs:     execTime,
			BandwidthRatio: score.BandwidthRatio,
			IOPSRatio:      score.IOPSRatio,
			Combined:       score.Combined,
		})
	}
	return nil
}
