package report

import (
	"fmt"

	"github.com/fatih/color"
)

// StatLine is everything reported for one workload after a run: the
// aggregated measurements, the derived per-operation timings and the
// utilization ratios against the device baseline.
type StatLine struct {
	ThroughputKBs  float64
	IOPS           float64
	P95LatencyNs   float64
	QueueDelayNs   float64
	ExecTimeNs     float64
	BandwidthRatio float64
	IOPSRatio      float64
	Combined       float64
}

var workloadName = color.New(color.FgCyan, color.Bold)

// ShowStatLine prints one workload's summary of a finished run.
func ShowStatLine(name string, s StatLine) {
	fmt.Printf("%s: throughput %.0f kb/s  IOPS %.0f  lat.95 %.0fns  qtime %.0fns  xtime %.0fns\n",
		workloadName.Sprint(name), s.ThroughputKBs, s.IOPS, s.P95LatencyNs, s.QueueDelayNs, s.ExecTimeNs)
	fmt.Printf("  bw-ratio %.3f  iops-ratio %.3f  combined %.3f\n",
		s.BandwidthRatio, s.IOPSRatio, s.Combined)
}
