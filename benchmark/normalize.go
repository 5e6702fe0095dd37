package benchmark

import (
	"strings"

	"ioschedbench/config"
)

// NormalizedScore expresses a workload's measured throughput and IOPS as
// fractions of the device's ceiling for the workload's direction. Values
// near 1.0 mean the run saturated the device. Combined is the plain sum of
// the two ratios, a utilization proxy rather than a weighted score.
type NormalizedScore struct {
	BandwidthRatio float64
	IOPSRatio      float64
	Combined       float64
}

// Normalize scores an aggregated result against the device baseline. The
// workload's direction follows its name: a "read" prefix selects the read
// ceiling, anything else the write ceiling. The convention is fragile but is
// what the reported numbers have always meant.
func Normalize(res *AggregatedResult, baseline *config.BaselineCapacity) NormalizedScore {
	bandwidth, iops := baseline.WriteBandwidthKBs, baseline.WriteIOPS
	if strings.HasPrefix(res.Name, "read") {
		bandwidth, iops = baseline.ReadBandwidthKBs, baseline.ReadIOPS
	}

	score := NormalizedScore{
		BandwidthRatio: res.ThroughputKBs / bandwidth,
		IOPSRatio:      res.IOPS / iops,
	}
	score.Combined = score.BandwidthRatio + score.IOPSRatio
	return score
}
