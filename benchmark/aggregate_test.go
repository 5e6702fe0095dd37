package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readResult(throughput, iops, p95, inFlight float64) ShardResult {
	return ShardResult{
		ThroughputKBs: throughput,
		IOPS:          iops,
		Latencies:     ShardLatencies{P95: p95},
		Stats: ShardStats{
			TotalRequests:   iops * 60,
			TotalOperations: iops * 60,
			TotalExecSec:    12.5,
			TotalDelaySec:   3.5,
			MaxInFlight:     inFlight,
		},
	}
}

func TestAggregateSumsAcrossShards(t *testing.T) {
	records := []ShardRecord{
		{"read_rated_100": readResult(10, 100, 300, 3)},
		{"read_rated_100": readResult(20, 200, 600, 6)},
		{"read_rated_100": readResult(30, 300, 900, 9)},
	}

	merged := Aggregate(records)
	res := merged["read_rated_100"]
	require.NotNil(t, res)

	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 60.0, res.ThroughputKBs)
	assert.Equal(t, 600.0, res.IOPS)
	assert.Equal(t, 36000.0, res.TotalRequests)
	assert.Equal(t, 37.5, res.TotalExecSec)
	assert.Equal(t, 10.5, res.TotalDelaySec)
}

func TestAggregateAveragesLatencyAndInFlight(t *testing.T) {
	records := []ShardRecord{
		{"read_rated_100": readResult(10, 100, 300, 3)},
		{"read_rated_100": readResult(20, 200, 600, 6)},
		{"read_rated_100": readResult(30, 300, 900, 9)},
	}

	res := Aggregate(records)["read_rated_100"]
	require.NotNil(t, res)

	// The mean is exact: (300+600+900)/3 and (3+6+9)/3.
	assert.Equal(t, 600.0, res.P95LatencyNs)
	assert.Equal(t, 6.0, res.MaxInFlight)
}

func TestAggregateSingleShardIsIdentity(t *testing.T) {
	in := readResult(123, 456, 789, 11)
	res := Aggregate([]ShardRecord{{"write": in}})["write"]
	require.NotNil(t, res)

	assert.Equal(t, 1, res.Count)
	assert.Equal(t, in.ThroughputKBs, res.ThroughputKBs)
	assert.Equal(t, in.IOPS, res.IOPS)
	assert.Equal(t, in.Latencies.P95, res.P95LatencyNs)
	assert.Equal(t, in.Stats.MaxInFlight, res.MaxInFlight)
	assert.Equal(t, in.Stats.TotalRequests, res.TotalRequests)
}

func TestAggregateSparseWorkloadDividesByAllShards(t *testing.T) {
	// "write" appears in only one of two shard records; the averaged fields
	// are still divided by the total record count.
	records := []ShardRecord{
		{
			"read_rated_100": readResult(10, 100, 300, 3),
			"write":          readResult(40, 50, 100, 4),
		},
		{
			"read_rated_100": readResult(20, 200, 600, 6),
		},
	}

	merged := Aggregate(records)
	write := merged["write"]
	require.NotNil(t, write)

	assert.Equal(t, 2, write.Count)
	assert.Equal(t, 50.0, write.P95LatencyNs)
	assert.Equal(t, 2.0, write.MaxInFlight)
	// Summed fields are unaffected by the divisor.
	assert.Equal(t, 40.0, write.ThroughputKBs)
}

func TestDerivedPerOperationTimings(t *testing.T) {
	res := &AggregatedResult{
		Name:            "read_rated_100",
		TotalOperations: 1000,
		TotalDelaySec:   2,
		TotalExecSec:    5,
	}

	queueDelay, err := res.AverageQueueDelayNs()
	require.NoError(t, err)
	assert.Equal(t, 2000.0, queueDelay)

	execTime, err := res.AverageExecTimeNs()
	require.NoError(t, err)
	assert.Equal(t, 5000.0, execTime)
}

func TestDerivedTimingsFailOnZeroOperations(t *testing.T) {
	res := &AggregatedResult{Name: "read_rated_100", TotalDelaySec: 2}

	_, err := res.AverageQueueDelayNs()
	var zeroErr *ZeroOperationsError
	require.ErrorAs(t, err, &zeroErr)
	assert.Equal(t, "read_rated_100", zeroErr.Workload)
	assert.Equal(t, "io_queue_total_delay_sec", zeroErr.Field)

	_, err = res.AverageExecTimeNs()
	require.ErrorAs(t, err, &zeroErr)
	assert.Equal(t, "io_queue_total_exec_sec", zeroErr.Field)
}
