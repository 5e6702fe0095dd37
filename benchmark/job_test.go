package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfEntryForParallelJob(t *testing.T) {
	intent := WorkloadIntent{Kind: SeqWrite, ReqSizeKB: 64, Parallelism: 64}

	entry := intent.toConfEntry("write")
	entry.DataSize = "800MB"
	out, err := yaml.Marshal([]JobEntry{entry})
	require.NoError(t, err)

	conf := string(out)
	assert.Contains(t, conf, "name: write")
	assert.Contains(t, conf, "shards: all")
	assert.Contains(t, conf, "type: seqwrite")
	assert.Contains(t, conf, "reqsize: 64kB")
	assert.Contains(t, conf, "shares: 100") // default weight
	assert.Contains(t, conf, "parallelism: 64")
	assert.Contains(t, conf, "data_size: 800MB")
	assert.NotContains(t, conf, "rps")
	assert.NotContains(t, conf, "options")
}

func TestConfEntryForRatedJob(t *testing.T) {
	intent := WorkloadIntent{
		Kind:          RandRead,
		ReqSizeKB:     4,
		Shares:        200,
		Parallelism:   5,
		RatePerSecond: 100,
		SleepMode:     SleepLowRes,
	}

	entry := intent.toConfEntry("read_rated_100")
	out, err := yaml.Marshal(entry)
	require.NoError(t, err)

	conf := string(out)
	assert.Contains(t, conf, "type: randread")
	assert.Contains(t, conf, "shares: 200")
	assert.Contains(t, conf, "rps: 100")
	assert.Contains(t, conf, "lowres_sleep: true")
	assert.NotContains(t, conf, "polling_sleep")
}

func TestConfEntrySleepModes(t *testing.T) {
	intent := WorkloadIntent{Kind: RandRead, ReqSizeKB: 4, Parallelism: 1}

	assert.Nil(t, intent.toConfEntry("read").Options)

	intent.SleepMode = SleepPolling
	entry := intent.toConfEntry("read")
	require.NotNil(t, entry.Options)
	assert.True(t, entry.Options.PollingSleep)
	assert.False(t, entry.Options.LowResSleep)
}
