package benchmark

import "fmt"

// Workload kinds understood by the load generator.
const (
	SeqWrite = "seqwrite"
	RandRead = "randread"
)

// SleepMode selects how the load generator waits between rated requests.
type SleepMode int

const (
	SleepDefault SleepMode = iota // precise timer
	SleepLowRes                   // coarse timer
	SleepPolling                  // busy polling
)

func (m SleepMode) String() string {
	switch m {
	case SleepLowRes:
		return "lowres"
	case SleepPolling:
		return "polling"
	default:
		return "default"
	}
}

// WorkloadIntent describes the load one job should generate. A runnable job
// needs at least one of Parallelism or RatePerSecond set.
type WorkloadIntent struct {
	Kind          string
	ReqSizeKB     int
	Shares        int     // relative scheduling weight, defaults to 100
	Parallelism   int     // concurrent in-flight requests per shard
	RatePerSecond float64 // target requests/s per fiber, 0 means unrated
	SleepMode     SleepMode
}

// NamedIntent pairs an intent with its unique-within-a-run name.
type NamedIntent struct {
	Name   string
	Intent WorkloadIntent
}

// ShardInfo is the per-shard section of a job's configuration record.
type ShardInfo struct {
	ReqSize     string  `yaml:"reqsize"`
	Shares      int     `yaml:"shares"`
	Parallelism int     `yaml:"parallelism,omitempty"`
	RPS         float64 `yaml:"rps,omitempty"`
}

// JobOptions carries the optional sleep-mode switches of a job record.
type JobOptions struct {
	LowResSleep  bool `yaml:"lowres_sleep,omitempty"`
	PollingSleep bool `yaml:"polling_sleep,omitempty"`
}

// JobEntry is one record of the configuration file handed to the load
// generator. Entries keep the order the workloads were added in.
type JobEntry struct {
	Name      string      `yaml:"name"`
	Shards    string      `yaml:"shards"`
	Type      string      `yaml:"type"`
	ShardInfo ShardInfo   `yaml:"shard_info"`
	Options   *JobOptions `yaml:"options,omitempty"`
	DataSize  string      `yaml:"data_size"`
}

// toConfEntry converts an intent into the load generator's job record. The
// data size is filled in later, once the allocator has seen the whole run.
func (w WorkloadIntent) toConfEntry(name string) JobEntry {
	shares := w.Shares
	if shares == 0 {
		shares = 100
	}

	entry := JobEntry{
		Name:   name,
		Shards: "all",
		Type:   w.Kind,
		ShardInfo: ShardInfo{
			ReqSize:     fmt.Sprintf("%dkB", w.ReqSizeKB),
			Shares:      shares,
			Parallelism: w.Parallelism,
			RPS:         w.RatePerSecond,
		},
	}

	switch w.SleepMode {
	case SleepLowRes:
		entry.Options = &JobOptions{LowResSleep: true}
	case SleepPolling:
		entry.Options = &JobOptions{PollingSleep: true}
	}
	return entry
}
