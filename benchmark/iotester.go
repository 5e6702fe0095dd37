package benchmark

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"ioschedbench/progress"
)

// resultDelimiter separates the load generator's progress chatter from the
// structured result payload on stdout. The payload follows the final
// occurrence.
const resultDelimiter = "---\n"

// shardKey is the reserved shard-identifier entry in each result record.
const shardKey = "shard"

// LoadGenerator runs one configuration's jobs to completion and returns the
// raw per-shard records.
type LoadGenerator interface {
	Run(config string, jobs []NamedIntent) ([]ShardRecord, error)
}

// IOTester drives the external multi-shard load generator. One instance
// serves the whole matrix; its runs never overlap, which is what keeps the
// target device exclusive to a single measurement at a time.
type IOTester struct {
	params  HarnessParams
	logFile *os.File
}

// NewIOTester prepares a tester writing the load generator's stderr to a
// timestamped log file.
func NewIOTester(params HarnessParams) (*IOTester, error) {
	timestamp := time.Now().Format("20060102_150405")
	logFile, err := os.Create(fmt.Sprintf("io_tester_logs_%s.txt", timestamp))
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %v", err)
	}
	return &IOTester{params: params, logFile: logFile}, nil
}

// Close releases the run log.
func (t *IOTester) Close() error {
	return t.logFile.Close()
}

// Run writes the job configuration, invokes the load generator and decodes
// its result payload. The wait is blocking, with no timeout and no
// cancellation: if the generator hangs, the harness hangs with it.
func (t *IOTester) Run(config string, jobs []NamedIntent) ([]ShardRecord, error) {
	entries, err := t.buildRun(config, jobs)
	if err != nil {
		return nil, err
	}

	confData, err := yaml.Marshal(entries)
	if err != nil {
		return nil, &ExternalToolError{Tool: "io_tester", Config: config, Err: err}
	}
	if err := os.WriteFile("conf.yaml", confData, 0644); err != nil {
		return nil, &ExternalToolError{Tool: "io_tester", Config: config, Err: err}
	}

	cmd := exec.Command(filepath.Join(t.params.BuildDir, "apps", "io_tester", "io_tester"),
		fmt.Sprintf("-c%d", t.params.Shards),
		"--storage", t.params.Directory,
		"--conf", "conf.yaml",
		"--duration", fmt.Sprintf("%d", int(t.params.Duration.Seconds())),
		"--io-properties-file", t.params.PropertiesFile)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = t.logFile
	fmt.Fprintf(t.logFile, "[%s] %s\n", config, cmd.String())

	bar := progress.NewTimedBar(t.params.Duration)
	bar.SetCaption(config)
	err = cmd.Run()
	bar.Finish()
	if err != nil {
		return nil, &ExternalToolError{Tool: "io_tester", Config: config, Err: err}
	}

	records, err := ParseResultPayload(stdout.Bytes())
	if err != nil {
		return nil, &ExternalToolError{Tool: "io_tester", Config: config, Err: err}
	}
	return records, nil
}

// buildRun validates the job set and sizes every job's data set to the space
// available on the target device.
func (t *IOTester) buildRun(config string, jobs []NamedIntent) ([]JobEntry, error) {
	if len(jobs) == 0 {
		return nil, &EmptyJobSetError{Config: config}
	}

	for _, j := range jobs {
		if j.Intent.Parallelism == 0 && j.Intent.RatePerSecond == 0 {
			return nil, fmt.Errorf("job %q in configuration %q has neither parallelism nor a rate set", j.Name, config)
		}
	}

	free, err := FreeSpace(t.params.Directory)
	if err != nil {
		return nil, err
	}
	dataSizeMB := PerJobDataSizeMB(free, len(jobs), t.params.MaxDataSizeMB)

	entries := make([]JobEntry, 0, len(jobs))
	for _, j := range jobs {
		entry := j.Intent.toConfEntry(j.Name)
		entry.DataSize = fmt.Sprintf("%dMB", dataSizeMB)
		entries = append(entries, entry)
	}
	return entries, nil
}

// ParseResultPayload extracts the structured records that follow the final
// delimiter in the load generator's output. Each record maps workload names
// to measurements; the reserved shard-identifier entry is dropped.
func ParseResultPayload(out []byte) ([]ShardRecord, error) {
	idx := bytes.LastIndex(out, []byte(resultDelimiter))
	if idx < 0 {
		return nil, fmt.Errorf("no result delimiter in output")
	}
	payload := out[idx+len(resultDelimiter):]

	var raw []map[string]yaml.Node
	if err := yaml.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("unparsable result payload: %v", err)
	}

	records := make([]ShardRecord, 0, len(raw))
	for _, m := range raw {
		record := make(ShardRecord, len(m))
		for name, node := range m {
			if name == shardKey {
				continue
			}
			var res ShardResult
			if err := node.Decode(&res); err != nil {
				return nil, fmt.Errorf("unparsable result for workload %q: %v", name, err)
			}
			record[name] = res
		}
		records = append(records, record)
	}
	return records, nil
}
