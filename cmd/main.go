package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ioschedbench/benchmark"
	"ioschedbench/config"
)

func main() {
	// Define command-line flags
	directory := flag.String("directory", "/mnt", "Directory on the device under test")
	buildDir := flag.String("build-dir", "./build/dev", "Path to the build tree containing io_tester and iotune")
	duration := flag.Int("duration", 60, "Duration in seconds of one load-generator run")
	readReqSize := flag.Int("read-reqsize", 4, "Request size in KB for read jobs")
	writeReqSize := flag.Int("write-reqsize", 64, "Request size in KB for write jobs")
	shards := flag.Int("shards", 1, "Number of load-generator shards")
	maxDataSize := flag.Int64("max-data-size", 8192, "Maximum per-job data set size in MB")
	propertiesFile := flag.String("properties-file", "io_properties.yaml", "Path of the capacity probe's output")

	flag.Parse()

	// Raise resource limits before anything gets spawned
	if err := benchmark.SetMaxResources(); err != nil {
		fmt.Printf("Error setting resources: %v\n", err)
		os.Exit(1)
	}

	params := benchmark.HarnessParams{
		Directory:      *directory,
		BuildDir:       *buildDir,
		Duration:       time.Duration(*duration) * time.Second,
		ReadReqSizeKB:  *readReqSize,
		WriteReqSizeKB: *writeReqSize,
		Shards:         *shards,
		MaxDataSizeMB:  *maxDataSize,
		PropertiesFile: *propertiesFile,
	}

	// Measure the device ceiling once, or reuse a previous measurement
	if err := benchmark.EnsureIOProperties(params); err != nil {
		fmt.Printf("Error probing device capacity: %v\n", err)
		os.Exit(1)
	}

	baseline, err := config.LoadBaseline(params.PropertiesFile, params.Directory)
	if err != nil {
		fmt.Printf("Error loading baseline capacity: %v\n", err)
		os.Exit(1)
	}

	tester, err := benchmark.NewIOTester(params)
	if err != nil {
		fmt.Printf("Error preparing load generator: %v\n", err)
		os.Exit(1)
	}
	defer tester.Close()

	runner := benchmark.NewMatrixRunner(params, baseline, tester)
	if err := runner.Run(); err != nil {
		fmt.Printf("Benchmark aborted: %v\n", err)
		os.Exit(1)
	}
}
