package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BaselineCapacity is the measured ceiling of one device, taken from the
// capacity probe's properties file. Bandwidth is converted from the probe's
// bytes/s to kB/s on load so that ratios against the load generator's
// throughput come out dimensionless.
type BaselineCapacity struct {
	Mountpoint        string
	ReadIOPS          float64
	WriteIOPS         float64
	ReadBandwidthKBs  float64
	WriteBandwidthKBs float64
}

// MissingBaselineError reports that the capacity input carries no record for
// the target mount point. This is a configuration error and aborts the
// harness before the matrix starts.
type MissingBaselineError struct {
	Mountpoint string
}

func (e *MissingBaselineError) Error() string {
	return fmt.Sprintf("no baseline capacity record for mount point %q", e.Mountpoint)
}

// ioProperties mirrors the capacity probe's file layout.
type ioProperties struct {
	Disks []diskProperties `yaml:"disks"`
}

type diskProperties struct {
	Mountpoint     string  `yaml:"mountpoint"`
	ReadIOPS       float64 `yaml:"read_iops"`
	WriteIOPS      float64 `yaml:"write_iops"`
	ReadBandwidth  float64 `yaml:"read_bandwidth"`
	WriteBandwidth float64 `yaml:"write_bandwidth"`
}

// LoadBaseline reads the capacity probe's properties file and returns the
// record matching the target mount point.
func LoadBaseline(path string, mountpoint string) (*BaselineCapacity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read properties file: %v", err)
	}
	return selectBaseline(data, mountpoint)
}

func selectBaseline(data []byte, mountpoint string) (*BaselineCapacity, error) {
	var props ioProperties
	if err := yaml.Unmarshal(data, &props); err != nil {
		return nil, fmt.Errorf("failed to parse properties file: %v", err)
	}

	for _, d := range props.Disks {
		if d.Mountpoint == mountpoint {
			return &BaselineCapacity{
				Mountpoint:        d.Mountpoint,
				ReadIOPS:          d.ReadIOPS,
				WriteIOPS:         d.WriteIOPS,
				ReadBandwidthKBs:  d.ReadBandwidth / 1000,
				WriteBandwidthKBs: d.WriteBandwidth / 1000,
			}, nil
		}
	}
	return nil, &MissingBaselineError{Mountpoint: mountpoint}
}
