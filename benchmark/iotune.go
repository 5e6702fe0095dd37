package benchmark

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// EnsureIOProperties reuses an existing capacity-probe output file or runs
// the probe once to produce it. Probing writes to the target directory and
// can take minutes on slow devices.
func EnsureIOProperties(params HarnessParams) error {
	if _, err := os.Stat(params.PropertiesFile); err == nil {
		fmt.Println("Using existing io properties file")
		return nil
	}

	fmt.Println("Running capacity probe...")
	cmd := exec.Command(filepath.Join(params.BuildDir, "apps", "iotune", "iotune"),
		"--evaluation-directory", params.Directory,
		"-c1",
		"--properties-file", params.PropertiesFile)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &ExternalToolError{Tool: "iotune", Err: err}
	}
	return nil
}
