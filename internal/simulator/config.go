package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileConfig is the HCL form of a simulation run:
//
//	boards     = 500
//	board_size = 3
//	seed       = 42
//	workers    = 4
type FileConfig struct {
	Boards    int   `hcl:"boards,optional"`
	BoardSize int   `hcl:"board_size,optional"`
	Seed      int64 `hcl:"seed,optional"`
	Workers   int   `hcl:"workers,optional"`
}

// DefaultFileConfig returns the settings used when no config file exists.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		Boards:    100,
		BoardSize: 3,
		Workers:   1,
	}
}

// LoadConfig loads simulator settings from an HCL file. A missing file
// yields the defaults.
func LoadConfig(filename string) (FileConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultFileConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return FileConfig{}, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var cfg FileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return FileConfig{}, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultFileConfig()
	if cfg.Boards == 0 {
		cfg.Boards = defaults.Boards
	}
	if cfg.BoardSize == 0 {
		cfg.BoardSize = defaults.BoardSize
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	return cfg, nil
}
