// Package config loads the optional stir.hcl file shared by the STIR tools.
//
//	color        = true
//	loop_timeout = "5s"
//
//	log {
//	  verbosity = 1
//	  path      = "stir.log"
//	}
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileName is the config file the tools look for in the working directory.
const FileName = "stir.hcl"

// Config is the resolved tool configuration.
type Config struct {
	// Color enables colored diagnostics.
	Color bool

	// LoopTimeout bounds how long loops may run while frying. Zero means no
	// bound.
	LoopTimeout time.Duration

	// Verbosity is handed to commonlog.Configure.
	Verbosity int

	// LogPath is the log file; empty logs to standard error.
	LogPath string
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Color: true}
}

type hclFile struct {
	Color       *bool    `hcl:"color,optional"`
	LoopTimeout *string  `hcl:"loop_timeout,optional"`
	Log         *hclLog  `hcl:"log,block"`
	Remain      hcl.Body `hcl:",remain"`
}

type hclLog struct {
	Verbosity *int    `hcl:"verbosity,optional"`
	Path      *string `hcl:"path,optional"`
}

// Load reads the config file at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse decodes config source held in memory.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Config, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", filename, diags)
	}

	// unknown top-level settings are tolerated so newer files still load
	cfg := Default()
	if parsed.Color != nil {
		cfg.Color = *parsed.Color
	}

	if parsed.LoopTimeout != nil {
		d, err := time.ParseDuration(*parsed.LoopTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid loop_timeout in %s: %w", filename, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("invalid loop_timeout in %s: must not be negative", filename)
		}
		cfg.LoopTimeout = d
	}

	if parsed.Log != nil {
		if parsed.Log.Verbosity != nil {
			cfg.Verbosity = *parsed.Log.Verbosity
		}
		if parsed.Log.Path != nil {
			cfg.LogPath = *parsed.Log.Path
		}
	}

	return cfg, nil
}
