// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// InflationConfig holds settings for the inflation calculator.
type InflationConfig struct {
	// CurrentYear is the year prices are entered in (default 2023).
	CurrentYear int `json:"current_year" yaml:"current_year" mapstructure:"current_year"`
}

// PDFConfig holds settings shared by the PDF editor operations.
type PDFConfig struct {
	// FontName is the standard Type 1 font used for inserted text.
	FontName string `json:"font_name" yaml:"font_name" mapstructure:"font_name"`

	// FontSize is the point size of inserted text (default 11).
	FontSize float64 `json:"font_size" yaml:"font_size" mapstructure:"font_size"`

	// EdgeOffset is the distance in points kept from a page edge when
	// placing text (default 10).
	EdgeOffset float64 `json:"edge_offset" yaml:"edge_offset" mapstructure:"edge_offset"`

	// SplitPrefix names split output files: <prefix>_<N>.pdf (default "page").
	SplitPrefix string `json:"split_prefix" yaml:"split_prefix" mapstructure:"split_prefix"`
}

// LogFormat selects the diagnostic log encoding.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is a zerolog level name: debug, info, warn, error, disabled.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is console (human readable) or json.
	Format LogFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// Config groups the settings of both tools. One file serves both binaries;
// each reads only its own section plus log.
type Config struct {
	Inflation InflationConfig `json:"inflation" yaml:"inflation" mapstructure:"inflation"`
	PDF       PDFConfig       `json:"pdf" yaml:"pdf" mapstructure:"pdf"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the settings used when no config file or
// environment override is present.
func DefaultConfig() Config {
	return Config{
		Inflation: InflationConfig{
			CurrentYear: 2023,
		},
		PDF: PDFConfig{
			FontName:    "Helvetica",
			FontSize:    11,
			EdgeOffset:  10,
			SplitPrefix: "page",
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.PDF.FontSize <= 0 {
		return fmt.Errorf("pdf.font_size must be positive, got %v", c.PDF.FontSize)
	}
	if c.PDF.EdgeOffset < 0 {
		return fmt.Errorf("pdf.edge_offset must not be negative, got %v", c.PDF.EdgeOffset)
	}
	if strings.TrimSpace(c.PDF.FontName) == "" {
		return fmt.Errorf("pdf.font_name must not be empty")
	}
	if strings.ContainsAny(c.PDF.SplitPrefix, `/\`) || c.PDF.SplitPrefix == "" {
		return fmt.Errorf("pdf.split_prefix %q is not a valid file name prefix", c.PDF.SplitPrefix)
	}
	switch c.Log.Format {
	case LogConsole, LogJSON:
	default:
		return fmt.Errorf("unsupported log.format %q: use console or json", c.Log.Format)
	}
	return nil
}
