// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config reads deskkit.yaml and DESKKIT_* environment overrides
// into a validated types.Config.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/deskkit/pkg/types"
)

const (
	// Name is the config file base name searched for in the working
	// directory and ~/.config/deskkit.
	Name = "deskkit"

	// EnvPrefix prefixes every environment override, so pdf.font_size
	// is read from DESKKIT_PDF_FONT_SIZE.
	EnvPrefix = "DESKKIT"
)

// New returns a viper instance with defaults, environment bindings, and,
// when one is found, the config file loaded. cfgFile overrides the search;
// a missing search result is not an error but a missing cfgFile is.
func New(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, types.DefaultConfig())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("inflation.current_year", d.Inflation.CurrentYear)
	v.SetDefault("pdf.font_name", d.PDF.FontName)
	v.SetDefault("pdf.font_size", d.PDF.FontSize)
	v.SetDefault("pdf.edge_offset", d.PDF.EdgeOffset)
	v.SetDefault("pdf.split_prefix", d.PDF.SplitPrefix)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", string(d.Log.Format))
}
