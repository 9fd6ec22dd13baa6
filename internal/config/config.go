// Package config loads the optional YAML settings file.
//
// Every field is optional. Command-line flags override file values, and
// file values override Default.
//
//	catalog: data/catalog.yaml
//	database: ""
//	page_size: 25
//	sort:
//	  column: retail
//	  direction: desc
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/ordering"
	"github.com/krakozavr/Inventory/internal/paging"
)

// Config holds the settings read from a config file.
type Config struct {
	Catalog  string `yaml:"catalog"`
	Database string `yaml:"database"`
	PageSize int    `yaml:"page_size"`
	Sort     Sort   `yaml:"sort"`
}

// Sort is the initial sort column and direction.
type Sort struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction"`
}

// Default returns the built-in settings: page size 50, sku ascending.
func Default() Config {
	return Config{
		PageSize: paging.DefaultSize,
		Sort:     Sort{Column: catalog.ColumnSKU.String(), Direction: ordering.Ascending.String()},
	}
}

// Load reads path over Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML settings from r over Default. An empty document yields
// Default unchanged.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the page size and sort settings.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("invalid config: page_size must be at least 1, got %d", c.PageSize)
	}
	if _, err := c.SortSpec(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SortSpec resolves the configured sort. An empty column means sku.
func (c Config) SortSpec() (ordering.Spec, error) {
	spec := ordering.Default()
	if c.Sort.Column != "" {
		col, err := catalog.ParseColumn(c.Sort.Column)
		if err != nil {
			return ordering.Spec{}, err
		}
		spec.Column = col
	}
	dir, err := ordering.ParseDirection(c.Sort.Direction)
	if err != nil {
		return ordering.Spec{}, err
	}
	spec.Direction = dir
	return spec, nil
}
