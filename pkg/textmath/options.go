package textmath

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls detector behaviour. Start from DefaultOptions or
// LoadOptionsFile rather than the zero value.
type Options struct {
	// MaxScanLength caps the length in bytes of text the scanner will
	// examine. Longer inputs yield no matches at all; text of exactly this
	// length is still processed.
	MaxScanLength int `yaml:"max_scan_length"`

	// RoundDigits is the number of decimal places kept for non-integer
	// results. Integer-valued results are never rounded.
	RoundDigits int `yaml:"round_digits"`
}

const (
	defaultMaxScanLength = 10000
	defaultRoundDigits   = 6
)

// DefaultOptions returns the stock detector configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxScanLength: defaultMaxScanLength,
		RoundDigits:   defaultRoundDigits,
	}
}

// LoadOptionsFile reads a YAML options file and overlays it on the
// defaults. Omitted or non-positive fields keep their default values.
func LoadOptionsFile(filename string) (*Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	var loaded Options
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse options file: %w", err)
	}

	opts := DefaultOptions()
	if loaded.MaxScanLength > 0 {
		opts.MaxScanLength = loaded.MaxScanLength
	}
	if loaded.RoundDigits > 0 {
		opts.RoundDigits = loaded.RoundDigits
	}
	return opts, nil
}
