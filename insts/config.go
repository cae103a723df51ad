package insts

import (
	"encoding/json"
	"fmt"
	"os"
)

// Encoding selects one of the two instruction set encodings.
type Encoding uint8

// Instruction set encodings.
const (
	// EncodingCompact is the variable-length 16/32-bit encoding.
	EncodingCompact Encoding = iota
	// EncodingLegacy is the fixed 32-bit encoding of the A4 cores.
	EncodingLegacy
)

func (e Encoding) String() string {
	switch e {
	case EncodingCompact:
		return "compact"
	case EncodingLegacy:
		return "legacy"
	}
	return fmt.Sprintf("encoding(%d)", uint8(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Encoding) MarshalText() ([]byte, error) {
	switch e {
	case EncodingCompact, EncodingLegacy:
		return []byte(e.String()), nil
	}
	return nil, fmt.Errorf("unknown encoding %d", uint8(e))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Encoding) UnmarshalText(text []byte) error {
	enc, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*e = enc
	return nil
}

// ParseEncoding converts "compact" or "legacy" to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	switch s {
	case "compact":
		return EncodingCompact, nil
	case "legacy":
		return EncodingLegacy, nil
	}
	return 0, fmt.Errorf("unknown encoding %q", s)
}

// Config holds the decoder mode flags. A Decoder copies its Config at
// construction.
type Config struct {
	// Format selects the instruction encoding. Default: compact.
	Format Encoding `json:"format"`

	// Simplify enables alias folding: scaled-offset collapse, indexed
	// add/sub folding and compare-from-subtract folding. Default: true.
	Simplify bool `json:"simplify"`

	// InlineConst rewrites word loads relative to PCL into direct memory
	// references when the target is mapped. Default: true.
	InlineConst bool `json:"inline_const"`
}

// DefaultConfig returns the compact encoding with both normalization
// passes enabled.
func DefaultConfig() *Config {
	return &Config{
		Format:      EncodingCompact,
		Simplify:    true,
		InlineConst: true,
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoder config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse decoder config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig writes a Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize decoder config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write decoder config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration names a known encoding.
func (c *Config) Validate() error {
	if c.Format != EncodingCompact && c.Format != EncodingLegacy {
		return fmt.Errorf("format must be compact or legacy, got %d", uint8(c.Format))
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
