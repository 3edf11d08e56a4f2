package config

import (
	"fmt"

	"github.com/specmark/amath/amath"
)

const (
	BackendGo     = "go"
	BackendNative = "native"

	DisplayInline = "inline"
	DisplayBlock  = "block"
)

// Config is the root configuration structure.
type Config struct {
	Backend       string `json:"backend"`       // "go" or "native"
	Display       string `json:"display"`       // "inline" or "block"
	Color         bool   `json:"color"`         // highlight MathML on terminals
	Style         string `json:"style"`         // chroma style name
	MaxInputBytes int    `json:"maxInputBytes"` // translator input limit
	MaxDepth      int    `json:"maxDepth"`      // translator nesting limit
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Backend:       BackendGo,
		Display:       DisplayInline,
		Color:         false,
		Style:         "monokai",
		MaxInputBytes: amath.DefaultMaxInputBytes,
		MaxDepth:      amath.DefaultMaxDepth,
	}
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendGo, BackendNative:
	default:
		return fmt.Errorf("config: unknown backend %q (want %q or %q)", c.Backend, BackendGo, BackendNative)
	}
	switch c.Display {
	case DisplayInline, DisplayBlock:
	default:
		return fmt.Errorf("config: unknown display %q (want %q or %q)", c.Display, DisplayInline, DisplayBlock)
	}
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("config: maxInputBytes must be positive, got %d", c.MaxInputBytes)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("config: maxDepth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// TranslatorOptions maps the configuration onto pure-Go translator options.
func (c *Config) TranslatorOptions() amath.Options {
	return amath.Options{
		Display:       c.Display == DisplayBlock,
		MaxInputBytes: c.MaxInputBytes,
		MaxDepth:      c.MaxDepth,
	}
}
