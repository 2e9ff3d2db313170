// Package config defines the editor-construction options for the event
// layer. These are pure data structures with no dependency on any
// loader beyond YAML.
package config

import "fmt"

// AutoHandlers controls the auto-registration of extension event
// handlers at editor construction.
type AutoHandlers struct {
	// Disabled skips the auto-registration mechanism entirely.
	Disabled bool `yaml:"disabled"`

	// DisabledKinds lists event kind names that are never
	// auto-registered, regardless of what extensions expose.
	DisabledKinds []string `yaml:"disabled_kinds"`
}

// Options is the root option structure for the event layer.
type Options struct {
	// LogLevel sets the logger level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`

	// AutoHandlers configures extension handler auto-registration.
	AutoHandlers AutoHandlers `yaml:"auto_handlers"`
}

// Default returns the default options: info-level logging and
// auto-registration enabled for every kind.
func Default() *Options {
	return &Options{
		LogLevel: "info",
	}
}

// validLogLevels are the accepted LogLevel values.
var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the options for values no component would accept.
func (o *Options) Validate() error {
	if o.LogLevel != "" && !validLogLevels[o.LogLevel] {
		return fmt.Errorf("config: invalid log_level %q", o.LogLevel)
	}
	return nil
}
