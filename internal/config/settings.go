package config

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Settings holds daemon tunables from settings.toml. All fields have
// defaults; the file is optional.
type Settings struct {
	// Device optionally pins the keyboard device path, bypassing
	// auto-detection (e.g. "/dev/input/event3").
	Device string `koanf:"device"`

	// DispatchTimeout bounds each backend call so a stalled external
	// daemon cannot block the matching loop.
	DispatchTimeout time.Duration `koanf:"dispatch_timeout"`

	// QueueSize bounds the keystroke event queue between the listener
	// and the processing loop.
	QueueSize int `koanf:"queue_size"`

	// PendingDispatches bounds how many matched expansions may wait
	// while a dispatch is in flight.
	PendingDispatches int `koanf:"pending_dispatches"`

	// LogLevel overrides the log level ("debug", "info", "warn", ...).
	LogLevel string `koanf:"log_level"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		DispatchTimeout:   3 * time.Second,
		QueueSize:         256,
		PendingDispatches: 8,
	}
}

// defaultsMap mirrors DefaultSettings for the koanf base layer.
func defaultsMap() map[string]interface{} {
	d := DefaultSettings()
	return map[string]interface{}{
		"device":             d.Device,
		"dispatch_timeout":   d.DispatchTimeout.String(),
		"queue_size":         d.QueueSize,
		"pending_dispatches": d.PendingDispatches,
		"log_level":          d.LogLevel,
	}
}

// LoadSettings reads settings.toml layered over the defaults. A missing
// file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return Settings{}, fmt.Errorf("loading default settings: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Settings{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}

	if s.QueueSize <= 0 {
		s.QueueSize = DefaultSettings().QueueSize
	}
	if s.PendingDispatches <= 0 {
		s.PendingDispatches = DefaultSettings().PendingDispatches
	}
	if s.DispatchTimeout <= 0 {
		s.DispatchTimeout = DefaultSettings().DispatchTimeout
	}

	return s, nil
}
