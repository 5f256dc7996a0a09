// Package logging configures the global zerolog logger for riskyexpand.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger based on verbosity level.
// Output goes to stderr; when a state directory is available a log file
// is written as well so a backgrounded daemon stays debuggable.
func Setup(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}

	writers := []io.Writer{console}

	logPath := stateLogPath()
	file, err := openLogFile(logPath)
	if err == nil {
		writers = append(writers, file)
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", logPath).Msg("logging to console only")
	}

	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}
}

// SetLevel overrides the global level by name ("debug", "info", ...).
// Unknown names are ignored so a bad settings value cannot silence logs.
func SetLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("level", name).Msg("unknown log level in settings")
		return
	}
	zerolog.SetGlobalLevel(level)
}

// GetLogger returns a logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// stateLogPath returns the log file path under XDG_STATE_HOME.
func stateLogPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "riskyexpand.log"
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "riskyexpand", "riskyexpand.log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
