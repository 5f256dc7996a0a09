package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// appDirName is the directory under XDG_CONFIG_HOME.
const appDirName = "riskyexpand"

// Config file names.
const (
	TriggersFile = "triggers.conf"
	CommandsFile = "commands.conf"
	SettingsFile = "settings.toml"
)

// Dir returns the configuration directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// TriggersPath returns the path of the trigger definitions file.
func TriggersPath() string {
	return filepath.Join(Dir(), TriggersFile)
}

// CommandsPath returns the path of the command bindings file.
func CommandsPath() string {
	return filepath.Join(Dir(), CommandsFile)
}

// SettingsPath returns the path of the daemon settings file.
func SettingsPath() string {
	return filepath.Join(Dir(), SettingsFile)
}
