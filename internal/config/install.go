package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emmertex/riskyexpand/internal/logging"
)

//go:embed defaults/triggers.conf defaults/commands.conf defaults/settings.toml
var defaultFiles embed.FS

// Install copies the commented default config files into dir, creating
// it if needed. Existing files are left untouched unless force is set.
func Install(dir string, force bool) error {
	log := logging.GetLogger("config")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	for _, name := range []string{TriggersFile, CommandsFile, SettingsFile} {
		dest := filepath.Join(dir, name)

		if !force {
			if _, err := os.Stat(dest); err == nil {
				log.Info().Str("file", dest).Msg("config file exists, skipping")
				continue
			}
		}

		data, err := defaultFiles.ReadFile("defaults/" + name)
		if err != nil {
			return fmt.Errorf("reading embedded default %s: %w", name, err)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		log.Info().Str("file", dest).Msg("installed default config file")
	}

	return nil
}
