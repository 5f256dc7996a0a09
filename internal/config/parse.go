package config

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/emmertex/riskyexpand/internal/logging"
)

// ParseFile reads a line-oriented "key: value" config file. A missing
// file is not an error; it parses as an empty set, matching the
// behavior of running before any config has been installed.
func ParseFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, path), nil
}

// ParseReader parses "key: value" lines. Blank lines and lines starting
// with '#' are skipped. Malformed lines and duplicate keys are skipped
// with a warning; one bad line never prevents the rest from loading.
func ParseReader(r io.Reader, path string) map[string]string {
	log := logging.GetLogger("config")

	pairs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			log.Warn().Str("file", path).Int("line", lineNo).Msg("skipping malformed config line")
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			log.Warn().Str("file", path).Int("line", lineNo).Msg("skipping config line with empty key or value")
			continue
		}

		if _, dup := pairs[key]; dup {
			log.Warn().Str("file", path).Int("line", lineNo).Str("key", key).Msg("skipping duplicate config key")
			continue
		}

		pairs[key] = value
	}

	if err := scanner.Err(); err != nil {
		log.Warn().Str("file", path).Err(err).Msg("stopped reading config early")
	}

	return pairs
}
