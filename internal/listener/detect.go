package listener

import (
	"errors"
	"fmt"
	"strings"

	evdev "github.com/holoplot/go-evdev"

	"github.com/emmertex/riskyexpand/internal/logging"
)

// Detection errors.
var (
	// ErrNoKeyboard indicates no suitable keyboard device was found.
	ErrNoKeyboard = errors.New("no suitable keyboard device found")

	// ErrAmbiguousKeyboard indicates several candidates remained after
	// every heuristic; the device must be pinned in settings.
	ErrAmbiguousKeyboard = errors.New("multiple keyboard candidates")
)

// excludedNameParts filters out virtual devices and non-keyboards by
// name. ydotool's own uinput device must never be monitored or every
// injected key would feed back into the buffer.
var excludedNameParts = []string{
	"virtual", "ydotool", "dummy", "mouse", "touchpad",
	"power button", "sleep button", "webcam",
}

// requiredKeys are codes every real keyboard exposes; devices missing
// any of them (consumer-control endpoints, buttons) are skipped.
var requiredKeys = []evdev.EvCode{
	evdev.KEY_A, evdev.KEY_Q, evdev.KEY_W, evdev.KEY_E, evdev.KEY_R,
	evdev.KEY_T, evdev.KEY_Y, evdev.KEY_SPACE, evdev.KEY_ENTER,
	evdev.KEY_LEFTSHIFT, evdev.KEY_BACKSPACE,
}

// priorityKeywords select among multiple candidates; every keyword in a
// group must appear in the device name. Ordered most specific first.
var priorityKeywords = [][]string{
	{"zmk", "keyboard"},
	{"qmk", "keyboard"},
	{"zsa", "keyboard"},
	{"logitech", "keyboard"},
	{"microsoft", "keyboard"},
	{"dell", "keyboard"},
	{"lenovo", "keyboard"},
	{"thinkpad", "keyboard"},
	{"usb", "keyboard"},
	{"keyboard"},
}

// Device describes one keyboard candidate.
type Device struct {
	// Path is the /dev/input/eventN path.
	Path string

	// Name is the device name reported by the kernel.
	Name string

	// Keys is the number of key codes the device advertises.
	Keys int
}

// Candidates returns every input device that looks like a real
// keyboard, for the `devices` command and for auto-detection.
func Candidates() ([]Device, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("listing input devices: %w", err)
	}

	log := logging.GetLogger("listener")
	var candidates []Device

	for _, p := range paths {
		name := strings.ToLower(p.Name)
		if excludedName(name) {
			continue
		}

		dev, err := evdev.Open(p.Path)
		if err != nil {
			log.Debug().Str("path", p.Path).Err(err).Msg("cannot open input device")
			continue
		}

		keys := keyCapabilities(dev)
		dev.Close()

		if !hasRequiredKeys(keys) {
			continue
		}

		candidates = append(candidates, Device{Path: p.Path, Name: p.Name, Keys: len(keys)})
	}

	return candidates, nil
}

// FindKeyboard auto-selects the keyboard device to monitor.
func FindKeyboard() (Device, error) {
	candidates, err := Candidates()
	if err != nil {
		return Device{}, err
	}
	if len(candidates) == 0 {
		return Device{}, ErrNoKeyboard
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	if best, ok := selectByKeyword(candidates); ok {
		return best, nil
	}
	if best, ok := selectByKeyCount(candidates); ok {
		return best, nil
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return Device{}, fmt.Errorf("%w: %s; set device in settings.toml", ErrAmbiguousKeyboard, strings.Join(names, ", "))
}

func excludedName(lowerName string) bool {
	for _, part := range excludedNameParts {
		if strings.Contains(lowerName, part) {
			return true
		}
	}
	return false
}

func keyCapabilities(dev *evdev.InputDevice) map[evdev.EvCode]bool {
	keys := make(map[evdev.EvCode]bool)
	for _, t := range dev.CapableTypes() {
		if t != evdev.EV_KEY {
			continue
		}
		for _, code := range dev.CapableEvents(t) {
			keys[code] = true
		}
	}
	return keys
}

func hasRequiredKeys(keys map[evdev.EvCode]bool) bool {
	for _, code := range requiredKeys {
		if !keys[code] {
			return false
		}
	}
	return true
}

// selectByKeyword picks the first candidate matching a priority
// keyword group.
func selectByKeyword(candidates []Device) (Device, bool) {
	for _, group := range priorityKeywords {
		for _, c := range candidates {
			name := strings.ToLower(c.Name)
			matched := true
			for _, kw := range group {
				if !strings.Contains(name, kw) {
					matched = false
					break
				}
			}
			if matched {
				return c, true
			}
		}
	}
	return Device{}, false
}

// selectByKeyCount picks the candidate with the most keys, but only if
// it clearly dominates (half again as many as the runner-up).
func selectByKeyCount(candidates []Device) (Device, bool) {
	best, secondBest := 0, 0
	var bestDev Device
	for _, c := range candidates {
		if c.Keys > best {
			secondBest = best
			best = c.Keys
			bestDev = c
		} else if c.Keys > secondBest {
			secondBest = c.Keys
		}
	}
	if best > 0 && float64(best) > float64(secondBest)*1.5 {
		return bestDev, true
	}
	return Device{}, false
}
