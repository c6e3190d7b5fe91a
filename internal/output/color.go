package output

import (
	"fmt"
	"os"
)

// Reset ends an ANSI color sequence.
const Reset = "\x1b[0m"

// BrightPalette is handed out in order to keys without a fixed color.
var BrightPalette = []string{
	"\x1b[96m", // bright cyan
	"\x1b[92m", // bright green
	"\x1b[93m", // bright yellow
	"\x1b[95m", // bright magenta
	"\x1b[91m", // bright red
	"\x1b[94m", // bright blue
	"\x1b[36m", // cyan
	"\x1b[33m", // yellow
}

// BucketColors are the fixed colors of the relative time buckets.
var BucketColors = map[string]string{
	"just-now":    "\x1b[92m",
	"millisecond": "\x1b[92m",
	"today":       "\x1b[96m",
	"yesterday":   "\x1b[93m",
	"tomorrow":    "\x1b[93m",
	"weekday":     "\x1b[95m",
	"range":       "\x1b[95m",
	"cascade":     "\x1b[94m",
	"calendar":    "\x1b[90m",
	"fallback":    "\x1b[90m",
}

// ColorManager maps keys to ANSI colors. Keys with a fixed color always get
// it; other keys are assigned BrightPalette entries in first-seen order,
// cycling once the palette is exhausted.
type ColorManager struct {
	fixed   map[string]string
	palette []string
	assign  map[string]int
}

// NewColorManager returns a ColorManager using BucketColors and BrightPalette.
func NewColorManager() *ColorManager {
	return &ColorManager{
		fixed:   BucketColors,
		palette: BrightPalette,
		assign:  make(map[string]int),
	}
}

// ColorFor returns the color of key.
func (cm *ColorManager) ColorFor(key string) string {
	if c, ok := cm.fixed[key]; ok {
		return c
	}
	idx, ok := cm.assign[key]
	if !ok {
		idx = len(cm.assign)
		cm.assign[key] = idx
	}
	return cm.palette[idx%len(cm.palette)]
}

// Wrap colors text with the color of key.
func (cm *ColorManager) Wrap(text, key string) string {
	return cm.ColorFor(key) + text + Reset
}

// ColorMode is the value of a --color flag.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color flag value. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (valid: auto, always, never)", s)
}

// ResolveColor reports whether to emit color. "always" wins over NO_COLOR;
// "auto" honors a non-empty NO_COLOR and otherwise follows isTTY.
func ResolveColor(mode ColorMode, isTTY bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return isTTY
	}
}
