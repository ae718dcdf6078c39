package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode resolves a --color flag value; "auto" and unknown values detect from the environment
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	t := os.Getenv("TERM")
	if strings.Contains(t, "truecolor") ||
		strings.Contains(t, "24bit") ||
		strings.Contains(t, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ApplyColorMode tells tcell whether to emit 24-bit color; must run before the screen is created
func ApplyColorMode(m ColorMode) error {
	if m == ColorModeTrueColor {
		return os.Unsetenv("TCELL_TRUECOLOR")
	}
	return os.Setenv("TCELL_TRUECOLOR", "disable")
}
