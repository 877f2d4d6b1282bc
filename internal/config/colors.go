package config

import "github.com/thenoetrevino/taskflow/internal/config/colors"

// ColorScheme is the theme section of the config file
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// PresetColorScheme returns a fully populated preset by name
func PresetColorScheme(name string) ColorScheme {
	return *colors.GetPreset(name)
}
