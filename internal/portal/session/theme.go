package session

import "strings"

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme reads a stored preference. Anything unknown means light.
func ParseTheme(value string) Theme {
	if strings.EqualFold(strings.TrimSpace(value), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
