package wizard

import (
	"sort"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme selects the visual style for form mode prompts.
type Theme string

const (
	ThemeCharm      Theme = "charm"
	ThemeDracula    Theme = "dracula"
	ThemeCatppuccin Theme = "catppuccin"
	ThemeBase16     Theme = "base16"
)

var huhThemes = map[Theme]func() *huh.Theme{
	ThemeCharm:      huh.ThemeCharm,
	ThemeDracula:    huh.ThemeDracula,
	ThemeCatppuccin: huh.ThemeCatppuccin,
	ThemeBase16:     huh.ThemeBase16,
}

func huhTheme(t Theme) *huh.Theme {
	if fn, ok := huhThemes[t]; ok {
		return fn()
	}
	return huh.ThemeCharm()
}

// ThemeNames returns the selectable theme names, sorted for flag help.
func ThemeNames() []string {
	names := make([]string, 0, len(huhThemes))
	for k := range huhThemes {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}

// Colors for session output around the prompts, shared by both modes.
const (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	ruleStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarning)
)
