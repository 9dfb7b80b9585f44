package ui

import (
	"image/color"
	"sort"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the colors used across the UI. Host apps can supply their
// own palette; nil fields render unstyled.
type Theme struct {
	BreadcrumbColor color.Color // breadcrumb path line
	KeyColor        color.Color // key column
	ValueColor      color.Color // value column
	SelectedFG      color.Color // highlighted row foreground
	SelectedBG      color.Color // highlighted row background
	MarkerColor     color.Color // cursor marker
	StatusColor     color.Color // footer status text
	HelpKey         color.Color // footer key labels
	HelpValue       color.Color // footer key descriptions
	PlaceholderFG   color.Color // "Entry is empty" text
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// ThemePresets maps selectable theme names to palettes.
var ThemePresets = map[string]Theme{
	"dark":  darkTheme(),
	"light": lightTheme(),
	"mono":  {},
}

// DefaultTheme returns the dark palette.
func DefaultTheme() Theme {
	return darkTheme()
}

func darkTheme() Theme {
	return Theme{
		BreadcrumbColor: lipgloss.Color("81"),  // cyan path for contrast
		KeyColor:        lipgloss.Color("14"),
		ValueColor:      lipgloss.Color("246"), // muted gray values
		SelectedFG:      lipgloss.Color("250"),
		SelectedBG:      lipgloss.Color("238"),
		MarkerColor:     lipgloss.Color("212"),
		StatusColor:     lipgloss.Color("245"),
		HelpKey:         lipgloss.Color("81"),
		HelpValue:       lipgloss.Color("241"),
		PlaceholderFG:   lipgloss.Color("241"),
	}
}

func lightTheme() Theme {
	return Theme{
		BreadcrumbColor: lipgloss.Color("25"),
		KeyColor:        lipgloss.Color("19"),
		ValueColor:      lipgloss.Color("238"),
		SelectedFG:      lipgloss.Color("231"),
		SelectedBG:      lipgloss.Color("25"),
		MarkerColor:     lipgloss.Color("161"),
		StatusColor:     lipgloss.Color("240"),
		HelpKey:         lipgloss.Color("25"),
		HelpValue:       lipgloss.Color("244"),
		PlaceholderFG:   lipgloss.Color("244"),
	}
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// ApplyThemeByName activates a preset. Unknown names are reported so the CLI
// can fail fast instead of silently rendering the default palette.
func ApplyThemeByName(name string) bool {
	th, ok := ThemePresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	SetCurrentTheme(th)
	return true
}

// ThemeNames lists the selectable presets in sorted order for help output.
func ThemeNames() []string {
	names := make([]string, 0, len(ThemePresets))
	for name := range ThemePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
