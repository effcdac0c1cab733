package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/kidquest/internal/models"
)

type Theme struct {
	Name          string
	Border        lipgloss.Color
	LeaderBorder  lipgloss.Color
	Header        lipgloss.Style
	Task          lipgloss.Style
	CompletedTask lipgloss.Style
	Reward        lipgloss.Style
	Celebrate     lipgloss.Style
	Input         lipgloss.Style
	Badge         lipgloss.Style
	Error         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	ProgressFrom  string
	ProgressTo    string
	// Categories styles category labels, keyed by Category.Slug.
	Categories    map[string]lipgloss.Style
}

// CategoryStyle returns the label style for c, Dim for unknown categories.
func (t Theme) CategoryStyle(c models.Category) lipgloss.Style {
	if style, ok := t.Categories[c.Slug()]; ok {
		return style
	}
	return t.Dim
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Border:        lipgloss.Color("63"),
		LeaderBorder:  lipgloss.Color("220"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Task:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		Reward:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Celebrate:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(60),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		ProgressFrom:  "#7c8dff",
		ProgressTo:    "#53e0c0",
		Categories:    map[string]lipgloss.Style{
			"morning":      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			"after-school": lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			"chores":       lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			"bonus":        lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		},
	},
	"dracula": {
		Name:          "Dracula",
		Border:        lipgloss.Color("62"),
		LeaderBorder:  lipgloss.Color("228"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Task:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		CompletedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		Reward:        lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Celebrate:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(60),
		Badge:         lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		ProgressFrom:  "#bd93f9",
		ProgressTo:    "#50fa7b",
		Categories:    map[string]lipgloss.Style{
			"morning":      lipgloss.NewStyle().Foreground(lipgloss.Color("228")),
			"after-school": lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			"chores":       lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
			"bonus":        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	},
}

// ThemeOrder is the cycle order for the theme key.
var ThemeOrder = []string{"default", "dracula"}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme activates name and reports whether it exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

func nextThemeName(current string) string {
	for i, name := range ThemeOrder {
		if name == current {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}
