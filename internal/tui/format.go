package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
)

// truncate shortens s to width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

func formatPoints(points int) string {
	return fmt.Sprintf("+%d pts", points)
}

// formatUpcoming is one "Next up" line: icon title · kid · due +N pts.
func formatUpcoming(task models.Task, kidName string) string {
	due := task.DueLabel
	if due == "" {
		due = task.TimeOfDay
	}
	return fmt.Sprintf("%s %s · %s · %s %s", task.Icon, task.Title, kidName, due, formatPoints(task.Reward))
}

// formatBadges joins up to MaxBadgesDisplayed badges, noting how many more exist.
func formatBadges(badges []string) string {
	if len(badges) == 0 {
		return ""
	}
	shown := badges
	if len(shown) > config.MaxBadgesDisplayed {
		shown = shown[:config.MaxBadgesDisplayed]
	}
	out := strings.Join(shown, " · ")
	if extra := len(badges) - len(shown); extra > 0 {
		out += fmt.Sprintf(" +%d", extra)
	}
	return out
}

func formatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
