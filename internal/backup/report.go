package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/kidquest/internal/config"
	"github.com/akyairhashvil/kidquest/internal/models"
	"github.com/akyairhashvil/kidquest/internal/tracker"
)

// ReportName is the PDF name for a report generated at now.
func ReportName(now time.Time) string {
	return fmt.Sprintf("%s-%s.pdf", config.ReportPrefix, now.Format(timestampFmt))
}

func buildReport(state models.TrackerState, now time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetTitle("Mission report", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Mission report")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, now.Format("Monday, January 2, 2006 15:04"))
	pdf.Ln(12)

	stats := tracker.ComputeStats(state.Kids, state.Tasks)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Missions complete: %d of %d (%d%%)", stats.Completed, stats.Total, stats.Progress))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Points bank: %d", stats.TotalPoints))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("High-five streak: %d days", stats.HighestStreak))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Leaderboard")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for i, kid := range tracker.Leaderboard(state.Kids) {
		line := fmt.Sprintf("%d. %s · Level %d · %d pts · %d day streak",
			i+1, kid.Name, tracker.Level(kid.Points), kid.Points, kid.Streak)
		pdf.Cell(0, 8, tr(line))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	for _, r := range tracker.KidRollups(state.Kids, state.Tasks) {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, tr(fmt.Sprintf("%s (%d of %d done)", r.Kid.Name, r.Completed, len(r.Tasks))))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		if len(r.Tasks) == 0 {
			pdf.Cell(0, 8, "  - No missions assigned.")
			pdf.Ln(8)
		}
		for _, task := range r.Tasks {
			mark := "[ ]"
			if task.Done() {
				mark = "[x]"
			}
			line := fmt.Sprintf("  %s %s · %s · +%d pts", mark, task.Title, task.DueLabel, task.Reward)
			pdf.MultiCell(0, 7, tr(line), "", "", false)
		}
		pdf.Ln(4)
	}
	return pdf
}

// WriteReport renders the PDF report for state to w.
func WriteReport(w io.Writer, state models.TrackerState, now time.Time) error {
	return buildReport(state, now).Output(w)
}

// SaveReport writes the PDF report into dir and returns its path.
func SaveReport(dir string, state models.TrackerState, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, ReportName(now))
	if err := buildReport(state, now).OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
