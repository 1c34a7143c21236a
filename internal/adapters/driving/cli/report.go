package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

// Palette for command output.
var (
	colourPrimary   = lipgloss.Color("#7C3AED") // Purple
	colourSecondary = lipgloss.Color("#06B6D4") // Cyan
	colourMuted     = lipgloss.Color("#6C7086") // Medium gray
	colourSuccess   = lipgloss.Color("#A6E3A1") // Green
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colourPrimary)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colourSecondary)
	mutedStyle   = lipgloss.NewStyle().Foreground(colourMuted)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colourSuccess)
)

const (
	deptColumnWidth  = 28
	countColumnWidth = 18
)

// renderReport prints per-department counts followed by totals.
func renderReport(cmd *cobra.Command, report *domain.SeedReport) {
	if report.RunID != "" {
		cmd.Println(successStyle.Render("Seeding complete"))
		cmd.Println(mutedStyle.Render("Run " + report.RunID))
	} else {
		cmd.Println(titleStyle.Render("Department stores"))
	}

	ep := report.Episode
	cmd.Printf("Episode: date=%s loop=%d episode=%d\n\n", ep.DateString(), ep.Loop, ep.Episode)

	cmd.Println(reportRow(headerStyle, "Department", collectionHeaders(), "Total"))
	for _, d := range report.Departments {
		counts := make([]string, 0, len(domain.Collections()))
		for _, c := range domain.Collections() {
			counts = append(counts, strconv.Itoa(d.Collections[c]))
		}
		cmd.Println(reportRow(lipgloss.NewStyle(), d.Department.String(), counts, strconv.Itoa(d.Total())))
	}

	cmd.Printf("\n%d documents across %d department stores\n", report.Total(), len(report.Departments))
}

func collectionHeaders() []string {
	headers := make([]string, 0, len(domain.Collections()))
	for _, c := range domain.Collections() {
		headers = append(headers, c.String())
	}
	return headers
}

func reportRow(style lipgloss.Style, first string, middle []string, last string) string {
	var b strings.Builder
	b.WriteString(style.Width(deptColumnWidth).Render(first))
	for _, cell := range middle {
		b.WriteString(style.Width(countColumnWidth).Render(cell))
	}
	b.WriteString(style.Render(last))
	return b.String()
}
