package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/limaJavier/enrollsim/pkg/enrollment"
	"github.com/limaJavier/enrollsim/pkg/model"
	"github.com/limaJavier/enrollsim/pkg/simulation"
	"github.com/samber/lo"
)

// Printer writes human-readable reports. Colors are only emitted when out is a terminal.
type Printer struct {
	out      io.Writer
	header   lipgloss.Style
	title    lipgloss.Style
	accepted lipgloss.Style
	rejected lipgloss.Style
	detail   lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	renderer := lipgloss.NewRenderer(out)
	return &Printer{
		out:      out,
		header:   renderer.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true),
		title:    renderer.NewStyle().Bold(true),
		accepted: renderer.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true),
		rejected: renderer.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		detail:   renderer.NewStyle().Foreground(lipgloss.Color("#A0AEC0")),
	}
}

func (printer *Printer) PrintPeriod(result simulation.PeriodResult) {
	fmt.Fprintln(printer.out, printer.header.Render(fmt.Sprintf("=== Period %d ===", result.Period)))
	fmt.Fprintln(printer.out, printer.detail.Render(fmt.Sprintf("run %v", result.Id)))
	if len(result.Students) == 0 {
		fmt.Fprintln(printer.out, "No student submitted a plan")
		return
	}
	for _, student := range result.Students {
		fmt.Fprintln(printer.out)
		printer.PrintReport(result.Reports[student])
	}
}

// PrintReport writes every entry with its full event log, then the summary and the weekly grid
func (printer *Printer) PrintReport(report *enrollment.Report) {
	student := report.Student()
	fmt.Fprintln(printer.out, printer.title.Render(fmt.Sprintf("Student: %v [%v]", student.Name, student.Id)))

	for _, entry := range report.Entries() {
		offering := entry.Offering
		fmt.Fprintf(printer.out, "--- %v (%v - %v) %v ---\n", offering.Id, offering.Course.Code, offering.Course.Name, offering.Schedule)
		for _, line := range entry.Log {
			fmt.Fprintf(printer.out, "  %v\n", printer.styleLine(line))
		}
	}

	summary := report.Summary()
	fmt.Fprintln(printer.out, printer.title.Render("Summary"))
	fmt.Fprintf(printer.out, "  processed: %d, accepted: %d, rejected: %d\n", summary.Processed, summary.Accepted, summary.Rejected)
	fmt.Fprintf(printer.out, "  weekly hours: %dh of %dh\n", summary.AcceptedHours, summary.WeeklyHourCap)

	for _, entry := range report.Rejections() {
		fmt.Fprintf(printer.out, "  %v %v: %v\n", printer.rejected.Render(entry.Status.String()), entry.Offering.Id, entry.Reason)
	}

	grid := report.Grid()
	if len(grid) == 0 {
		return
	}
	fmt.Fprintln(printer.out, printer.title.Render("Weekly grid"))
	for _, day := range grid {
		cells := lo.Map(day.Offerings, func(offering *model.Offering, _ int) string {
			return fmt.Sprintf("%dh-%dh %v", offering.Schedule.Start(), offering.Schedule.End(), offering.Course.Code)
		})
		fmt.Fprintf(printer.out, "  %-9v %v\n", day.Day, strings.Join(cells, " | "))
	}
}

func (printer *Printer) styleLine(line string) string {
	switch {
	case strings.HasSuffix(line, enrollment.Accepted.String()):
		return printer.accepted.Render(line)
	case strings.HasSuffix(line, enrollment.Rejected.String()):
		return printer.rejected.Render(line)
	case strings.HasPrefix(line, "FAIL") || strings.HasPrefix(line, "EVICTED"):
		return printer.rejected.Render(line)
	}
	return line
}
