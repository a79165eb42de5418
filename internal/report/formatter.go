package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

type Formatter interface {
	Format(report *Report) (string, error)
}

type TableFormatter struct {
	colorize bool
}

func NewTableFormatter(colorize bool) *TableFormatter {
	return &TableFormatter{colorize: colorize}
}

func (f *TableFormatter) Format(report *Report) (string, error) {
	var output strings.Builder

	if f.colorize {
		color.Set(color.FgCyan, color.Bold)
	}
	output.WriteString(fmt.Sprintf("Connascence Report - %s\n", report.Repository))
	if report.Branch != "" {
		output.WriteString(fmt.Sprintf("Branch: %s | Commit: %s\n", report.Branch, shortHash(report.CommitHash)))
	}
	output.WriteString(fmt.Sprintf("Scan completed at: %s (took %s)\n\n",
		report.Timestamp.Format("2006-01-02 15:04:05"), report.Duration))

	if f.colorize {
		color.Unset()
	}

	f.writeSummary(&output, report)
	f.writeCodeStats(&output, &report.CodeStats)

	if len(report.Violations) > 0 {
		output.WriteString("\nViolations Found:\n")
		f.writeViolationsTable(&output, report.Violations)
	} else {
		output.WriteString("\n")
		if f.colorize {
			color.Set(color.FgGreen, color.Bold)
		}
		output.WriteString("✅ No violations found!\n")
		if f.colorize {
			color.Unset()
		}
	}

	return output.String(), nil
}

func (f *TableFormatter) writeSummary(output *strings.Builder, report *Report) {
	if f.colorize {
		color.Set(color.FgYellow, color.Bold)
	}
	output.WriteString("Summary:\n")
	if f.colorize {
		color.Unset()
	}

	output.WriteString(fmt.Sprintf("  Files Analyzed: %d\n", report.FilesAnalyzed))
	output.WriteString(fmt.Sprintf("  Files Skipped:  %d\n", report.FilesSkipped))
	output.WriteString(fmt.Sprintf("  Total Violations: %d\n", report.Summary.TotalViolations))
	output.WriteString(fmt.Sprintf("  Health Score: %d/100 (Grade: %s)\n", report.Summary.Score, report.Summary.Grade))

	if report.Summary.TotalViolations > 0 {
		f.writeSeverityCounts(output, &report.Summary)
	}
}

func (f *TableFormatter) writeSeverityCounts(output *strings.Builder, summary *Summary) {
	for _, severity := range []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow} {
		count := summary.ViolationsBySeverity[severity]
		if count == 0 {
			continue
		}

		line := fmt.Sprintf("    %s: %d\n", severity, count)
		severityColor := f.getSeverityColor(severity)
		if f.colorize && severityColor != nil {
			output.WriteString(severityColor.Sprint(line))
		} else {
			output.WriteString(line)
		}
	}
}

func (f *TableFormatter) writeCodeStats(output *strings.Builder, stats *CodeStats) {
	if stats.TotalFiles == 0 {
		return
	}

	output.WriteString("\n")
	if f.colorize {
		color.Set(color.FgCyan, color.Bold)
	}
	output.WriteString("Code Statistics:\n")
	if f.colorize {
		color.Unset()
	}

	output.WriteString(fmt.Sprintf("  Total Lines: %s\n", formatNumber(stats.TotalLines)))
	output.WriteString(fmt.Sprintf("  Total Files: %s\n", formatNumber(stats.TotalFiles)))
}

func (f *TableFormatter) writeViolationsTable(output *strings.Builder, violations []Violation) {
	for i, violation := range violations {
		if i > 0 {
			output.WriteString("\n")
		}

		severity := strings.ToUpper(string(violation.Severity))
		if f.colorize {
			severityColor := f.getSeverityColor(violation.Severity)
			if severityColor != nil {
				severity = severityColor.Sprint(severity)
			}
		}

		file := violation.File
		if violation.Line > 0 {
			file = fmt.Sprintf("%s:%d", file, violation.Line)
		}

		output.WriteString(fmt.Sprintf("  [%s] %s (%s)\n", severity, file, violation.Kind))
		output.WriteString(fmt.Sprintf("    Issue: %s\n", violation.Description))
		if violation.Suggestion != "" {
			output.WriteString(fmt.Sprintf("    Fix:   %s\n", violation.Suggestion))
		}
	}
}

func (f *TableFormatter) getSeverityColor(severity Severity) *color.Color {
	switch severity {
	case SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case SeverityHigh:
		return color.New(color.FgRed)
	case SeverityMedium:
		return color.New(color.FgYellow)
	case SeverityLow:
		return color.New(color.FgBlue)
	default:
		return nil
	}
}

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) Format(report *Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	return string(data), nil
}

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (f *MarkdownFormatter) Format(report *Report) (string, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("# Connascence Report - %s\n\n", report.Repository))
	if report.Branch != "" {
		output.WriteString(fmt.Sprintf("**Branch:** %s | **Commit:** %s\n\n", report.Branch, shortHash(report.CommitHash)))
	}
	output.WriteString(fmt.Sprintf("**Scan completed:** %s (took %s)\n\n",
		report.Timestamp.Format("2006-01-02 15:04:05"), report.Duration))

	output.WriteString("## Summary\n\n")
	output.WriteString(fmt.Sprintf("- **Files Analyzed:** %d\n", report.FilesAnalyzed))
	output.WriteString(fmt.Sprintf("- **Files Skipped:** %d\n", report.FilesSkipped))
	output.WriteString(fmt.Sprintf("- **Total Violations:** %d\n", report.Summary.TotalViolations))
	output.WriteString(fmt.Sprintf("- **Health Score:** %d/100 (Grade: %s)\n\n", report.Summary.Score, report.Summary.Grade))

	if report.Summary.TotalViolations > 0 {
		output.WriteString("### Violations by Severity\n\n")
		for _, severity := range []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow} {
			if count := report.Summary.ViolationsBySeverity[severity]; count > 0 {
				output.WriteString(fmt.Sprintf("- **%s:** %d\n", severity, count))
			}
		}
		output.WriteString("\n")
	}

	if len(report.Violations) > 0 {
		output.WriteString("## Violations Found\n\n")
		f.writeViolationsMarkdown(&output, report.Violations)
	} else {
		output.WriteString("## ✅ No Violations Found\n")
	}

	return output.String(), nil
}

func (f *MarkdownFormatter) writeViolationsMarkdown(output *strings.Builder, violations []Violation) {
	grouped := make(map[Kind][]Violation)
	var kinds []Kind
	for _, violation := range violations {
		if _, seen := grouped[violation.Kind]; !seen {
			kinds = append(kinds, violation.Kind)
		}
		grouped[violation.Kind] = append(grouped[violation.Kind], violation)
	}

	for _, kind := range kinds {
		output.WriteString(fmt.Sprintf("### %s\n\n", kind))

		for _, violation := range grouped[kind] {
			severityBadge := f.getSeverityBadge(violation.Severity)
			output.WriteString(fmt.Sprintf("#### %s\n\n", severityBadge))
			output.WriteString(fmt.Sprintf("**Description:** %s\n\n", violation.Description))

			if violation.File != "" {
				location := violation.File
				if violation.Line > 0 {
					location = fmt.Sprintf("%s:%d", violation.File, violation.Line)
				}
				output.WriteString(fmt.Sprintf("**Location:** `%s`\n\n", location))
			}

			if violation.Suggestion != "" {
				output.WriteString(fmt.Sprintf("**Suggested Fix:** %s\n\n", violation.Suggestion))
			}

			output.WriteString("---\n\n")
		}
	}
}

func (f *MarkdownFormatter) getSeverityBadge(severity Severity) string {
	switch severity {
	case SeverityCritical:
		return "🔴 **CRITICAL**"
	case SeverityHigh:
		return "🟠 **HIGH**"
	case SeverityMedium:
		return "🟡 **MEDIUM**"
	case SeverityLow:
		return "🔵 **LOW**"
	default:
		return "⚪ **UNKNOWN**"
	}
}

func GetFormatter(format string) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONFormatter()
	case "markdown", "md":
		return NewMarkdownFormatter()
	case "table":
		fallthrough
	default:
		return NewTableFormatter(isTerminal())
	}
}

func isTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()
	return fileInfo.Mode()&os.ModeCharDevice != 0
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	result := ""

	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(char)
	}

	return result
}
