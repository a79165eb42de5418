package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleReport() *Report {
	return &Report{
		Repository:    "/tmp/example",
		Branch:        "main",
		CommitHash:    "abcdef1234567890",
		Timestamp:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		FilesAnalyzed: 2,
		FilesSkipped:  1,
		Violations: []Violation{
			{
				Kind:        KindSyntaxError,
				Severity:    SeverityCritical,
				File:        "broken.go",
				Line:        0,
				Description: "File could not be parsed: broken.go:3:12: expected ')', found '{'",
				Suggestion:  "Fix the syntax error so the file can be analyzed",
			},
			{
				Kind:        KindTooManyParameters,
				Severity:    SeverityMedium,
				File:        "wide.go",
				Line:        3,
				Description: "Function wide has 7 parameters, exceeding the maximum of 5",
				Suggestion:  "Group related parameters into a struct or options type",
			},
		},
		Summary: Summary{
			TotalViolations: 2,
			ViolationsBySeverity: map[Severity]int{
				SeverityCritical: 1,
				SeverityMedium:   1,
			},
			ViolationsByKind: map[Kind]int{
				KindSyntaxError:       1,
				KindTooManyParameters: 1,
			},
			Score: 67,
			Grade: "D",
		},
		CodeStats: CodeStats{
			TotalLines: 42,
			TotalFiles: 3,
		},
		Duration: "12ms",
		Version:  "dev",
	}
}

func TestJSONFormatter_InterchangeShape(t *testing.T) {
	output, err := NewJSONFormatter().Format(sampleReport())
	if err != nil {
		t.Fatalf("Failed to format JSON: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Formatter produced invalid JSON: %v", err)
	}

	if decoded["files_analyzed"].(float64) != 2 {
		t.Errorf("Expected files_analyzed 2, got %v", decoded["files_analyzed"])
	}
	if decoded["files_skipped"].(float64) != 1 {
		t.Errorf("Expected files_skipped 1, got %v", decoded["files_skipped"])
	}

	violations, ok := decoded["violations"].([]interface{})
	if !ok {
		t.Fatal("Expected a top-level violations array")
	}
	if len(violations) != 2 {
		t.Fatalf("Expected 2 violations, got %d", len(violations))
	}

	first := violations[0].(map[string]interface{})
	for _, field := range []string{"kind", "severity", "file_path", "line_number", "description"} {
		if _, present := first[field]; !present {
			t.Errorf("Expected violation field %q to be present", field)
		}
	}

	if first["kind"].(string) != "SyntaxError" {
		t.Errorf("Expected kind SyntaxError, got %v", first["kind"])
	}
	if first["severity"].(string) != "Critical" {
		t.Errorf("Expected severity Critical, got %v", first["severity"])
	}
}

func TestTableFormatter_Format(t *testing.T) {
	output, err := NewTableFormatter(false).Format(sampleReport())
	if err != nil {
		t.Fatalf("Failed to format table: %v", err)
	}

	for _, expected := range []string{
		"Connascence Report",
		"Files Analyzed: 2",
		"Files Skipped:  1",
		"Health Score: 67/100 (Grade: D)",
		"wide.go:3",
		"TooManyParameters",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected table output to contain %q", expected)
		}
	}
}

func TestTableFormatter_NoViolations(t *testing.T) {
	cleanReport := sampleReport()
	cleanReport.Violations = nil
	cleanReport.Summary = Summary{
		ViolationsBySeverity: map[Severity]int{},
		ViolationsByKind:     map[Kind]int{},
		Score:                100,
		Grade:                "A",
	}

	output, err := NewTableFormatter(false).Format(cleanReport)
	if err != nil {
		t.Fatalf("Failed to format table: %v", err)
	}

	if !strings.Contains(output, "No violations found") {
		t.Errorf("Expected a clean report message, got: %s", output)
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	output, err := NewMarkdownFormatter().Format(sampleReport())
	if err != nil {
		t.Fatalf("Failed to format markdown: %v", err)
	}

	for _, expected := range []string{
		"# Connascence Report",
		"## Summary",
		"**Files Analyzed:** 2",
		"### SyntaxError",
		"`wide.go:3`",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected markdown output to contain %q", expected)
		}
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter("json").(*JSONFormatter); !ok {
		t.Error("Expected JSON formatter for 'json'")
	}
	if _, ok := GetFormatter("markdown").(*MarkdownFormatter); !ok {
		t.Error("Expected markdown formatter for 'markdown'")
	}
	if _, ok := GetFormatter("md").(*MarkdownFormatter); !ok {
		t.Error("Expected markdown formatter for 'md'")
	}
	if _, ok := GetFormatter("table").(*TableFormatter); !ok {
		t.Error("Expected table formatter for 'table'")
	}
	if _, ok := GetFormatter("unknown").(*TableFormatter); !ok {
		t.Error("Expected table formatter as the default")
	}
}
