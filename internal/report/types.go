package report

import "time"

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

type Kind string

const (
	KindMagicLiteral        Kind = "MagicLiteral"
	KindTooManyParameters   Kind = "TooManyParameters"
	KindGodObject           Kind = "GodObject"
	KindDuplicatedAlgorithm Kind = "DuplicatedAlgorithm"
	KindSyntaxError         Kind = "SyntaxError"
)

// Violation is one detected issue. Line is 0 only for file-level
// violations such as unreadable or unparseable files.
type Violation struct {
	Kind        Kind     `json:"kind"`
	Severity    Severity `json:"severity"`
	File        string   `json:"file_path"`
	Line        int      `json:"line_number"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion,omitempty"`
}

type Summary struct {
	TotalViolations      int              `json:"total_violations"`
	ViolationsBySeverity map[Severity]int `json:"violations_by_severity"`
	ViolationsByKind     map[Kind]int     `json:"violations_by_kind"`
	Score                int              `json:"score"`
	Grade                string           `json:"grade"`
}

type CodeStats struct {
	TotalLines int `json:"total_lines"`
	TotalFiles int `json:"total_files"`
}

// Report keeps files_analyzed, files_skipped and violations as top-level
// fields; CI consumers read exactly those three.
type Report struct {
	Repository    string      `json:"repository"`
	Branch        string      `json:"branch,omitempty"`
	CommitHash    string      `json:"commit_hash,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
	FilesAnalyzed int         `json:"files_analyzed"`
	FilesSkipped  int         `json:"files_skipped"`
	Violations    []Violation `json:"violations"`
	Summary       Summary     `json:"summary"`
	CodeStats     CodeStats   `json:"code_stats"`
	Duration      string      `json:"duration"`
	Version       string      `json:"version"`
}
