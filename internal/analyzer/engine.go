package analyzer

import (
	"fmt"

	"github.com/connascencechecker/connascence-checker/internal/report"
	"github.com/connascencechecker/connascence-checker/internal/scanner"
)

// Result is the aggregated outcome of one scan. Violations are ordered by
// file iteration order, then in-file discovery order, with cross-file
// duplication findings appended last.
type Result struct {
	FilesAnalyzed int
	FilesSkipped  int
	Violations    []report.Violation
	TotalLines    int
	TotalFiles    int
}

// Engine runs an explicit, ordered list of checks over every source file
// under a root path. Checks and the fingerprinter are injected; the engine
// holds no global state between runs.
type Engine struct {
	checks        []Check
	fingerprinter *Fingerprinter
	excludeDirs   []string
}

func NewEngine(checks []Check, fingerprinter *Fingerprinter, excludeDirs []string) *Engine {
	return &Engine{
		checks:        checks,
		fingerprinter: fingerprinter,
		excludeDirs:   excludeDirs,
	}
}

// Run scans rootPath, which may be a single file or a directory. A missing
// or unreadable root is the only hard failure; per-file parse failures are
// recorded as SyntaxError violations and the scan continues.
func (e *Engine) Run(rootPath string) (*Result, error) {
	fileScanner, err := scanner.NewFileScanner(rootPath, e.excludeDirs)
	if err != nil {
		return nil, fmt.Errorf("failed to open scan root: %w", err)
	}

	files, err := fileScanner.GoFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate source files: %w", err)
	}

	result := &Result{Violations: []report.Violation{}}
	var fingerprints []FunctionFingerprint

	for _, file := range files {
		result.TotalFiles++
		result.TotalLines += file.LineCount

		src, parseViolation := ParseSource(file.Path, file.RelativePath)
		if parseViolation != nil {
			result.FilesSkipped++
			result.Violations = append(result.Violations, *parseViolation)
			continue
		}
		result.FilesAnalyzed++

		for _, check := range e.checks {
			result.Violations = append(result.Violations, check.Check(src)...)
		}

		if e.fingerprinter != nil {
			fingerprints = append(fingerprints, e.fingerprinter.Collect(src)...)
		}
	}

	if e.fingerprinter != nil {
		result.Violations = append(result.Violations, DuplicationViolations(fingerprints)...)
	}

	return result, nil
}
