package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/connascencechecker/connascence-checker/internal/analyzer"
	"github.com/connascencechecker/connascence-checker/internal/config"
	"github.com/connascencechecker/connascence-checker/internal/git"
	"github.com/connascencechecker/connascence-checker/internal/report"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze Go source files for connascence violations",
	Long: `Analyze a Go source file or directory tree for connascence
violations. If no path is provided, the current directory is used.

Files that fail to parse are reported as SyntaxError violations and
counted as skipped; the scan continues with the remaining files.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	enableMagicLiterals bool
	enableParameters    bool
	enableGodObjects    bool
	enableDuplication   bool
	failOnViolations    bool
	severityThreshold   string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&enableMagicLiterals, "magic-literals", false, "enable magic literal detection")
	analyzeCmd.Flags().BoolVar(&enableParameters, "parameters", false, "enable parameter count detection")
	analyzeCmd.Flags().BoolVar(&enableGodObjects, "god-objects", false, "enable god object detection")
	analyzeCmd.Flags().BoolVar(&enableDuplication, "duplication", false, "enable duplicated algorithm detection")
	analyzeCmd.Flags().BoolVar(&failOnViolations, "fail-on-violations", false, "exit with non-zero code if violations found")
	analyzeCmd.Flags().StringVar(&severityThreshold, "severity", "low", "minimum severity level (low, medium, high, critical)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	context, err := setupAnalyzeContext(cmd, args)
	if err != nil {
		return err
	}

	analysisReport, err := performAnalysis(context, startTime)
	if err != nil {
		return err
	}

	if err := outputResults(cmd, analysisReport, context.verbose); err != nil {
		return err
	}

	handleFailOnViolations(analysisReport)
	return nil
}

type analyzeContext struct {
	absPath string
	cfg     *config.Config
	branch  string
	commit  string
	verbose bool
}

func setupAnalyzeContext(cmd *cobra.Command, args []string) (*analyzeContext, error) {
	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}

	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", targetPath, err)
	}

	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("cannot access path %s: %w", absPath, err)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	context := &analyzeContext{
		absPath: absPath,
		cfg:     cfg,
		verbose: verbose,
	}

	// Git metadata is a report nicety, never a requirement.
	if git.IsGitRepository(absPath) {
		if repo, err := git.OpenRepository(absPath); err == nil {
			if branch, err := repo.GetCurrentBranch(); err == nil {
				context.branch = branch
			}
			if commit, err := repo.GetCurrentCommit(); err == nil {
				context.commit = commit
			}
		}
	}

	return context, nil
}

func performAnalysis(context *analyzeContext, startTime time.Time) (*report.Report, error) {
	enableAllChecksIfNoneSelected()

	if context.verbose {
		fmt.Printf("Analyzing: %s\n", context.absPath)
		if context.branch != "" {
			fmt.Printf("Branch: %s | Commit: %s\n", context.branch, shortCommit(context.commit))
		}
		fmt.Println("Running connascence checks...")
	}

	engine := buildEngine(context.cfg, context.verbose)

	result, err := engine.Run(context.absPath)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}

	analysisReport := &report.Report{
		Repository:    context.absPath,
		Branch:        context.branch,
		CommitHash:    context.commit,
		Timestamp:     startTime,
		FilesAnalyzed: result.FilesAnalyzed,
		FilesSkipped:  result.FilesSkipped,
		Violations:    result.Violations,
		CodeStats: report.CodeStats{
			TotalLines: result.TotalLines,
			TotalFiles: result.TotalFiles,
		},
		Duration: time.Since(startTime).String(),
		Version:  Version,
	}
	analysisReport.Summary = calculateSummary(result.Violations)

	return analysisReport, nil
}

func buildEngine(cfg *config.Config, verbose bool) *analyzer.Engine {
	var checks []analyzer.Check
	if enableMagicLiterals {
		checks = append(checks, analyzer.NewMagicLiteralCheck(&cfg.MagicLiterals))
	}
	if enableParameters {
		checks = append(checks, analyzer.NewParameterCheck(&cfg.Parameters))
	}
	if enableGodObjects {
		checks = append(checks, analyzer.NewGodObjectCheck(&cfg.GodObjects))
	}

	if verbose {
		for _, check := range checks {
			fmt.Printf("  - Running %s check...\n", check.Name())
		}
		if enableDuplication {
			fmt.Println("  - Running duplication check...")
		}
	}

	var fingerprinter *analyzer.Fingerprinter
	if enableDuplication {
		fingerprinter = analyzer.NewFingerprinter(&cfg.Duplication)
	}

	return analyzer.NewEngine(checks, fingerprinter, cfg.Scanner.ExcludeDirs)
}

func enableAllChecksIfNoneSelected() {
	if !anyCheckEnabled() {
		enableMagicLiterals = true
		enableParameters = true
		enableGodObjects = true
		enableDuplication = true
	}
}

func anyCheckEnabled() bool {
	return enableMagicLiterals || enableParameters || enableGodObjects || enableDuplication
}

func outputResults(cmd *cobra.Command, analysisReport *report.Report, verbose bool) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	formatter := report.GetFormatter(formatFlag)

	output, err := formatter.Format(analysisReport)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath != "" {
		if err := writeOutputToFile(output, outputPath); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if verbose {
			fmt.Printf("Report written to: %s\n", outputPath)
		}
	} else {
		fmt.Print(output)
	}

	return nil
}

func handleFailOnViolations(analysisReport *report.Report) {
	if failOnViolations && len(analysisReport.Violations) > 0 {
		filtered := filterViolationsBySeverity(analysisReport.Violations, severityThreshold)
		if len(filtered) > 0 {
			os.Exit(1)
		}
	}
}

func calculateSummary(violations []report.Violation) report.Summary {
	summary := report.Summary{
		TotalViolations:      len(violations),
		ViolationsBySeverity: make(map[report.Severity]int),
		ViolationsByKind:     make(map[report.Kind]int),
	}

	for _, violation := range violations {
		summary.ViolationsBySeverity[violation.Severity]++
		summary.ViolationsByKind[violation.Kind]++
	}

	summary.Score = calculateHealthScore(summary.ViolationsBySeverity)
	summary.Grade = calculateGrade(summary.Score)

	return summary
}

func calculateHealthScore(violationsBySeverity map[report.Severity]int) int {
	score := 100

	score -= violationsBySeverity[report.SeverityCritical] * 25
	score -= violationsBySeverity[report.SeverityHigh] * 15
	score -= violationsBySeverity[report.SeverityMedium] * 8
	score -= violationsBySeverity[report.SeverityLow] * 3

	if score < 0 {
		score = 0
	}

	return score
}

func calculateGrade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func severityLevel(severity report.Severity) int {
	switch severity {
	case report.SeverityLow:
		return 1
	case report.SeverityMedium:
		return 2
	case report.SeverityHigh:
		return 3
	case report.SeverityCritical:
		return 4
	default:
		return 0
	}
}

func severityFromThreshold(threshold string) report.Severity {
	switch threshold {
	case "medium":
		return report.SeverityMedium
	case "high":
		return report.SeverityHigh
	case "critical":
		return report.SeverityCritical
	default:
		return report.SeverityLow
	}
}

func filterViolationsBySeverity(violations []report.Violation, threshold string) []report.Violation {
	thresholdLevel := severityLevel(severityFromThreshold(threshold))

	var filtered []report.Violation
	for _, violation := range violations {
		if severityLevel(violation.Severity) >= thresholdLevel {
			filtered = append(filtered, violation)
		}
	}

	return filtered
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}

func writeOutputToFile(content, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0644)
}
