package analyzer

import (
	"github.com/connascencechecker/connascence-checker/internal/config"
	"github.com/connascencechecker/connascence-checker/internal/report"
)

// Check inspects one parsed file and returns zero or more violations.
// Checks hold configuration only, never scan state, so running the same
// check over the same tree twice yields the same violations.
type Check interface {
	Name() string
	Check(src *SourceFile) []report.Violation
}

// DefaultChecks returns the full per-file check list in its fixed run
// order. The engine takes this list explicitly; there is no registry.
func DefaultChecks(cfg *config.Config) []Check {
	return []Check{
		NewMagicLiteralCheck(&cfg.MagicLiterals),
		NewParameterCheck(&cfg.Parameters),
		NewGodObjectCheck(&cfg.GodObjects),
	}
}
