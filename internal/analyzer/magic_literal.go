package analyzer

import (
	"fmt"
	"go/ast"
	"go/token"
	"math"
	"strconv"
	"strings"

	"github.com/connascencechecker/connascence-checker/internal/config"
	"github.com/connascencechecker/connascence-checker/internal/report"
)

type MagicLiteralCheck struct {
	config *config.MagicLiteralConfig
}

func NewMagicLiteralCheck(cfg *config.MagicLiteralConfig) *MagicLiteralCheck {
	return &MagicLiteralCheck{config: cfg}
}

func (c *MagicLiteralCheck) Name() string {
	return "magic-literals"
}

func (c *MagicLiteralCheck) Check(src *SourceFile) []report.Violation {
	var violations []report.Violation

	excluded := c.collectExcludedLiterals(src.File)

	ast.Inspect(src.File, func(node ast.Node) bool {
		lit, ok := node.(*ast.BasicLit)
		if !ok || (lit.Kind != token.INT && lit.Kind != token.FLOAT) {
			return true
		}
		if excluded[lit] {
			return true
		}

		value, ok := numericValue(lit)
		if !ok || math.Abs(value) <= c.config.MagnitudeThreshold {
			return true
		}

		violations = append(violations, report.Violation{
			Kind:        report.KindMagicLiteral,
			Severity:    report.SeverityMedium,
			File:        src.Path,
			Line:        src.Fset.Position(lit.Pos()).Line,
			Description: fmt.Sprintf("Magic literal %s embeds an unexplained constant", lit.Value),
			Suggestion:  fmt.Sprintf("Extract %s into a named constant", lit.Value),
		})
		return true
	})

	return violations
}

// collectExcludedLiterals marks literals that already live behind a named
// constant binding: anything inside a const declaration, and anything
// assigned to an ALL_CAPS identifier.
func (c *MagicLiteralCheck) collectExcludedLiterals(file *ast.File) map[*ast.BasicLit]bool {
	excluded := make(map[*ast.BasicLit]bool)

	ast.Inspect(file, func(node ast.Node) bool {
		switch decl := node.(type) {
		case *ast.GenDecl:
			if c.config.ExcludeConstDecls && decl.Tok == token.CONST {
				markLiterals(decl, excluded)
				return false
			}
			if c.config.ExcludeAllCapsBindings && decl.Tok == token.VAR {
				c.markAllCapsValueSpecs(decl, excluded)
			}
		case *ast.AssignStmt:
			if c.config.ExcludeAllCapsBindings {
				c.markAllCapsAssignments(decl, excluded)
			}
		}
		return true
	})

	return excluded
}

func (c *MagicLiteralCheck) markAllCapsValueSpecs(decl *ast.GenDecl, excluded map[*ast.BasicLit]bool) {
	for _, spec := range decl.Specs {
		valueSpec, ok := spec.(*ast.ValueSpec)
		if !ok || !allNamesAllCaps(valueSpec.Names) {
			continue
		}
		for _, value := range valueSpec.Values {
			markLiterals(value, excluded)
		}
	}
}

func (c *MagicLiteralCheck) markAllCapsAssignments(assign *ast.AssignStmt, excluded map[*ast.BasicLit]bool) {
	if len(assign.Lhs) == len(assign.Rhs) {
		for i, lhs := range assign.Lhs {
			if ident, ok := lhs.(*ast.Ident); ok && isAllCapsName(ident.Name) {
				markLiterals(assign.Rhs[i], excluded)
			}
		}
		return
	}

	for _, lhs := range assign.Lhs {
		ident, ok := lhs.(*ast.Ident)
		if !ok || !isAllCapsName(ident.Name) {
			return
		}
	}
	for _, rhs := range assign.Rhs {
		markLiterals(rhs, excluded)
	}
}

func markLiterals(root ast.Node, excluded map[*ast.BasicLit]bool) {
	ast.Inspect(root, func(node ast.Node) bool {
		if lit, ok := node.(*ast.BasicLit); ok {
			excluded[lit] = true
		}
		return true
	})
}

func allNamesAllCaps(names []*ast.Ident) bool {
	if len(names) == 0 {
		return false
	}
	for _, name := range names {
		if !isAllCapsName(name.Name) {
			return false
		}
	}
	return true
}

// isAllCapsName reports whether name looks like a SCREAMING_SNAKE constant:
// at least one letter, and no lowercase letters.
func isAllCapsName(name string) bool {
	hasLetter := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= 'a' && r <= 'z':
			return false
		case r == '_' || (r >= '0' && r <= '9'):
		default:
			return false
		}
	}
	return hasLetter
}

func numericValue(lit *ast.BasicLit) (float64, bool) {
	text := strings.ReplaceAll(lit.Value, "_", "")

	if lit.Kind == token.INT {
		value, err := strconv.ParseUint(text, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(value), true
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
