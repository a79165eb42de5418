package analyzer

import (
	"fmt"
	"go/ast"

	"github.com/connascencechecker/connascence-checker/internal/config"
	"github.com/connascencechecker/connascence-checker/internal/report"
)

type GodObjectCheck struct {
	config *config.GodObjectConfig
}

func NewGodObjectCheck(cfg *config.GodObjectConfig) *GodObjectCheck {
	return &GodObjectCheck{config: cfg}
}

func (c *GodObjectCheck) Name() string {
	return "god-objects"
}

// Check flags types declared in this file whose directly declared method
// count exceeds the configured maximum. Only methods visible in the same
// file are counted; embedding-promoted and cross-file methods are not
// resolved. That is a known limitation of a single-file pass.
func (c *GodObjectCheck) Check(src *SourceFile) []report.Violation {
	declLines := c.typeDeclarationLines(src)
	methodCounts := c.methodCounts(src)

	var violations []report.Violation
	for _, typeName := range c.declaredTypeOrder(src) {
		count := methodCounts[typeName]
		if count <= c.config.MaxMethods {
			continue
		}

		violations = append(violations, report.Violation{
			Kind:        report.KindGodObject,
			Severity:    report.SeverityHigh,
			File:        src.Path,
			Line:        declLines[typeName],
			Description: fmt.Sprintf("Type %s has %d methods, exceeding the maximum of %d", typeName, count, c.config.MaxMethods),
			Suggestion:  "Split this type into smaller types with single responsibilities",
		})
	}

	return violations
}

func (c *GodObjectCheck) typeDeclarationLines(src *SourceFile) map[string]int {
	lines := make(map[string]int)
	for _, typeSpec := range declaredTypeSpecs(src.File) {
		lines[typeSpec.Name.Name] = src.Fset.Position(typeSpec.Pos()).Line
	}
	return lines
}

func (c *GodObjectCheck) declaredTypeOrder(src *SourceFile) []string {
	var names []string
	for _, typeSpec := range declaredTypeSpecs(src.File) {
		names = append(names, typeSpec.Name.Name)
	}
	return names
}

func (c *GodObjectCheck) methodCounts(src *SourceFile) map[string]int {
	counts := make(map[string]int)
	for _, decl := range src.File.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv == nil {
			continue
		}
		if name := receiverTypeName(funcDecl.Recv); name != "" {
			counts[name]++
		}
	}
	return counts
}

func declaredTypeSpecs(file *ast.File) []*ast.TypeSpec {
	var specs []*ast.TypeSpec
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range genDecl.Specs {
			if typeSpec, ok := spec.(*ast.TypeSpec); ok {
				specs = append(specs, typeSpec)
			}
		}
	}
	return specs
}
