package analyzer

import (
	"fmt"
	"go/ast"

	"github.com/connascencechecker/connascence-checker/internal/config"
	"github.com/connascencechecker/connascence-checker/internal/report"
)

type ParameterCheck struct {
	config *config.ParameterConfig
}

func NewParameterCheck(cfg *config.ParameterConfig) *ParameterCheck {
	return &ParameterCheck{config: cfg}
}

func (c *ParameterCheck) Name() string {
	return "parameter-count"
}

// Check flags every function or method declaring more parameters than the
// configured maximum. The receiver never counts; it is declared outside
// the parameter list.
func (c *ParameterCheck) Check(src *SourceFile) []report.Violation {
	var violations []report.Violation

	for _, decl := range src.File.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}

		count := countParameters(funcDecl.Type.Params)
		if count <= c.config.MaxParameters {
			continue
		}

		name := functionDisplayName(funcDecl)
		violations = append(violations, report.Violation{
			Kind:        report.KindTooManyParameters,
			Severity:    report.SeverityMedium,
			File:        src.Path,
			Line:        src.Fset.Position(funcDecl.Pos()).Line,
			Description: fmt.Sprintf("Function %s has %d parameters, exceeding the maximum of %d", name, count, c.config.MaxParameters),
			Suggestion:  "Group related parameters into a struct or options type",
		})
	}

	return violations
}

func countParameters(params *ast.FieldList) int {
	if params == nil {
		return 0
	}

	count := 0
	for _, field := range params.List {
		if len(field.Names) == 0 {
			count++
			continue
		}
		count += len(field.Names)
	}
	return count
}

func functionDisplayName(decl *ast.FuncDecl) string {
	receiver := receiverTypeName(decl.Recv)
	if receiver != "" {
		return receiver + "." + decl.Name.Name
	}
	return decl.Name.Name
}

func receiverTypeName(recv *ast.FieldList) string {
	if recv == nil || len(recv.List) == 0 {
		return ""
	}

	ident := baseTypeIdent(recv.List[0].Type)
	if ident == nil {
		return ""
	}
	return ident.Name
}

// baseTypeIdent unwraps pointer and type-parameter wrappers around a
// receiver or composite type expression.
func baseTypeIdent(expr ast.Expr) *ast.Ident {
	switch typed := expr.(type) {
	case *ast.Ident:
		return typed
	case *ast.StarExpr:
		return baseTypeIdent(typed.X)
	case *ast.IndexExpr:
		return baseTypeIdent(typed.X)
	case *ast.IndexListExpr:
		return baseTypeIdent(typed.X)
	default:
		return nil
	}
}
