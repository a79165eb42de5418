package analyzer

import (
	"fmt"
	"go/ast"
	"go/parser"
	goscanner "go/scanner"
	"go/token"

	"github.com/connascencechecker/connascence-checker/internal/report"
)

// SourceFile is one successfully parsed source file. Path is the path
// reported in violations, relative to the scan root when scanning a tree.
type SourceFile struct {
	Path string
	Fset *token.FileSet
	File *ast.File
}

// ParseSource turns source text into a traversable syntax tree. A file that
// cannot be read or parsed yields a single Critical SyntaxError violation
// instead of an error; a per-file parse failure never aborts a scan.
func ParseSource(path, reportPath string) (*SourceFile, *report.Violation) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		violation := report.Violation{
			Kind:        report.KindSyntaxError,
			Severity:    report.SeverityCritical,
			File:        reportPath,
			Line:        syntaxErrorLine(err),
			Description: fmt.Sprintf("File could not be parsed: %v", err),
			Suggestion:  "Fix the syntax error so the file can be analyzed",
		}
		return nil, &violation
	}

	return &SourceFile{
		Path: reportPath,
		Fset: fset,
		File: file,
	}, nil
}

func syntaxErrorLine(err error) int {
	if list, ok := err.(goscanner.ErrorList); ok && len(list) > 0 {
		return list[0].Pos.Line
	}
	return 0
}
