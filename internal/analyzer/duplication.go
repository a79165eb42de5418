package analyzer

import (
	"fmt"
	"go/ast"

	"github.com/cespare/xxhash/v2"

	"github.com/connascencechecker/connascence-checker/internal/config"
	"github.com/connascencechecker/connascence-checker/internal/report"
)

// FunctionFingerprint identifies one function body by its structural shape:
// the sequence of AST node kinds with identifier names and literal values
// ignored. Two functions that differ only in naming share a fingerprint.
type FunctionFingerprint struct {
	Hash uint64
	File string
	Line int
	Name string
}

type Fingerprinter struct {
	config *config.DuplicationConfig
}

func NewFingerprinter(cfg *config.DuplicationConfig) *Fingerprinter {
	return &Fingerprinter{config: cfg}
}

// Collect fingerprints every function body in one file. Contributions from
// separate files are independent; the engine merges them after the walk.
// A function that cannot be fingerprinted is silently excluded, never an
// analysis failure.
func (f *Fingerprinter) Collect(src *SourceFile) []FunctionFingerprint {
	var fingerprints []FunctionFingerprint

	for _, decl := range src.File.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Body == nil {
			continue
		}

		hash, nodeCount, ok := f.fingerprint(funcDecl.Body)
		if !ok || nodeCount < f.config.MinNodes {
			continue
		}

		fingerprints = append(fingerprints, FunctionFingerprint{
			Hash: hash,
			File: src.Path,
			Line: src.Fset.Position(funcDecl.Pos()).Line,
			Name: functionDisplayName(funcDecl),
		})
	}

	return fingerprints
}

func (f *Fingerprinter) fingerprint(body *ast.BlockStmt) (hash uint64, nodeCount int, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()

	digest := xxhash.New()
	ast.Inspect(body, func(node ast.Node) bool {
		if node == nil {
			// end-of-children marker keeps nesting part of the shape
			_, _ = digest.WriteString("$")
			return true
		}
		nodeCount++
		_, _ = fmt.Fprintf(digest, "%T;", node)
		return true
	})

	return digest.Sum64(), nodeCount, true
}

// DuplicationViolations groups merged fingerprints and emits one violation
// per duplicate member, referencing the first occurrence as the canonical
// copy. Group order follows first-occurrence order, keeping output stable.
func DuplicationViolations(fingerprints []FunctionFingerprint) []report.Violation {
	byHash := make(map[uint64][]FunctionFingerprint)
	var order []uint64

	for _, fingerprint := range fingerprints {
		if _, seen := byHash[fingerprint.Hash]; !seen {
			order = append(order, fingerprint.Hash)
		}
		byHash[fingerprint.Hash] = append(byHash[fingerprint.Hash], fingerprint)
	}

	var violations []report.Violation
	for _, hash := range order {
		group := byHash[hash]
		if len(group) < 2 {
			continue
		}

		canonical := group[0]
		for _, duplicate := range group[1:] {
			violations = append(violations, report.Violation{
				Kind:     report.KindDuplicatedAlgorithm,
				Severity: report.SeverityMedium,
				File:     duplicate.File,
				Line:     duplicate.Line,
				Description: fmt.Sprintf("Function %s duplicates the algorithm of %s (%s:%d)",
					duplicate.Name, canonical.Name, canonical.File, canonical.Line),
				Suggestion: "Extract the shared algorithm into a single function",
			})
		}
	}

	return violations
}
