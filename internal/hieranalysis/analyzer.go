// Package hieranalysis exposes the hierarchy checks as a go/analysis analyzer,
// so they can run under go vet style drivers against whole packages.
package hieranalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/hiergrade/internal/grading"
	"github.com/sirkon/hiergrade/internal/syntax"
)

const doc = `hierarchy checks that a main package implements hierarchical inheritance

The package must declare types Animal, Dog and Cat, where Dog and Cat embed
Animal as their first embedded field and declare their own speak method,
and func main must call speak. The first unmet requirement is reported.`

// Analyzer is the main entry point for the checker.
var Analyzer = &analysis.Analyzer{
	Name:     "hierarchy",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	// Library packages have no entry routine to check.
	if pass.Pkg.Name() != "main" || len(pass.Files) == 0 {
		return nil, nil
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	tree := syntax.FromFiles(pass.Fset, pass.Files, pector)

	v := grading.Verify(tree, grading.NewTrace(nil))
	if v.Passed {
		return nil, nil
	}

	pass.Report(analysis.Diagnostic{
		Pos:      v.Anchor,
		Category: v.Failed.Code(),
		Message:  v.Failed.Description(),
	})

	return nil, nil
}
