package grading

import (
	"io"

	"github.com/sirkon/hiergrade/internal/syntax"
)

// Run parses the Go source file at path and verifies it. Trace lines are
// echoed into out as they are produced, out may be nil.
//
// A non-nil error means the file could not be checked at all and is
// a *syntax.ParseError then. It is never reported as a failed verdict.
// Lines echoed into out before the error are not retained anywhere, the
// returned verdict is empty.
func Run(path string, out io.Writer) (Verdict, error) {
	trace := NewTrace(out)

	st := trace.Stage(StageStart)
	st.Printf("Starting hierarchy check with file: %s", path)

	tree, err := syntax.ParseFile(path)
	if err != nil {
		return Verdict{}, err
	}
	st.Printf("Parsed the Go file successfully.")

	return Verify(tree, trace), nil
}
