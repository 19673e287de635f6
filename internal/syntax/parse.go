package syntax

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
)

// ParseErrorKind tells why the source could not be turned into a tree.
type ParseErrorKind int

const (
	parseErrorKindInvalid ParseErrorKind = iota
	ParseErrorMissing
	ParseErrorUnreadable
	ParseErrorSyntax
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorMissing:
		return "missing"
	case ParseErrorUnreadable:
		return "unreadable"
	case ParseErrorSyntax:
		return "invalid"
	default:
		return fmt.Sprintf("parse-error-kind-invalid(%d)", int(k))
	}
}

// ParseError is returned when the source cannot be checked at all. It is never
// a verdict: the checks did not run.
type ParseError struct {
	Path string
	Kind ParseErrorKind
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorMissing:
		return "file does not exist at path: " + e.Path
	case ParseErrorUnreadable:
		return fmt.Sprintf("read source file %s: %s", e.Path, e.Err)
	default:
		return fmt.Sprintf("parse source file: %s", e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseFile reads and parses the Go source file at path.
func ParseFile(path string) (*Tree, error) {
	file, err := os.Open(path)
	if err != nil {
		kind := ParseErrorUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			kind = ParseErrorMissing
		}
		return nil, &ParseError{Path: path, Kind: kind, Err: err}
	}
	defer file.Close()

	src, err := io.ReadAll(file)
	if err != nil {
		return nil, &ParseError{Path: path, Kind: ParseErrorUnreadable, Err: err}
	}

	return Parse(path, src)
}

// Parse builds a tree from in-memory source. The filename is only used
// for positions.
func Parse(filename string, src []byte) (*Tree, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, &ParseError{Path: filename, Kind: ParseErrorSyntax, Err: err}
	}

	return FromFiles(fset, []*ast.File{file}, nil), nil
}
