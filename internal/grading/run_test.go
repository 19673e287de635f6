package grading

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/hiergrade/internal/syntax"
)

func TestRunEchoesTrace(t *testing.T) {
	src, err := subjects.ReadFile("testdata/case_no_speak.go")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "subject.go")
	if err := os.WriteFile(path, src, 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	v, err := Run(path, &out)
	if err != nil {
		t.Fatalf("run over %s: %s", path, err)
	}
	if v.Passed {
		t.Fatal("verdict must be negative")
	}

	texts := v.Texts()
	if texts[0] != "Starting hierarchy check with file: "+path {
		t.Errorf("unexpected first line %q", texts[0])
	}
	if texts[1] != "Parsed the Go file successfully." {
		t.Errorf("unexpected second line %q", texts[1])
	}

	echoed := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if !reflect.DeepEqual(texts, echoed) {
		deepequal.SideBySide(t, "echo", texts, echoed)
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.go")

	var out bytes.Buffer
	v, err := Run(path, &out)
	if err == nil {
		t.Fatal("error was expected for a missing file")
	}

	var perr *syntax.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseError was expected, got %T", err)
	}
	if perr.Kind != syntax.ParseErrorMissing {
		t.Errorf("error kind mismatch: got %s, want %s", perr.Kind, syntax.ParseErrorMissing)
	}
	if v.Passed || len(v.Trace) != 0 {
		t.Errorf("no verdict was expected, got %+v", v)
	}
	if out.String() != "Starting hierarchy check with file: "+path+"\n" {
		t.Errorf("only the starting line was expected in the output, got %q", out.String())
	}
	if strings.Contains(out.String(), "Parsed") {
		t.Errorf("checks must not start after an input error, got output %q", out.String())
	}
}

func TestRunSubjectProgram(t *testing.T) {
	v, err := Run(filepath.Join("..", "..", "cmd", "animals", "main.go"), nil)
	if err != nil {
		t.Fatalf("check subject program: %s", err)
	}

	if !v.Passed {
		t.Fatalf("subject program must pass, failed with %s:\n%s", v.Failed, strings.Join(v.Texts(), "\n"))
	}
}
