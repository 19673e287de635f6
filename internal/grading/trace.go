package grading

import (
	"fmt"
	"io"

	"github.com/sirkon/hiergrade/internal/hierrules"
)

// Line is a single trace entry.
type Line struct {
	// Stage the pipeline was in when the line was written.
	Stage Stage `yaml:"stage"`

	// Rule is set for failure lines only.
	Rule hierrules.Rule `yaml:"rule,omitempty"`

	Text string `yaml:"text"`
}

// Trace collects lines of a single run and echoes them to the output as they come.
// It is not safe for concurrent use, each run owns its own trace.
type Trace struct {
	out   io.Writer
	lines []Line
}

// NewTrace creates a trace echoing into out. A nil out only collects.
func NewTrace(out io.Writer) *Trace {
	return &Trace{out: out}
}

// StageTrace binds a Trace to a fixed stage, so checks do not need to
// pass the stage with every line.
type StageTrace struct {
	parent *Trace
	stage  Stage
}

// Stage returns a stage-bound view of the trace.
func (t *Trace) Stage(s Stage) *StageTrace {
	return &StageTrace{parent: t, stage: s}
}

// Add records a line.
func (t *Trace) Add(line Line) {
	t.lines = append(t.lines, line)
	if t.out != nil {
		_, _ = fmt.Fprintln(t.out, line.Text)
	}
}

// Printf records an informational line under the bound stage.
func (st *StageTrace) Printf(format string, a ...any) {
	st.parent.Add(Line{
		Stage: st.stage,
		Text:  fmt.Sprintf(format, a...),
	})
}

// Fail records the failure line of the given rule under the bound stage.
func (st *StageTrace) Fail(rule hierrules.Rule) {
	st.parent.Add(Line{
		Stage: st.stage,
		Rule:  rule,
		Text:  rule.Description(),
	})
}

// Lines returns a snapshot of all collected lines.
func (t *Trace) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}
