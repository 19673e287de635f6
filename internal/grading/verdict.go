package grading

import (
	"go/token"

	"github.com/sirkon/hiergrade/internal/hierrules"
)

// Verdict is the outcome of a completed check run.
type Verdict struct {
	Passed bool `yaml:"passed"`

	// Reached is the last stage the pipeline entered.
	Reached Stage `yaml:"reached"`

	// Failed is the violated rule, zero for a passed verdict.
	Failed hierrules.Rule `yaml:"failed,omitempty"`

	// Anchor points to the construct the failure is about: a required type,
	// the main function or the package clause.
	Anchor token.Pos `yaml:"-"`

	// Location is the printed Anchor position.
	Location string `yaml:"location,omitempty"`

	Trace []Line `yaml:"trace"`
}

// Texts returns the trace lines text.
func (v Verdict) Texts() []string {
	out := make([]string, len(v.Trace))
	for i, line := range v.Trace {
		out[i] = line.Text
	}
	return out
}
