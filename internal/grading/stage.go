package grading

import (
	"encoding"
	"fmt"
)

// Stage is a state of the check pipeline. The pipeline only moves forward.
type Stage int

const (
	StageStart Stage = iota
	StageClassesChecked
	StageInheritanceChecked
	StageOverrideChecked
	StageInvocationChecked
)

var stageNames = map[Stage]string{
	StageStart:              "start",
	StageClassesChecked:     "classes-checked",
	StageInheritanceChecked: "inheritance-checked",
	StageOverrideChecked:    "override-checked",
	StageInvocationChecked:  "invocation-checked",
}

func (s Stage) String() string {
	v, ok := stageNames[s]
	if !ok {
		return fmt.Sprintf("stage-invalid(%d)", int(s))
	}

	return v
}

var (
	_ encoding.TextMarshaler   = Stage(0)
	_ encoding.TextUnmarshaler = (*Stage)(nil)
)

func (s Stage) MarshalText() ([]byte, error) {
	v, ok := stageNames[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Stage(%d)", int(s))
	}

	return []byte(v), nil
}

func (s *Stage) UnmarshalText(b []byte) error {
	text := string(b)
	for k, v := range stageNames {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown stage %q", text)
}
