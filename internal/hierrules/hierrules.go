package hierrules

import (
	"encoding"
	"fmt"
	"strings"
)

// Rule represents a hiergrade rule code (HIR-series).
type Rule int

const (
	ruleInvalid Rule = iota

	HIR000TypesPresent
	HIR010DogExtendsAnimal
	HIR011CatExtendsAnimal
	HIR020SpeakOverridden
	HIR030SpeakInvoked
)

// Valid tells if r is one of the known rule codes.
func (r Rule) Valid() bool {
	return r > ruleInvalid && r <= HIR030SpeakInvoked
}

// Code returns the bare code of the rule, like "HIR010".
func (r Rule) Code() string {
	switch r {
	case HIR000TypesPresent:
		return "HIR000"
	case HIR010DogExtendsAnimal:
		return "HIR010"
	case HIR011CatExtendsAnimal:
		return "HIR011"
	case HIR020SpeakOverridden:
		return "HIR020"
	case HIR030SpeakInvoked:
		return "HIR030"
	default:
		return ""
	}
}

// String returns the canonical code and short name of the rule.
// Example: "HIR000: TypesPresent"
func (r Rule) String() string {
	switch r {
	case HIR000TypesPresent:
		return "HIR000: TypesPresent"
	case HIR010DogExtendsAnimal:
		return "HIR010: DogExtendsAnimal"
	case HIR011CatExtendsAnimal:
		return "HIR011: CatExtendsAnimal"
	case HIR020SpeakOverridden:
		return "HIR020: SpeakOverridden"
	case HIR030SpeakInvoked:
		return "HIR030: SpeakInvoked"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the trace line emitted when the rule is violated.
func (r Rule) Description() string {
	switch r {
	case HIR000TypesPresent:
		return "Error: One or more classes (Animal, Dog, Cat) are missing."
	case HIR010DogExtendsAnimal:
		return "Error: 'Dog' does not extend 'Animal'."
	case HIR011CatExtendsAnimal:
		return "Error: 'Cat' does not extend 'Animal'."
	case HIR020SpeakOverridden:
		return "Error: One or more methods ('speak' in Dog or Cat) not overridden."
	case HIR030SpeakInvoked:
		return "Error: Methods 'speak' not executed in the main method."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

var (
	_ encoding.TextMarshaler   = Rule(0)
	_ encoding.TextUnmarshaler = (*Rule)(nil)
)

// MarshalText renders the bare code. The zero rule renders as an empty text,
// so a passing verdict carries no rule in reports.
func (r Rule) MarshalText() ([]byte, error) {
	if r == ruleInvalid {
		return []byte{}, nil
	}
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid Rule(%d)", int(r))
	}

	return []byte(r.Code()), nil
}

// UnmarshalText accepts either a bare code ("HIR010") or the canonical form
// ("HIR010: DogExtendsAnimal").
func (r *Rule) UnmarshalText(b []byte) error {
	text := strings.TrimSpace(string(b))
	if text == "" {
		*r = ruleInvalid
		return nil
	}

	for v := HIR000TypesPresent; v <= HIR030SpeakInvoked; v++ {
		if text == v.Code() || text == v.String() {
			*r = v
			return nil
		}
	}

	return fmt.Errorf("unknown rule code %q", text)
}

// Rule constructors used at report sites.

func TypesPresent() Rule     { return HIR000TypesPresent }
func DogExtendsAnimal() Rule { return HIR010DogExtendsAnimal }
func CatExtendsAnimal() Rule { return HIR011CatExtendsAnimal }
func SpeakOverridden() Rule  { return HIR020SpeakOverridden }
func SpeakInvoked() Rule     { return HIR030SpeakInvoked }
