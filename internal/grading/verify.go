package grading

import (
	"go/token"
	"strings"

	"github.com/sirkon/hiergrade/internal/hierrules"
	"github.com/sirkon/hiergrade/internal/syntax"
)

const (
	baseType     = "Animal"
	dogType      = "Dog"
	catType      = "Cat"
	behavior     = "speak"
	entryRoutine = "main"
)

// failure is what a check returns when its predicate does not hold.
type failure struct {
	rule   hierrules.Rule
	anchor token.Pos
}

// check moves the pipeline to the next stage when run reports no failure.
type check struct {
	next Stage
	run  func(tree *syntax.Tree, st *StageTrace) *failure
}

var pipeline = []check{
	{next: StageClassesChecked, run: checkTypesPresent},
	{next: StageInheritanceChecked, run: checkInheritance},
	{next: StageOverrideChecked, run: checkOverride},
	{next: StageInvocationChecked, run: checkInvocation},
}

// Verify runs all checks over the tree writing into the trace. It stops at
// the first failed check.
func Verify(tree *syntax.Tree, trace *Trace) Verdict {
	stage := StageStart
	for _, c := range pipeline {
		if f := c.run(tree, trace.Stage(stage)); f != nil {
			v := Verdict{
				Reached: stage,
				Failed:  f.rule,
				Anchor:  f.anchor,
				Trace:   trace.Lines(),
			}
			if pos := tree.Position(f.anchor); pos.IsValid() {
				v.Location = pos.String()
			}
			return v
		}
		stage = c.next
	}

	trace.Stage(stage).Printf("Test passed: Hierarchical inheritance is correctly implemented.")
	return Verdict{
		Passed:  true,
		Reached: stage,
		Trace:   trace.Lines(),
	}
}

func checkTypesPresent(tree *syntax.Tree, st *StageTrace) *failure {
	st.Printf("------ Inheritance and Class Implementation Check ------")

	for _, decl := range tree.Types {
		switch decl.Name {
		case baseType, dogType, catType:
		default:
			continue
		}

		// Duplicates are ignored: only the first declaration counts.
		if tree.Lookup(decl.Name) == decl {
			st.Printf("Class '%s' found.", decl.Name)
		}
	}

	for _, name := range []string{baseType, dogType, catType} {
		if tree.Lookup(name) == nil {
			st.Fail(hierrules.TypesPresent())
			return &failure{rule: hierrules.TypesPresent(), anchor: tree.Package}
		}
	}

	return nil
}

func checkInheritance(tree *syntax.Tree, st *StageTrace) *failure {
	derived := []struct {
		name string
		rule hierrules.Rule
	}{
		{name: dogType, rule: hierrules.DogExtendsAnimal()},
		{name: catType, rule: hierrules.CatExtendsAnimal()},
	}

	for _, d := range derived {
		decl := tree.Lookup(d.name)
		if len(decl.Parents) == 0 || decl.Parents[0] != baseType {
			st.Fail(d.rule)
			return &failure{rule: d.rule, anchor: decl.Pos}
		}

		st.Printf("%s extends '%s'.", d.name, baseType)
	}

	return nil
}

// checkOverride matches owners by substring of their text, so a speak of
// Doggo counts for Dog as well.
func checkOverride(tree *syntax.Tree, st *StageTrace) *failure {
	st.Printf("------ Method Override Check ------")

	var inDog, inCat bool
	for _, m := range tree.MethodsNamed(behavior) {
		owner := m.OwnerText()
		if strings.Contains(owner, dogType) {
			inDog = true
			st.Printf("Method '%s' overridden in '%s' class.", behavior, dogType)
		}
		if strings.Contains(owner, catType) {
			inCat = true
			st.Printf("Method '%s' overridden in '%s' class.", behavior, catType)
		}
	}

	if !inDog || !inCat {
		st.Fail(hierrules.SpeakOverridden())
		return &failure{rule: hierrules.SpeakOverridden(), anchor: tree.Package}
	}

	return nil
}

func checkInvocation(tree *syntax.Tree, st *StageTrace) *failure {
	st.Printf("------ Method Execution Check in Main ------")

	entries := tree.MethodsNamed(entryRoutine)

	var executed bool
	for _, m := range entries {
		if m.Body == nil {
			continue
		}

		for _, call := range m.Body.Calls {
			if call.Name == behavior {
				executed = true
				st.Printf("Method '%s' is executed in the main method.", behavior)
			}
		}
	}

	if !executed {
		anchor := tree.Package
		if len(entries) > 0 {
			anchor = entries[0].Pos
		}

		st.Fail(hierrules.SpeakInvoked())
		return &failure{rule: hierrules.SpeakInvoked(), anchor: anchor}
	}

	return nil
}
