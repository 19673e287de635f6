// Package hierrules defines the canonical rule codes (HIR-series) enforced by hiergrade.
//
// Each rule stands for one structural predicate of the hierarchical inheritance
// assignment. The codes give every failed predicate a stable numeric and textual
// identity, so a verdict can be reported, filtered and compared consistently
// across the command line tool, the analyzer and YAML reports.
//
// # Structure
//
// Rule codes follow the format “HIR<NNN>: <Name>” and are grouped by check:
//
//	000–009  Type presence
//	010–019  Inheritance relations
//	020–029  Method overriding
//	030–039  Invocation from the entry routine
//
// Example:
//
//	hierrules.HIR010DogExtendsAnimal.String()      → "HIR010: DogExtendsAnimal"
//	hierrules.HIR010DogExtendsAnimal.Description() → "Error: 'Dog' does not extend 'Animal'."
//
// Descriptions are exact trace lines. Graders and tests match on them, so never
// reword an existing one.
package hierrules
