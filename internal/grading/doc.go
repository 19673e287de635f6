// Package grading runs the hierarchical inheritance checks over a syntax tree.
//
// Checks run in a fixed order and stop at the first failure:
//
//  1. Types Animal, Dog and Cat are declared.
//  2. Dog and then Cat embed Animal as their first parent.
//  3. Both Dog and Cat declare a speak method.
//  4. main calls speak.
//
// Every check writes trace lines as it goes. The trace is part of the output
// contract: graders match on exact lines, see [hierrules.Rule.Description] for
// failure lines.
package grading
