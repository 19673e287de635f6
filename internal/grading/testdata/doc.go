// Package main holds subject programs for grading tests. Each file is checked
// on its own, so they declare the same names and the package does not build.
package main
