// Package library has no entry routine and is never checked.
package library

type Dog struct{}
