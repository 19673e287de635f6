package syntax

import (
	"go/token"

	"github.com/sirkon/rbtree"
)

// Tree is an immutable parse of the checked source.
type Tree struct {
	// Fset positions of the tree refer to.
	Fset *token.FileSet

	// Package is the position of the package clause of the first file.
	Package token.Pos

	// Types lists type declarations in source order, duplicates included.
	Types []*TypeDecl

	// Methods lists method declarations in source order.
	Methods []*MethodDecl

	index *rbtree.Tree[*typeIndexEntry]
}

// TypeDecl is a named type declaration.
type TypeDecl struct {
	Name string

	// Parents are names of embedded types in declaration order.
	Parents []string

	// Methods declared with this type as a receiver or, for interfaces,
	// listed in the interface body.
	Methods []*MethodDecl

	// Text is the printed type spec, like "Dog struct {\n\tAnimal\n}".
	Text string

	Pos token.Pos
}

// String returns the textual representation of the declaration.
func (d *TypeDecl) String() string {
	return d.Text
}

// MethodDecl is a func declaration or an interface method element.
type MethodDecl struct {
	Name string

	// Owner is the declared type this method belongs to. It is nil for plain
	// functions and for receivers of types not declared in the checked files.
	Owner *TypeDecl

	// Receiver is the printed receiver type expression, like "*Dog".
	// Empty for plain functions and interface elements.
	Receiver string

	// Body is nil for declarations without a body.
	Body *Body

	Pos token.Pos
}

// OwnerText returns the textual representation of the owning type. Falls back
// to the receiver expression when the owner is not declared in the tree.
func (m *MethodDecl) OwnerText() string {
	if m.Owner != nil {
		return m.Owner.String()
	}

	return m.Receiver
}

// Body of a method.
type Body struct {
	// Calls lists every call expression of the body in source order,
	// including nested ones.
	Calls []CallExpr
}

// CallExpr is a call reduced to its callee name.
type CallExpr struct {
	// Name is the called identifier: "speak" for both speak() and dog.speak().
	// Empty when the callee has no name, like an immediately called func literal.
	Name string
	Pos  token.Pos
}

// Lookup returns the first declared type with the given name, nil if there is none.
func (t *Tree) Lookup(name string) *TypeDecl {
	if t.index == nil {
		return nil
	}

	// The index iterates in name order, nothing past name can match.
	for e := range t.index.Iter() {
		switch {
		case e.name == name:
			return e.decl
		case e.name > name:
			return nil
		}
	}

	return nil
}

// MethodsNamed returns methods with the given name in source order.
func (t *Tree) MethodsNamed(name string) []*MethodDecl {
	var res []*MethodDecl
	for _, m := range t.Methods {
		if m.Name == name {
			res = append(res, m)
		}
	}

	return res
}

// Position translates a tree position into a file position.
func (t *Tree) Position(pos token.Pos) token.Position {
	if t.Fset == nil || !pos.IsValid() {
		return token.Position{}
	}

	return t.Fset.Position(pos)
}
