package syntax

import (
	"strings"

	"github.com/sirkon/rbtree"
)

// typeIndexEntry is a node of the type name index.
type typeIndexEntry struct {
	name string
	decl *TypeDecl
}

// Cmp orders entries by name. Equal names compare as 0, so the tree holds
// exactly one entry per name.
func (e *typeIndexEntry) Cmp(other *typeIndexEntry) int {
	return strings.Compare(e.name, other.name)
}

// indexType adds the declaration to the index unless the name is already
// taken. The first declaration in source order wins.
func indexType(t *rbtree.Tree[*typeIndexEntry], decl *TypeDecl) bool {
	entry := &typeIndexEntry{name: decl.Name, decl: decl}
	return t.InsertReturn(entry) == entry
}
