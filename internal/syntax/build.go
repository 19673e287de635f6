package syntax

import (
	"cmp"
	"go/ast"
	"go/printer"
	"go/token"
	"slices"
	"strings"

	"github.com/sirkon/rbtree"
	"golang.org/x/tools/go/ast/inspector"
)

// FromFiles builds a tree from already parsed files. The inspector may be nil,
// one is created over files then.
func FromFiles(fset *token.FileSet, files []*ast.File, in *inspector.Inspector) *Tree {
	if in == nil {
		in = inspector.New(files)
	}

	t := &Tree{
		Fset:  fset,
		index: rbtree.New[*typeIndexEntry](),
	}
	if len(files) > 0 {
		t.Package = files[0].Package
	}

	b := &builder{
		fset: fset,
		tree: t,
	}

	// Types go first so receivers can be resolved into owners.
	in.Preorder([]ast.Node{(*ast.TypeSpec)(nil)}, func(node ast.Node) {
		b.addType(node.(*ast.TypeSpec))
	})
	in.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(node ast.Node) {
		b.addFunc(node.(*ast.FuncDecl))
	})

	// Interface elements were collected before funcs.
	slices.SortStableFunc(t.Methods, func(x, y *MethodDecl) int {
		return cmp.Compare(x.Pos, y.Pos)
	})

	return t
}

type builder struct {
	fset *token.FileSet
	tree *Tree
}

func (b *builder) addType(spec *ast.TypeSpec) {
	decl := &TypeDecl{
		Name: spec.Name.Name,
		Text: b.nodeString(spec),
		Pos:  spec.Pos(),
	}

	switch v := spec.Type.(type) {
	case *ast.StructType:
		for _, field := range v.Fields.List {
			if len(field.Names) > 0 {
				continue
			}
			if name := refName(field.Type); name != "" {
				decl.Parents = append(decl.Parents, name)
			}
		}

	case *ast.InterfaceType:
		for _, field := range v.Methods.List {
			if len(field.Names) == 0 {
				// Embedded element. Type set unions like ~int | string have no name.
				if name := refName(field.Type); name != "" {
					decl.Parents = append(decl.Parents, name)
				}
				continue
			}

			for _, name := range field.Names {
				m := &MethodDecl{
					Name:  name.Name,
					Owner: decl,
					Pos:   name.Pos(),
				}
				decl.Methods = append(decl.Methods, m)
				b.tree.Methods = append(b.tree.Methods, m)
			}
		}
	}

	b.tree.Types = append(b.tree.Types, decl)
	indexType(b.tree.index, decl)
}

func (b *builder) addFunc(fn *ast.FuncDecl) {
	m := &MethodDecl{
		Name: fn.Name.Name,
		Pos:  fn.Pos(),
	}

	if fn.Recv != nil && len(fn.Recv.List) > 0 {
		recv := fn.Recv.List[0].Type
		m.Receiver = b.nodeString(recv)
		if owner := b.tree.Lookup(refName(recv)); owner != nil {
			m.Owner = owner
			owner.Methods = append(owner.Methods, m)
		}
	}

	if fn.Body != nil {
		m.Body = &Body{}
		ast.Inspect(fn.Body, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}

			m.Body.Calls = append(m.Body.Calls, CallExpr{
				Name: calleeName(call.Fun),
				Pos:  call.Pos(),
			})
			return true
		})
	}

	b.tree.Methods = append(b.tree.Methods, m)
}

func (b *builder) nodeString(node ast.Node) string {
	var buf strings.Builder
	if err := printer.Fprint(&buf, b.fset, node); err != nil {
		return ""
	}

	return buf.String()
}

// refName returns the bare name of a referenced type: Animal for Animal,
// *Animal, pkg.Animal or Animal[T].
func refName(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.StarExpr:
		return refName(v.X)
	case *ast.SelectorExpr:
		return v.Sel.Name
	case *ast.IndexExpr:
		return refName(v.X)
	case *ast.IndexListExpr:
		return refName(v.X)
	case *ast.ParenExpr:
		return refName(v.X)
	default:
		return ""
	}
}

// calleeName returns the name of the called function or method.
func calleeName(fun ast.Expr) string {
	switch v := fun.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.SelectorExpr:
		return v.Sel.Name
	case *ast.IndexExpr:
		return calleeName(v.X)
	case *ast.IndexListExpr:
		return calleeName(v.X)
	case *ast.ParenExpr:
		return calleeName(v.X)
	default:
		return ""
	}
}
