// Package syntax turns Go source into the flat declaration tree hiergrade checks.
//
// The tree keeps only what the structural checks look at:
//
//   - Type declarations with their parent references. A parent reference of a
//     struct type is an embedded field, of an interface type an embedded element.
//   - Method declarations, that is every func declaration plus every method
//     element of an interface type, with a non-owning link to the owning type.
//   - Call expressions found in method bodies, reduced to callee names.
//
// A tree is built once and never changes afterwards. Everything is kept in
// source order.
package syntax
