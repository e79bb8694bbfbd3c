// Package decl defines the declaration index contract the cross-reference
// engine consumes, plus an in-memory implementation of it.
//
// The engine never parses source text itself: a host (an IDE integration, a
// build tool, a test fixture) supplies an Index describing one snapshot of
// the codebase, and the engine resolves against that.
package decl

import (
	"xref-assist/annotation"
)

// Declaration is an opaque handle to an annotated member (a field, method or
// constructor) in one snapshot of the codebase.
//
// Declarations are used as map keys by the engine, so implementations must be
// comparable; pointer identity (one value per declaration, as MemoryIndex
// does) is the intended semantics.
type Declaration interface {
	// Name is the declared member name, used as the stable display key when
	// sorting query results.
	Name() string

	// IsStatic reports whether the member is statically scoped.
	IsStatic() bool

	// OwningType returns the type the member is declared in, if any.
	OwningType() (TypeRef, bool)

	// AnnotationArgument returns the string argument of the given annotation
	// kind, if the member carries it.
	AnnotationArgument(kind annotation.Kind) (string, bool)
}

// TypeRef is a handle to a type declaration.
type TypeRef interface {
	// Name is the declared type name (for mirror types this carries the
	// mirror prefix, e.g. RSPlayer).
	Name() string

	// AnnotationArgument returns the string argument of a string-valued
	// annotation on the type, such as Implements.
	AnnotationArgument(kind annotation.Kind) (string, bool)

	// MixinTargets returns the external target types declared through the
	// singular Mixin or plural Mixins annotation, in declared order. Empty
	// when the type declares neither form.
	MixinTargets() []TypeRef

	// Constructors returns the constructor declarations of the type in
	// declared order.
	Constructors() []Declaration
}

// Annotated pairs a declaration with the argument of the annotation it was
// found under.
type Annotated struct {
	Value string
	Decl  Declaration
}

// Index supplies all annotated declarations of one codebase snapshot.
//
// FindAnnotated must report declarations in a stable order for a given
// snapshot, and returns an empty sequence (never an error) when the kind
// resolves to nothing. Version is a modification counter: any change to the
// underlying codebase must change it.
type Index interface {
	FindAnnotated(kind annotation.Kind) []Annotated
	Version() uint64
}
