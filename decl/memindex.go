package decl

import (
	"xref-assist/annotation"
)

// MemoryIndex is an in-memory Index. Hosts and tests populate it with types
// and members; iteration order is insertion order, which keeps FindAnnotated
// stable for a given snapshot. Every mutation bumps the modification counter.
//
// A MemoryIndex is not safe for concurrent mutation; publish a fully built
// index before sharing it across goroutines.
type MemoryIndex struct {
	version uint64
	types   []*Type
	members []*Member
}

// NewMemoryIndex returns an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

// Version implements Index.
func (ix *MemoryIndex) Version() uint64 {
	return ix.version
}

// Bump forces a version change without structural mutation, standing in for
// any codebase edit the index does not model.
func (ix *MemoryIndex) Bump() {
	ix.version++
}

// FindAnnotated implements Index: all members carrying the given annotation
// kind with a present argument, in insertion order.
func (ix *MemoryIndex) FindAnnotated(kind annotation.Kind) []Annotated {
	var found []Annotated

	for _, m := range ix.members {
		value, ok := m.annotations[kind]
		if !ok {
			continue
		}

		found = append(found, Annotated{Value: value, Decl: m})
	}

	return found
}

// AddType adds a type declaration with the given name.
func (ix *MemoryIndex) AddType(name string) *Type {
	t := &Type{index: ix, name: name}
	ix.types = append(ix.types, t)
	ix.version++

	return t
}

// Type is a type declaration inside a MemoryIndex. It implements TypeRef.
type Type struct {
	index        *MemoryIndex
	name         string
	annotations  map[annotation.Kind]string
	mixinTargets []TypeRef
	members      []*Member
	ctors        []Declaration
}

// Name implements TypeRef.
func (t *Type) Name() string { return t.name }

// AnnotationArgument implements TypeRef.
func (t *Type) AnnotationArgument(kind annotation.Kind) (string, bool) {
	value, ok := t.annotations[kind]
	return value, ok
}

// MixinTargets implements TypeRef.
func (t *Type) MixinTargets() []TypeRef { return t.mixinTargets }

// Constructors implements TypeRef.
func (t *Type) Constructors() []Declaration { return t.ctors }

// Annotate attaches a string-valued annotation to the type.
func (t *Type) Annotate(kind annotation.Kind, value string) *Type {
	if t.annotations == nil {
		t.annotations = make(map[annotation.Kind]string)
	}

	t.annotations[kind] = value
	t.index.version++

	return t
}

// Target appends a mixin target type, covering both the singular and the
// plural annotation form (call once or several times, order is kept).
func (t *Type) Target(target TypeRef) *Type {
	t.mixinTargets = append(t.mixinTargets, target)
	t.index.version++

	return t
}

// AddMember adds an instance member declaration to the type.
func (t *Type) AddMember(name string) *Member {
	return t.add(name, false, false)
}

// AddStatic adds a statically scoped member declaration to the type.
func (t *Type) AddStatic(name string) *Member {
	return t.add(name, true, false)
}

// AddConstructor adds a constructor declaration. Its display name is the
// type name, matching how constructors present in most hosts.
func (t *Type) AddConstructor() *Member {
	return t.add(t.name, false, true)
}

func (t *Type) add(name string, static, ctor bool) *Member {
	m := &Member{index: t.index, owner: t, name: name, static: static}
	t.members = append(t.members, m)

	if ctor {
		t.ctors = append(t.ctors, m)
	}

	t.index.members = append(t.index.members, m)
	t.index.version++

	return m
}

// AddOrphan adds a member declaration with no owning type. Hosts should not
// produce these; they exist so resolution against incomplete codebases stays
// testable.
func (ix *MemoryIndex) AddOrphan(name string) *Member {
	m := &Member{index: ix, name: name}
	ix.members = append(ix.members, m)
	ix.version++

	return m
}

// Member is a member declaration inside a MemoryIndex. It implements
// Declaration; the pointer is the identity.
type Member struct {
	index       *MemoryIndex
	owner       *Type
	name        string
	static      bool
	annotations map[annotation.Kind]string
}

// Name implements Declaration.
func (m *Member) Name() string { return m.name }

// IsStatic implements Declaration.
func (m *Member) IsStatic() bool { return m.static }

// OwningType implements Declaration.
func (m *Member) OwningType() (TypeRef, bool) {
	if m.owner == nil {
		return nil, false
	}

	return m.owner, true
}

// AnnotationArgument implements Declaration.
func (m *Member) AnnotationArgument(kind annotation.Kind) (string, bool) {
	value, ok := m.annotations[kind]
	return value, ok
}

// Annotate attaches an annotation with the given string argument.
func (m *Member) Annotate(kind annotation.Kind, value string) *Member {
	if m.annotations == nil {
		m.annotations = make(map[annotation.Kind]string)
	}

	m.annotations[kind] = value
	m.index.version++

	return m
}
