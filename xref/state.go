package xref

import (
	"xref-assist/decl"
	"xref-assist/diagnostic"
	"xref-assist/internal/common"
)

// MemberInfo is the per-export bookkeeping of one resolved identity.
type MemberInfo struct {
	// Export is the declaration that originally declared the export. First
	// writer wins; a later export under the same identity never overwrites
	// it.
	Export decl.Declaration

	// References lists the declarations referencing the export, in the
	// order the build passes discovered them.
	References []decl.Declaration
}

// State is the resolved cross-reference graph for one snapshot of the
// codebase. It is mutated only while a Builder runs its passes; once
// published it is immutable, which is what makes concurrent queries safe.
type State struct {
	// exports maps each identity to its export and referencing declarations.
	exports map[Member]*MemberInfo

	// references maps each declaration to the set of identities it is known
	// to reference or originate.
	references map[decl.Declaration]map[Member]struct{}

	// implementers maps external-API type names to the type declaring them,
	// recorded during the export pass and consulted when a mixin targets a
	// constructor.
	implementers map[string]decl.TypeRef

	version uint64
	diags   diagnostic.Diagnostics
}

func newState(version uint64) *State {
	return &State{
		exports:      make(map[Member]*MemberInfo),
		references:   make(map[decl.Declaration]map[Member]struct{}),
		implementers: make(map[string]decl.TypeRef),
		version:      version,
	}
}

// Version returns the modification counter of the snapshot the State was
// built from.
func (s *State) Version() uint64 {
	return s.version
}

// Diagnostics returns the drop reasons recorded during the build.
func (s *State) Diagnostics() diagnostic.Diagnostics {
	return s.diags
}

// Lookup returns the bookkeeping for an identity, if it resolved to an
// export.
func (s *State) Lookup(m Member) (*MemberInfo, bool) {
	info, ok := s.exports[m]
	return info, ok
}

// Implementer returns the type declaration implementing the given
// external-API type name, if the export pass saw one.
func (s *State) Implementer(api string) (decl.TypeRef, bool) {
	t, ok := s.implementers[api]
	return t, ok
}

// addExport records d as the export declaring identity m. Idempotent per
// identity: the first declaration wins, but d is always recorded as
// referencing m.
func (s *State) addExport(m Member, d decl.Declaration) {
	if _, ok := s.exports[m]; !ok {
		s.exports[m] = &MemberInfo{Export: d}
	}

	s.addIdentity(d, m)
}

// addReference records d as referencing identity m. A no-op when no export
// exists under m (a dangling reference is not an error); reports whether the
// reference was recorded.
func (s *State) addReference(m Member, d decl.Declaration) bool {
	info, ok := s.exports[m]
	if !ok {
		return false
	}

	info.References = append(info.References, d)
	s.addIdentity(d, m)

	return true
}

func (s *State) addIdentity(d decl.Declaration, m Member) {
	set, ok := s.references[d]
	if !ok {
		set = make(map[Member]struct{})
		s.references[d] = set
	}

	set[m] = struct{}{}
}

// synthesizeConstructorExport turns the single constructor of the type
// implementing api into an export under m. Constructors are never annotated
// with an export directly, so a mixin targeting one discovers it here.
// Types with zero or several constructors are left alone: with several there
// is no way to tell which one is meant, so the case is flagged and dropped.
func (s *State) synthesizeConstructorExport(m Member, api string, d decl.Declaration) {
	implementer, ok := s.implementers[api]
	if !ok {
		return
	}

	ctors := implementer.Constructors()
	if !common.IsSingle(ctors) {
		if len(ctors) > 1 {
			s.diags.AddWarning("multi_constructor_target",
				"constructor mixin target has more than one constructor", m.String(), d.Name())
		}

		return
	}

	ctor, _ := common.First(ctors)
	s.addExport(m, ctor)
}
