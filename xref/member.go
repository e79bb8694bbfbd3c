// Package xref resolves cross-references between two mirrored
// representations of a class hierarchy: members exported from the
// deobfuscated client under a stable name, and the API mirror and mixin
// declarations that reference them.
//
// A Builder scans a declaration index in three passes and produces an
// immutable State; the query functions on State answer "who references this
// export" and "which exports does this declaration point at". Resolution
// never fails: anything the engine cannot derive an identity for is dropped
// from the graph and noted in the State's diagnostics.
package xref

import (
	"strings"

	"xref-assist/annotation"
	"xref-assist/decl"
)

const (
	// StaticLocation is the location of statically scoped members.
	StaticLocation = "<static>"

	// ConstructorName is the reserved member name mixin annotations use to
	// target a constructor.
	ConstructorName = "<init>"

	// mirrorPrefix marks a type as the API mirror of an external type:
	// RSPlayer mirrors Player.
	mirrorPrefix = "RS"
)

// Member is the canonical identity of a logical exported member. Two members
// with equal name and location are the same logical entity across both
// representations.
type Member struct {
	// Name is the export/import/mixin-target member name as declared.
	Name string

	// Location is StaticLocation for static members, otherwise the name of
	// the owning type in the external-API representation.
	Location string
}

// String returns the identity in name@location form.
func (m Member) String() string {
	return m.Name + "@" + m.Location
}

// IsStatic reports whether the identity is statically scoped.
func (m Member) IsStatic() bool {
	return m.Location == StaticLocation
}

// stripMirror removes the mirror prefix from a type name. Names without the
// prefix do not denote mirror types and yield no location.
func stripMirror(name string) (string, bool) {
	if !strings.HasPrefix(name, mirrorPrefix) {
		return "", false
	}

	return name[len(mirrorPrefix):], true
}

// memberFromExported derives the identity an export-annotated declaration
// declares. Static exports live under StaticLocation; instance exports
// require an Implements annotation on the owning type, otherwise no identity
// is derivable.
//
// The derivation is pure: recording the owning type as an implementer
// happens in the builder's export pass, never here, so query-time
// recomputation cannot mutate a published State.
func (s *State) memberFromExported(d decl.Declaration) (Member, bool) {
	name, ok := d.AnnotationArgument(annotation.Export)
	if !ok {
		return Member{}, false
	}

	owner, ok := d.OwningType()
	if !ok {
		return Member{}, false
	}

	api, hasAPI := owner.AnnotationArgument(annotation.Implements)

	if d.IsStatic() {
		return Member{Name: name, Location: StaticLocation}, true
	}

	if !hasAPI {
		return Member{}, false
	}

	return Member{Name: name, Location: api}, true
}

// memberFromImported derives the identity an import-annotated declaration
// references. The location comes from the owning mirror type's name with the
// prefix stripped; if no export exists under that instance identity, the
// static identity is returned instead (the reverse fallback is deliberately
// not attempted). Callers must re-check that the returned identity exists.
func (s *State) memberFromImported(d decl.Declaration) (Member, bool) {
	name, ok := d.AnnotationArgument(annotation.Import)
	if !ok {
		return Member{}, false
	}

	owner, ok := d.OwningType()
	if !ok {
		return Member{}, false
	}

	api, ok := stripMirror(owner.Name())
	if !ok {
		return Member{}, false
	}

	// First look for an instance export, then fall back to static.
	m := Member{Name: name, Location: api}
	if _, ok := s.exports[m]; !ok {
		m = Member{Name: name, Location: StaticLocation}
	}

	return m, true
}

// mixinName returns the argument of the first mixin-relation annotation
// present on the declaration, in the fixed priority order.
func mixinName(d decl.Declaration) (string, bool) {
	kind, ok := mixinRelationOf(d)
	if !ok {
		return "", false
	}

	return d.AnnotationArgument(kind)
}

// membersFromMixin derives the set of identities a mixin-relation
// declaration references, one candidate per mixin target type on the owning
// type. Targets without the mirror prefix, and candidates with no export,
// are dropped; duplicate identities across targets collapse.
//
// Mixins onto ConstructorName may synthesize a constructor export on the
// in-progress state, so this runs during the build only.
func (s *State) membersFromMixin(d decl.Declaration) []Member {
	name, ok := mixinName(d)
	if !ok {
		return nil
	}

	owner, ok := d.OwningType()
	if !ok {
		return nil
	}

	// A static mixin member references a single static export; whether that
	// export exists is checked by addReference, like any other reference.
	if d.IsStatic() {
		return []Member{{Name: name, Location: StaticLocation}}
	}

	var (
		members []Member
		seen    map[Member]struct{}
	)

	for _, target := range owner.MixinTargets() {
		api, ok := stripMirror(target.Name())
		if !ok {
			continue
		}

		m := Member{Name: name, Location: api}

		if name == ConstructorName {
			s.synthesizeConstructorExport(m, api, d)
		}

		if _, ok := s.exports[m]; !ok {
			continue
		}

		if seen == nil {
			seen = make(map[Member]struct{})
		}

		if _, dup := seen[m]; dup {
			continue
		}

		seen[m] = struct{}{}
		members = append(members, m)
	}

	return members
}
