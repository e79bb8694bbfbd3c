package xref

import (
	"xref-assist/annotation"
	"xref-assist/decl"
	"xref-assist/internal/common"
)

// Builder constructs the cross-reference State for one snapshot of a
// declaration index. The three passes must run in order: import and mixin
// resolution probe the exports discovered by the export pass (and, for
// constructor mixins, exports synthesized during the mixin pass itself).
type Builder struct {
	index decl.Index
}

// NewBuilder creates a Builder over the given index.
func NewBuilder(index decl.Index) *Builder {
	return &Builder{index: index}
}

// Build runs the three passes and returns the finished State. Build never
// fails: declarations the engine cannot resolve are dropped from the graph
// and recorded in the State's diagnostics.
func (b *Builder) Build() *State {
	s := newState(b.index.Version())

	b.exportPass(s)
	b.importPass(s)
	b.mixinPass(s)

	return s
}

// exportPass registers every export-annotated declaration under its derived
// identity, and records each owning type that declares an external-API type
// as that type's implementer.
func (b *Builder) exportPass(s *State) {
	for _, an := range b.index.FindAnnotated(annotation.Export) {
		d := an.Decl

		// The implementer is recorded whenever the owning type declares an
		// external type, even when the member itself is static and its
		// identity does not use it.
		if owner, ok := d.OwningType(); ok {
			if api, ok := owner.AnnotationArgument(annotation.Implements); ok {
				s.implementers[api] = owner
			}
		}

		m, ok := s.memberFromExported(d)
		if !ok {
			s.diags.AddInfo("unresolved_export",
				"no identity derivable for export (missing owning type or Implements)", "", d.Name())

			continue
		}

		s.addExport(m, d)
	}
}

// importPass resolves every import-annotated declaration against the export
// table, falling back from the instance identity to the static one.
func (b *Builder) importPass(s *State) {
	for _, an := range b.index.FindAnnotated(annotation.Import) {
		d := an.Decl

		m, ok := s.memberFromImported(d)
		if !ok {
			s.diags.AddInfo("unresolved_import",
				"no identity derivable for import (missing owning type or mirror prefix)", "", d.Name())

			continue
		}

		if !s.addReference(m, d) {
			s.diags.AddInfo("dangling_import",
				"import references an unknown export", m.String(), d.Name())
		}
	}
}

// mixinPass resolves every declaration carrying a mixin-relation annotation
// against its owning type's target types.
func (b *Builder) mixinPass(s *State) {
	for _, kind := range annotation.MixinRelations {
		for _, an := range b.index.FindAnnotated(kind) {
			d := an.Decl

			// The declaration resolves under its highest-priority relation;
			// skip it here if it will be (or was) handled under an earlier
			// kind of this pass.
			if relation, ok := mixinRelationOf(d); !ok || relation != kind {
				continue
			}

			members := s.membersFromMixin(d)
			if common.IsEmpty(members) {
				s.diags.AddInfo("unmatched_mixin",
					"mixin matches no exported member", "", d.Name())

				continue
			}

			for _, m := range members {
				s.addReference(m, d)
			}
		}
	}
}

// mixinRelationOf returns the first mixin-relation kind present on the
// declaration, in priority order.
func mixinRelationOf(d decl.Declaration) (annotation.Kind, bool) {
	for _, kind := range annotation.MixinRelations {
		if _, ok := d.AnnotationArgument(kind); ok {
			return kind, true
		}
	}

	return 0, false
}
