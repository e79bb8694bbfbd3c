package xref

import (
	"sort"

	"xref-assist/annotation"
	"xref-assist/decl"
)

// ExportsReferencing returns the declarations that import or mix into the
// export declared by d, sorted by declaration name. Empty when d declares no
// resolvable export or nothing references it; never an error.
func (s *State) ExportsReferencing(d decl.Declaration) []decl.Declaration {
	m, ok := s.memberFromExported(d)
	if !ok {
		return nil
	}

	info, ok := s.exports[m]
	if !ok || len(info.References) == 0 {
		return nil
	}

	targets := make([]decl.Declaration, len(info.References))
	copy(targets, info.References)
	sortByName(targets)

	return targets
}

// ReferencesOf returns the export declarations d is known to reference,
// sorted by declaration name. Identities whose export has gone away
// contribute nothing; empty when d has no recorded identities.
func (s *State) ReferencesOf(d decl.Declaration) []decl.Declaration {
	members := s.references[d]
	if len(members) == 0 {
		return nil
	}

	targets := make([]decl.Declaration, 0, len(members))

	for m := range members {
		if info, ok := s.exports[m]; ok {
			targets = append(targets, info.Export)
		}
	}

	sortByName(targets)

	return targets
}

// RelationOf returns the relevant annotation kind d carries, checking kinds
// in the fixed relevance order.
func RelationOf(d decl.Declaration) (annotation.Kind, bool) {
	for _, kind := range annotation.Relevant {
		if _, ok := d.AnnotationArgument(kind); ok {
			return kind, true
		}
	}

	return 0, false
}

// Related dispatches on the relation d carries: an export navigates to its
// references, an import or mixin navigates to its exports. Declarations
// carrying no relevant annotation resolve to nothing.
func (s *State) Related(d decl.Declaration) []decl.Declaration {
	kind, ok := RelationOf(d)
	if !ok {
		return nil
	}

	if kind == annotation.Export {
		return s.ExportsReferencing(d)
	}

	return s.ReferencesOf(d)
}

func sortByName(targets []decl.Declaration) {
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Name() < targets[j].Name()
	})
}
