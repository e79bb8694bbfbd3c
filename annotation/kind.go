// Package annotation defines the closed set of annotation kinds the
// cross-reference engine understands.
//
// Two representations of the same class hierarchy are linked through these
// annotations: the deobfuscated client marks members with Export/Implements,
// while the API mirror and the mixins reference them through Import and the
// five mixin-relation kinds.
package annotation

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	Export
	Import
	Implements

	// Mixin and Mixins declare the target type(s) of a mixin class,
	// singular and plural form respectively.
	Mixin
	Mixins

	Copy
	FieldHook
	MethodHook
	Replace
	Shadow

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// MixinRelations lists the mixin-relation kinds in resolution priority
// order. The first kind present on a declaration wins; the order is fixed.
var MixinRelations = []Kind{
	Copy,
	FieldHook,
	MethodHook,
	Replace,
	Shadow,
}

// Relevant lists every kind that makes a declaration participate in
// cross-reference resolution.
var Relevant = []Kind{
	Export,
	Import,

	Copy,
	FieldHook,
	MethodHook,
	Replace,
	Shadow,
}

// IsMixinRelation reports whether k is one of the five mixin-relation kinds.
func (k Kind) IsMixinRelation() bool {
	switch k {
	default:
		return false
	case Copy, FieldHook, MethodHook, Replace, Shadow:
		return true
	}
}

// IsRelevant reports whether k makes its declaration a navigation candidate.
func (k Kind) IsRelevant() bool {
	return k == Export || k == Import || k.IsMixinRelation()
}
