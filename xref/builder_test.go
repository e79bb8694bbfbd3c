package xref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xref-assist/annotation"
	"xref-assist/decl"
	"xref-assist/xref"
)

// The scenario from the navigation feature this engine backs: a static
// export Player.health in the client, imported by the RSPlayer mirror.
func TestStaticFallbackScenario(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	client := ix.AddType("du").Annotate(annotation.Implements, "Player")
	d1 := client.AddStatic("field42").Annotate(annotation.Export, "health")

	mirror := ix.AddType("RSPlayer")
	d2 := mirror.AddMember("getHealth").Annotate(annotation.Import, "health")

	state := xref.NewBuilder(ix).Build()

	// No instance export ("health", "Player") exists, so the import
	// resolves to ("health", "<static>").
	info, ok := state.Lookup(xref.Member{Name: "health", Location: xref.StaticLocation})
	require.True(t, ok)
	assert.Equal(t, decl.Declaration(d1), info.Export)

	assert.Equal(t, []decl.Declaration{d2}, state.ExportsReferencing(d1))
	assert.Equal(t, []decl.Declaration{d1}, state.ReferencesOf(d2))
}

func TestInstanceExportPreferredOverStatic(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	client := ix.AddType("du").Annotate(annotation.Implements, "Player")
	instance := client.AddMember("f1").Annotate(annotation.Export, "health")
	static := client.AddStatic("f2").Annotate(annotation.Export, "health")

	imp := ix.AddType("RSPlayer").AddMember("getHealth").Annotate(annotation.Import, "health")

	state := xref.NewBuilder(ix).Build()

	assert.Equal(t, []decl.Declaration{instance}, state.ReferencesOf(imp))
	assert.Empty(t, state.ExportsReferencing(static))
}

func TestFirstExportWins(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	client := ix.AddType("du").Annotate(annotation.Implements, "Player")
	first := client.AddMember("f1").Annotate(annotation.Export, "health")
	second := client.AddMember("f2").Annotate(annotation.Export, "health")

	state := xref.NewBuilder(ix).Build()

	info, ok := state.Lookup(xref.Member{Name: "health", Location: "Player"})
	require.True(t, ok)
	assert.Equal(t, decl.Declaration(first), info.Export)

	// The losing declaration still maps back to the winning export.
	assert.Equal(t, []decl.Declaration{first}, state.ReferencesOf(second))
}

func TestDanglingImportIsNoOp(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()
	imp := ix.AddType("RSPlayer").AddMember("getMana").Annotate(annotation.Import, "mana")

	state := xref.NewBuilder(ix).Build()

	assert.Empty(t, state.ReferencesOf(imp))

	diags := state.Diagnostics()
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "dangling_import", diags.Infos[0].Code)
}

func TestUnresolvableInstanceExportDropped(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	// Owning type declares no external type: the instance export cannot be
	// located and is silently ignored.
	exp := ix.AddType("du").AddMember("f1").Annotate(annotation.Export, "health")

	state := xref.NewBuilder(ix).Build()

	assert.Empty(t, state.ExportsReferencing(exp))

	diags := state.Diagnostics()
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "unresolved_export", diags.Infos[0].Code)
}

func TestRoundTripNavigation(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	client := ix.AddType("du").Annotate(annotation.Implements, "Player")
	exp := client.AddMember("f1").Annotate(annotation.Export, "health")

	mirror := ix.AddType("RSPlayer")
	impB := mirror.AddMember("bHealth").Annotate(annotation.Import, "health")
	impA := mirror.AddMember("aHealth").Annotate(annotation.Import, "health")

	hook := ix.AddType("PlayerMixin").Target(mirror).
		AddMember("cHook").Annotate(annotation.FieldHook, "health")

	state := xref.NewBuilder(ix).Build()

	// Sorted by declaration name, not discovery order.
	refs := state.ExportsReferencing(exp)
	assert.Equal(t, []decl.Declaration{impA, impB, hook}, refs)

	for _, ref := range refs {
		assert.Contains(t, state.ReferencesOf(ref), decl.Declaration(exp))
	}
}

// The plural-target scenario: a Replace("tick") mixin applied to RSNpc and
// RSPlayer where only Npc exports a tick.
func TestMixinPluralTargets(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	npc := ix.AddType("cn").Annotate(annotation.Implements, "Npc")
	npcTick := npc.AddMember("f7").Annotate(annotation.Export, "tick")

	rsNpc := ix.AddType("RSNpc")
	rsPlayer := ix.AddType("RSPlayer")

	m := ix.AddType("ActorMixin").Target(rsNpc).Target(rsPlayer).
		AddMember("tick").Annotate(annotation.Replace, "tick")

	state := xref.NewBuilder(ix).Build()

	assert.Equal(t, []decl.Declaration{npcTick}, state.ReferencesOf(m))
	assert.Equal(t, []decl.Declaration{m}, state.ExportsReferencing(npcTick))
}

func TestConstructorMixinSynthesis(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	npc := ix.AddType("cn").Annotate(annotation.Implements, "Npc")
	// The implementer table is populated while processing exports, so the
	// type must export at least one member for its constructor to be found.
	npc.AddMember("f1").Annotate(annotation.Export, "id")
	ctor := npc.AddConstructor()

	rsNpc := ix.AddType("RSNpc")
	m := ix.AddType("NpcMixin").Target(rsNpc).
		AddMember("rl$init").Annotate(annotation.Copy, "<init>")

	state := xref.NewBuilder(ix).Build()

	info, ok := state.Lookup(xref.Member{Name: "<init>", Location: "Npc"})
	require.True(t, ok, "constructor export should be synthesized")
	assert.Equal(t, decl.Declaration(ctor), info.Export)

	assert.Equal(t, []decl.Declaration{ctor}, state.ReferencesOf(m))
}

func TestConstructorMixinAmbiguous(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	npc := ix.AddType("cn").Annotate(annotation.Implements, "Npc")
	npc.AddMember("f1").Annotate(annotation.Export, "id")
	npc.AddConstructor()
	npc.AddConstructor()

	rsNpc := ix.AddType("RSNpc")
	m := ix.AddType("NpcMixin").Target(rsNpc).
		AddMember("rl$init").Annotate(annotation.Copy, "<init>")

	state := xref.NewBuilder(ix).Build()

	_, ok := state.Lookup(xref.Member{Name: "<init>", Location: "Npc"})
	assert.False(t, ok, "no export may be synthesized for an ambiguous constructor")
	assert.Empty(t, state.ReferencesOf(m))

	diags := state.Diagnostics()
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "multi_constructor_target", diags.Warnings[0].Code)
}

func TestStaticMixinReference(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	client := ix.AddType("client")
	exp := client.AddStatic("f9").Annotate(annotation.Export, "frameCallback")

	m := ix.AddType("ClientMixin").
		AddStatic("hook").Annotate(annotation.MethodHook, "frameCallback")

	state := xref.NewBuilder(ix).Build()

	assert.Equal(t, []decl.Declaration{exp}, state.ReferencesOf(m))
	assert.Equal(t, []decl.Declaration{m}, state.ExportsReferencing(exp))
}

func TestMixinProcessedOncePerDeclaration(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	client := ix.AddType("du").Annotate(annotation.Implements, "Player")
	exp := client.AddMember("f1").Annotate(annotation.Export, "tick")

	rsPlayer := ix.AddType("RSPlayer")

	// Carries two relation annotations; only the higher-priority Copy may
	// contribute, and only once.
	m := ix.AddType("PlayerMixin").Target(rsPlayer).
		AddMember("tick").
		Annotate(annotation.Copy, "tick").
		Annotate(annotation.Replace, "tick")

	state := xref.NewBuilder(ix).Build()

	info, ok := state.Lookup(xref.Member{Name: "tick", Location: "Player"})
	require.True(t, ok)
	assert.Equal(t, []decl.Declaration{m}, info.References)
	assert.Equal(t, []decl.Declaration{exp}, state.ReferencesOf(m))
}

func TestImplementerRecordedForStaticExports(t *testing.T) {
	t.Parallel()

	ix := decl.NewMemoryIndex()

	// Even a purely static export records its owning type as implementer.
	npc := ix.AddType("cn").Annotate(annotation.Implements, "Npc")
	npc.AddStatic("f1").Annotate(annotation.Export, "count")

	state := xref.NewBuilder(ix).Build()

	impl, ok := state.Implementer("Npc")
	require.True(t, ok)
	assert.Equal(t, "cn", impl.Name())
}
