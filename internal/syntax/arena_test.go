package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func units(kinds ...Kind) []Unit {
	out := make([]Unit, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, Unit{Kind: k, Text: k.String()})
	}
	return out
}

func requireLinked(t *testing.T, a *Arena, head UnitID) {
	t.Helper()
	require.Equal(t, NoUnit, a.Previous(head))
	for q := head; q != NoUnit; q = a.Next(q) {
		if n := a.Next(q); n != NoUnit {
			require.Equal(t, q, a.Previous(n))
		}
	}
}

func TestArenaChain(t *testing.T) {
	t.Parallel()

	a := NewArena()
	require.Nil(t, a.Unit(NoUnit))
	head := a.Chain(units(KindMode, KindBoldTag, KindEquals)...)
	require.Equal(t, []Kind{KindMode, KindBoldTag, KindEquals}, a.Kinds(head))
	require.Equal(t, 3, a.Len())
	requireLinked(t, a, head)
	for _, id := range a.IDs(head) {
		require.Equal(t, NoUnit, a.Unit(id).Sub)
	}
}

func TestArenaInsertAfter(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		at       int
		expected []Kind
	}{
		{
			name:     "middle",
			at:       0,
			expected: []Kind{KindPrio, KindPending, KindOperator, KindIntDenotation},
		},
		{
			name:     "tail",
			at:       2,
			expected: []Kind{KindPrio, KindOperator, KindIntDenotation, KindPending},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			a := NewArena()
			head := a.Chain(units(KindPrio, KindOperator, KindIntDenotation)...)
			at := a.IDs(head)[testCase.at]
			id := a.InsertAfter(at, Unit{Kind: KindPending, Pending: PendingEquals, Text: "="})
			require.Equal(t, testCase.expected, a.Kinds(head))
			require.Equal(t, at, a.Previous(id))
			requireLinked(t, a, head)
		})
	}
}

func TestArenaDelete(t *testing.T) {
	t.Parallel()

	a := NewArena()
	head := a.Chain(units(KindOp, KindOperator, KindOperator, KindEquals)...)
	ids := a.IDs(head)
	a.Delete(ids[2])
	require.Equal(t, []Kind{KindOp, KindOperator, KindEquals}, a.Kinds(head))
	requireLinked(t, a, head)
	require.Equal(t, NoUnit, a.Next(ids[2]))
	require.Equal(t, NoUnit, a.Previous(ids[2]))

	a.Delete(ids[3])
	require.Equal(t, []Kind{KindOp, KindOperator}, a.Kinds(head))
	requireLinked(t, a, head)
}

func TestArenaMakeSub(t *testing.T) {
	t.Parallel()

	t.Run("single unit", func(t *testing.T) {
		t.Parallel()
		a := NewArena()
		head := a.Chain(units(KindLoc, KindDeclarer, KindDefiningIdentifier)...)
		group := a.MakeSub(head, head, KindQualifier)
		require.Equal(t, head, group)
		require.Equal(t, []Kind{KindQualifier, KindDeclarer, KindDefiningIdentifier}, a.Kinds(head))
		require.Equal(t, []Kind{KindLoc}, a.Kinds(a.Unit(group).Sub))
		requireLinked(t, a, head)
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()
		a := NewArena()
		head := a.Chain(units(KindBegin, KindLoc, KindDeclarer, KindDefiningIdentifier, KindEnd)...)
		ids := a.IDs(head)
		group := a.MakeSub(ids[1], ids[3], KindQualifier)
		require.Equal(t, []Kind{KindBegin, KindQualifier, KindEnd}, a.Kinds(head))
		sub := a.Unit(group).Sub
		require.Equal(t, []Kind{KindLoc, KindDeclarer, KindDefiningIdentifier}, a.Kinds(sub))
		requireLinked(t, a, head)
		requireLinked(t, a, sub)
	})
}

func TestInterner(t *testing.T) {
	t.Parallel()

	a := NewArena()
	a.New(KindOperator, "MAX")
	a.New(KindOperator, "MAX")
	a.New(KindEquals, "=")
	require.Equal(t, 2, a.Interner().Len())
}

func TestWalk(t *testing.T) {
	t.Parallel()

	a := NewArena()
	inner := a.Chain(units(KindIdentifier, KindAssign)...)
	head := a.Chain(Unit{Kind: KindBegin}, Unit{Kind: KindOpen, Sub: inner}, Unit{Kind: KindEnd})
	var seen []Kind
	Walk(a, head, func(id UnitID, u *Unit) {
		seen = append(seen, u.Kind)
	})
	require.Equal(t, []Kind{KindBegin, KindOpen, KindIdentifier, KindAssign, KindEnd}, seen)
}

func TestProgramScopes(t *testing.T) {
	t.Parallel()

	p := NewProgram("/test.a68")
	outer := p.Arena.Chain(units(KindBegin, KindEnd)...)
	inner := p.Arena.Chain(units(KindIdentifier)...)
	bracket := p.Arena.Chain(units(KindIdentifier)...)
	s0 := p.AddScope(nil, outer, ContextSerial)
	s1 := p.AddScope(s0.Table, inner, ContextSerial)
	s2 := p.AddLevel(s1.Table, bracket, ContextSome)

	require.Equal(t, outer, p.Root)
	require.Len(t, p.Scopes, 3)
	require.Same(t, s0.Table, s1.Table.Parent())
	require.Same(t, s1.Table, s2.Table)
	require.Equal(t, 1, s1.Table.Level())
	require.Same(t, s1.Table, p.Arena.Unit(inner).Table)
	require.Same(t, s0.Table, p.Arena.Unit(p.Arena.Next(outer)).Table)
}
