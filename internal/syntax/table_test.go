package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableFind(t *testing.T) {
	t.Parallel()

	outer := NewTable(nil)
	inner := NewTable(outer)

	outerMax := outer.Add(CategoryPriority, "MAX", 1)
	outerMax.Priority = 5
	innerMax := inner.Add(CategoryPriority, "MAX", 2)
	innerMax.Priority = 7
	outer.Add(CategoryIndicant, "COMPLEX", 3)

	require.Same(t, innerMax, inner.FindGlobal(CategoryPriority, "MAX").Value())
	require.Same(t, outerMax, outer.FindGlobal(CategoryPriority, "MAX").Value())
	require.True(t, inner.FindGlobal(CategoryIndicant, "COMPLEX").IsPresent())
	require.False(t, inner.Find(CategoryIndicant, "COMPLEX").IsPresent())
	require.False(t, inner.FindGlobal(CategoryOperator, "COMPLEX").IsPresent())
	require.False(t, outer.FindGlobal(CategoryIndicant, "REAL").IsPresent())
}

func TestTableDuplicates(t *testing.T) {
	t.Parallel()

	table := NewTable(nil)
	first := table.Add(CategoryIdentifier, "x", 1)
	second := table.Add(CategoryIdentifier, "x", 2)
	require.NotSame(t, first, second)
	require.Len(t, table.Tags(CategoryIdentifier), 2)
	require.Same(t, first, table.Find(CategoryIdentifier, "x").Value())
}

func TestTableAddInvalid(t *testing.T) {
	t.Parallel()

	var none *Table
	require.Nil(t, none.Add(CategoryIdentifier, "x", 1))
	require.Nil(t, NewTable(nil).Add(categoryCount, "x", 1))
	require.Empty(t, none.Tags(CategoryIdentifier))
}
