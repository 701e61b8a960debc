package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

func TestIndicants(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		units         []string
		expectedKinds []string
		expectedTags  []string
		expectedCodes []string
	}{
		{
			name:          "single",
			units:         []string{"mode", "bold-tag COMPLEX", "equals", "struct", "open", "semicolon"},
			expectedKinds: []string{"mode", "defining-indicant", "pending", "struct", "open", "semicolon"},
			expectedTags:  []string{"COMPLEX"},
		},
		{
			name: "list",
			units: []string{
				"mode", "bold-tag A", "equals", "declarer INT", "comma",
				"bold-tag B", "equals", "ref", "declarer A", "semicolon",
			},
			expectedKinds: []string{
				"mode", "defining-indicant", "pending", "declarer", "comma",
				"defining-indicant", "pending", "ref", "declarer", "semicolon",
			},
			expectedTags: []string{"A", "B"},
		},
		{
			name: "procedure declarer",
			units: []string{
				"mode", "bold-tag P", "equals", "proc", "open", "declarer VOID", "comma",
				"bold-tag Q", "equals", "declarer INT",
			},
			expectedKinds: []string{
				"mode", "defining-indicant", "pending", "proc", "open", "declarer", "comma",
				"defining-indicant", "pending", "declarer",
			},
			expectedTags: []string{"P", "Q"},
		},
		{
			name:          "keyword",
			units:         []string{"mode", "ref", "equals", "declarer INT", "semicolon"},
			expectedKinds: []string{"mode", "ref", "equals", "declarer", "semicolon"},
			expectedCodes: []string{exc.CodeRedefinedKeyword},
		},
		{
			name:          "no equals",
			units:         []string{"mode", "bold-tag A", "semicolon"},
			expectedKinds: []string{"mode", "bold-tag", "semicolon"},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p, x, r := newExtractor(t, level(testCase.units...))
			x.Indicants(p.Root)
			require.Equal(t, testCase.expectedKinds, kinds(p.Arena, p.Root))
			require.Equal(t, testCase.expectedTags, tagNames(p.Scopes[0].Table, syntax.CategoryIndicant))
			require.Equal(t, testCase.expectedCodes, reportedCodes(r))
		})
	}
}

func TestIndicantEqualsSettles(t *testing.T) {
	t.Parallel()

	p, x, r := newExtractor(t, level("mode", "bold-tag COMPLEX", "equals", "declarer REAL", "semicolon"))
	eq := p.Arena.Next(p.Arena.Next(p.Root))

	x.Indicants(p.Root)
	require.Equal(t, syntax.KindPending, p.Arena.Unit(eq).Kind)
	require.Equal(t, syntax.PendingEquals, p.Arena.Unit(eq).Pending)

	x.Declarations(p.Root)
	require.Equal(t, syntax.KindEquals, p.Arena.Unit(eq).Kind)
	require.Equal(t, syntax.PendingNone, p.Arena.Unit(eq).Pending)
	require.Empty(t, r.Reported())

	tag := p.Scopes[0].Table.Find(syntax.CategoryIndicant, "COMPLEX")
	require.True(t, tag.IsPresent())
	require.Equal(t, p.Arena.Next(p.Root), tag.Value().Unit)
}
