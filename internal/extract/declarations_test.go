package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

type identifierTag struct {
	name     string
	variable bool
	inProc   bool
}

func TestDeclarations(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		units         []string
		expectedKinds []string
		expectedTags  []identifierTag
		expectedCodes []string
	}{
		{
			name: "identities",
			units: []string{
				"declarer INT", "identifier a", "equals", "int-denotation 1", "comma",
				"identifier b", "equals", "int-denotation 2", "semicolon",
			},
			expectedKinds: []string{
				"declarer", "defining-identifier", "equals", "int-denotation", "comma",
				"defining-identifier", "equals", "int-denotation", "semicolon",
			},
			expectedTags: []identifierTag{{name: "a"}, {name: "b"}},
		},
		{
			name: "variables",
			units: []string{
				"declarer INT", "identifier a", "assign", "int-denotation 1", "comma",
				"identifier b", "semicolon",
			},
			expectedKinds: []string{
				"declarer", "defining-identifier", "assign", "int-denotation", "comma",
				"defining-identifier", "semicolon",
			},
			expectedTags: []identifierTag{{name: "a", variable: true}, {name: "b", variable: true}},
		},
		{
			name:          "local variable",
			units:         []string{"loc", "declarer REAL", "identifier x", "semicolon"},
			expectedKinds: []string{"qualifier", "declarer", "defining-identifier", "semicolon"},
			expectedTags:  []identifierTag{{name: "x", variable: true}},
		},
		{
			name:          "procedure identity",
			units:         []string{"proc", "identifier f", "equals", "identifier g", "semicolon"},
			expectedKinds: []string{"proc", "defining-identifier", "equals", "identifier", "semicolon"},
			expectedTags:  []identifierTag{{name: "f", inProc: true}},
		},
		{
			name:          "heap procedure variable",
			units:         []string{"heap", "proc", "identifier p", "assign", "identifier g", "semicolon"},
			expectedKinds: []string{"qualifier", "proc", "defining-identifier", "assign", "identifier", "semicolon"},
			expectedTags:  []identifierTag{{name: "p", variable: true, inProc: true}},
		},
		{
			name:          "procedure variable without value",
			units:         []string{"proc", "identifier p", "semicolon"},
			expectedKinds: []string{"proc", "identifier", "semicolon"},
		},
		{
			name: "assignment in an identity list",
			units: []string{
				"declarer REAL", "identifier a", "equals", "int-denotation 1", "comma",
				"identifier x", "assign", "int-denotation 2", "semicolon",
			},
			expectedKinds: []string{
				"declarer", "defining-identifier", "equals", "int-denotation", "comma",
				"defining-identifier", "equals", "int-denotation", "semicolon",
			},
			expectedTags:  []identifierTag{{name: "a"}, {name: "x"}},
			expectedCodes: []string{exc.CodeMixedDeclaration},
		},
		{
			name: "equals in a variable list",
			units: []string{
				"declarer INT", "identifier i", "assign", "int-denotation 1", "comma",
				"identifier j", "equals", "int-denotation 2", "semicolon",
			},
			expectedKinds: []string{
				"declarer", "defining-identifier", "assign", "int-denotation", "comma",
				"defining-identifier", "assign", "int-denotation", "semicolon",
			},
			expectedTags:  []identifierTag{{name: "i", variable: true}, {name: "j", variable: true}},
			expectedCodes: []string{exc.CodeMixedDeclaration},
		},
		{
			name: "equals in a procedure variable list",
			units: []string{
				"proc", "identifier p", "assign", "identifier a", "comma",
				"identifier q", "equals", "identifier b", "semicolon",
			},
			expectedKinds: []string{
				"proc", "defining-identifier", "assign", "identifier", "comma",
				"defining-identifier", "assign", "identifier", "semicolon",
			},
			expectedTags: []identifierTag{
				{name: "p", variable: true, inProc: true},
				{name: "q", variable: true, inProc: true},
			},
			expectedCodes: []string{exc.CodeMixedDeclaration},
		},
		{
			name:          "equality operator",
			units:         []string{"declarer BOOL", "identifier t", "equals", "identifier a", "equals", "identifier b"},
			expectedKinds: []string{"declarer", "defining-identifier", "equals", "identifier", "operator", "identifier"},
			expectedTags:  []identifierTag{{name: "t"}},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p, x, r := newExtractor(t, level(testCase.units...))
			x.Declarations(p.Root)
			require.Equal(t, testCase.expectedKinds, kinds(p.Arena, p.Root))
			var tags []identifierTag
			for _, tag := range p.Scopes[0].Table.Tags(syntax.CategoryIdentifier) {
				tags = append(tags, identifierTag{name: tag.Name, variable: tag.Variable, inProc: tag.InProc})
				u := p.Arena.Unit(tag.Unit)
				require.Equal(t, syntax.KindDefiningIdentifier, u.Kind)
				require.Equal(t, tag.Variable, u.Info.Variable)
				require.Equal(t, tag.InProc, u.Info.InProc)
			}
			require.Equal(t, testCase.expectedTags, tags)
			require.Equal(t, testCase.expectedCodes, reportedCodes(r))
			syntax.Walk(p.Arena, p.Root, func(id syntax.UnitID, u *syntax.Unit) {
				require.NotEqual(t, syntax.KindPending, u.Kind)
			})
		})
	}
}

func TestQualifierGroupsStorageKeyword(t *testing.T) {
	t.Parallel()

	p, x, _ := newExtractor(t, level("heap", "declarer INT", "identifier n", "semicolon"))
	x.Declarations(p.Root)

	q := p.Arena.Unit(p.Root)
	require.Equal(t, syntax.KindQualifier, q.Kind)
	require.Equal(t, []string{"heap"}, kinds(p.Arena, q.Sub))
	require.Equal(t, []string{"HEAP"}, p.Arena.Texts(q.Sub))
	require.Equal(t, syntax.NoUnit, p.Arena.Previous(q.Sub))
}
