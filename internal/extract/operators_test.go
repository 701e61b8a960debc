package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

func TestOperators(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name          string
		units         []string
		expectedKinds []string
		expectedTexts []string
		expectedTags  []string
		expectedCodes []string
	}{
		{
			name:          "routine text",
			units:         []string{"op", "bold-tag MAX", "equals", "open", "identifier x", "close", "semicolon"},
			expectedKinds: []string{"op", "defining-operator", "pending", "open", "identifier", "close", "semicolon"},
			expectedTexts: []string{"OP", "MAX", "=", "(", "x", ")", ";"},
			expectedTags:  []string{"MAX"},
		},
		{
			name: "list",
			units: []string{
				"op", "operator +", "equals", "identifier a", "comma",
				"bold-tag B", "equals", "identifier b", "semicolon",
			},
			expectedKinds: []string{
				"op", "defining-operator", "pending", "identifier", "comma",
				"defining-operator", "pending", "identifier", "semicolon",
			},
			expectedTexts: []string{"OP", "+", "=", "a", ",", "B", "=", "b", ";"},
			expectedTags:  []string{"+", "B"},
		},
		{
			name:          "equals as the name",
			units:         []string{"op", "equals", "equals", "identifier eq"},
			expectedKinds: []string{"op", "defining-operator", "pending", "identifier"},
			expectedTexts: []string{"OP", "=", "=", "eq"},
			expectedTags:  []string{"="},
		},
		{
			name:          "glued equals",
			units:         []string{"op", "operator +=", "identifier plus", "semicolon"},
			expectedKinds: []string{"op", "defining-operator", "pending", "identifier", "semicolon"},
			expectedTexts: []string{"OP", "+", "=", "plus", ";"},
			expectedTags:  []string{"+"},
		},
		{
			name:          "glued equals after assignment operator",
			units:         []string{"op", "operator +:=", "identifier plusab", "semicolon"},
			expectedKinds: []string{"op", "defining-operator", "pending", "identifier", "semicolon"},
			expectedTexts: []string{"OP", "+:", "=", "plusab", ";"},
			expectedTags:  []string{"+:"},
			expectedCodes: []string{exc.CodeMissingSymbol},
		},
		{
			name:          "adjacent operators",
			units:         []string{"op", "operator -", "operator -", "equals", "identifier minus"},
			expectedKinds: []string{"op", "defining-operator", "pending", "identifier"},
			expectedTexts: []string{"OP", "-", "=", "minus"},
			expectedTags:  []string{"-"},
			expectedCodes: []string{exc.CodeInvalidOperatorTag},
		},
		{
			name:          "keyword",
			units:         []string{"op", "if", "equals", "identifier a"},
			expectedKinds: []string{"op", "if", "equals", "identifier"},
			expectedTexts: []string{"OP", "IF", "=", "a"},
			expectedCodes: []string{exc.CodeRedefinedKeyword},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p, x, r := newExtractor(t, level(testCase.units...))
			x.Operators(p.Root)
			require.Equal(t, testCase.expectedKinds, kinds(p.Arena, p.Root))
			require.Equal(t, testCase.expectedTexts, p.Arena.Texts(p.Root))
			table := p.Scopes[0].Table
			require.Equal(t, testCase.expectedTags, tagNames(table, syntax.CategoryOperator))
			for _, tag := range table.Tags(syntax.CategoryOperator) {
				require.True(t, tag.InProc)
				require.True(t, p.Arena.Unit(tag.Unit).Info.InProc)
			}
			require.Equal(t, testCase.expectedCodes, reportedCodes(r))
			require.Equal(t, len(testCase.expectedCodes), r.ErrorCount())
		})
	}
}

func TestOperatorWithPlan(t *testing.T) {
	t.Parallel()

	doc := `
context: serial-clause
units:
  - op
  - kind: open
    sub:
      context: declarer-pack
      units: [declarer INT, comma, declarer INT]
  - declarer INT
  - bold-tag MAX
  - equals
  - identifier max
  - semicolon
`
	p, x, r := newExtractor(t, doc)
	x.Operators(p.Root)
	require.Empty(t, r.Reported())
	require.Equal(t, []string{"op", "open", "declarer", "defining-operator", "pending", "identifier", "semicolon"}, kinds(p.Arena, p.Root))

	tag := p.Scopes[0].Table.Find(syntax.CategoryOperator, "MAX")
	require.True(t, tag.IsPresent())
	require.False(t, tag.Value().InProc)
	require.False(t, p.Arena.Unit(tag.Value().Unit).Info.InProc)
	// The pack shares the table of the declaration.
	require.Same(t, p.Scopes[0].Table, p.Scopes[1].Table)
}
