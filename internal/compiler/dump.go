package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/pietro/gcc/internal/syntax"
)

func dumpProgramUnits(w io.Writer, p *syntax.Program) {
	fmt.Fprintf(w, "units %s\n", p.URI)
	dumpSequence(w, p.Arena, p.Root, 1)
}

func dumpSequence(w io.Writer, a *syntax.Arena, head syntax.UnitID, depth int) {
	indent := strings.Repeat("  ", depth)
	for q := head; q != syntax.NoUnit; q = a.Next(q) {
		u := a.Unit(q)
		fmt.Fprintf(w, "%s%d:%d %s %q", indent, u.Line, u.Column, u.Kind, u.Text)
		if u.Kind == syntax.KindOperator {
			fmt.Fprintf(w, " priority=%d", u.Info.Priority)
		}
		if u.Info.Variable {
			fmt.Fprint(w, " variable")
		}
		if u.Info.InProc {
			fmt.Fprint(w, " proc")
		}
		fmt.Fprintln(w)
		if u.Sub != syntax.NoUnit {
			dumpSequence(w, a, u.Sub, depth+1)
		}
	}
}

var dumpCategories = []syntax.Category{
	syntax.CategoryIndicant,
	syntax.CategoryPriority,
	syntax.CategoryOperator,
	syntax.CategoryIdentifier,
	syntax.CategoryLabel,
}

func dumpProgramTags(w io.Writer, p *syntax.Program) {
	fmt.Fprintf(w, "tags %s\n", p.URI)
	seen := make(map[*syntax.Table]bool)
	for _, s := range p.Scopes {
		if seen[s.Table] {
			continue
		}
		seen[s.Table] = true
		fmt.Fprintf(w, "  level %d\n", s.Table.Level())
		for _, c := range dumpCategories {
			for _, tag := range s.Table.Tags(c) {
				fmt.Fprintf(w, "    %s %q", c, tag.Name)
				switch {
				case c == syntax.CategoryPriority:
					fmt.Fprintf(w, " %d", tag.Priority)
				case tag.Variable:
					fmt.Fprint(w, " variable")
				case tag.LocalLabel:
					fmt.Fprint(w, " local")
				}
				if tag.InProc {
					fmt.Fprint(w, " proc")
				}
				fmt.Fprintln(w)
			}
		}
	}
}
