package compiler

import (
	"github.com/pietro/gcc/internal/extract"
	"github.com/pietro/gcc/internal/syntax"
)

// Traversal says what a Phase is applied to.
type Traversal uint8

const (
	// TraversalScope phases run once per lexical level, outermost first.
	TraversalScope Traversal = iota
	// TraversalProgram phases run once per program after every level has
	// been through all TraversalScope phases.
	TraversalProgram
)

func (t Traversal) String() string {
	switch t {
	case TraversalScope:
		return "scope"
	case TraversalProgram:
		return "program"
	default:
		return "unknown"
	}
}

// Phase is one step of declaration extraction. Exactly one of Scope and
// Program is set, matching Traversal.
type Phase struct {
	Name      string
	Traversal Traversal
	Scope     func(x *extract.Extractor, s *syntax.Scope)
	Program   func(x *extract.Extractor, p *syntax.Program)
}

// notDeclarerPack guards the phases that must not look inside the pack of a
// declarer. A pack holds field selectors and formal parameters, not
// declarations, and it shares the enclosing table.
func notDeclarerPack(f func(x *extract.Extractor, s *syntax.Scope)) func(x *extract.Extractor, s *syntax.Scope) {
	return func(x *extract.Extractor, s *syntax.Scope) {
		if s.Context == syntax.ContextDeclarerPack {
			return
		}
		f(x, s)
	}
}

// Phases lists the extraction steps in the order they run. The scope phases
// depend on each other's kind rewrites and must keep this order.
func Phases(verify bool) []Phase {
	phases := []Phase{
		{
			Name:      "indicants",
			Traversal: TraversalScope,
			Scope: func(x *extract.Extractor, s *syntax.Scope) {
				x.Indicants(s.Head)
			},
		},
		{
			Name:      "priorities",
			Traversal: TraversalScope,
			Scope: notDeclarerPack(func(x *extract.Extractor, s *syntax.Scope) {
				x.Priorities(s.Head)
			}),
		},
		{
			Name:      "operators",
			Traversal: TraversalScope,
			Scope: notDeclarerPack(func(x *extract.Extractor, s *syntax.Scope) {
				x.Operators(s.Head)
			}),
		},
		{
			Name:      "declarations",
			Traversal: TraversalScope,
			Scope: notDeclarerPack(func(x *extract.Extractor, s *syntax.Scope) {
				x.Declarations(s.Head)
			}),
		},
		{
			Name:      "labels",
			Traversal: TraversalScope,
			Scope: notDeclarerPack(func(x *extract.Extractor, s *syntax.Scope) {
				x.Labels(s.Head, s.Context)
			}),
		},
		{
			Name:      "bold-tags",
			Traversal: TraversalProgram,
			Program: func(x *extract.Extractor, p *syntax.Program) {
				x.BoldTags(p.Root)
			},
		},
		{
			Name:      "operator-priorities",
			Traversal: TraversalProgram,
			Program: func(x *extract.Extractor, p *syntax.Program) {
				x.OperatorPriorities(p.Root)
			},
		},
	}
	if verify {
		phases = append(phases, Phase{
			Name:      "verify",
			Traversal: TraversalProgram,
			Program: func(x *extract.Extractor, p *syntax.Program) {
				x.Verify(p)
			},
		})
	}
	return phases
}

// runPhases applies phases to p. Scope phases run level by level so that a
// level is fully extracted before the next one starts.
func runPhases(x *extract.Extractor, p *syntax.Program, phases []Phase) {
	for _, s := range p.Scopes {
		for _, phase := range phases {
			if phase.Traversal == TraversalScope {
				phase.Scope(x, s)
			}
		}
	}
	for _, phase := range phases {
		if phase.Traversal == TraversalProgram {
			phase.Program(x, p)
		}
	}
}
