// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Walk visits every unit of the sequence at head and of all nested
// sequences, depth first, each unit before its sub-sequence. f may change a
// unit's kind or info but not the links of any sequence.
func Walk(a *Arena, head UnitID, f func(UnitID, *Unit)) {
	for q := head; q != NoUnit; q = a.Next(q) {
		u := a.Unit(q)
		f(q, u)
		if u.Sub != NoUnit {
			Walk(a, u.Sub, f)
		}
	}
}

// Scope is one lexical level of a program: the head of its flat sequence,
// its table and the context the sequence is parsed in.
type Scope struct {
	Head    UnitID
	Table   *Table
	Context Context
}

// Program is one compilation unit.
type Program struct {
	URI   string
	Arena *Arena
	Root  UnitID
	// Scopes are ordered outermost first.
	Scopes []*Scope
}

// NewProgram returns an empty program with its own arena.
func NewProgram(uri string) *Program {
	return &Program{
		URI:   uri,
		Arena: NewArena(),
	}
}

// AddScope registers the sequence at head as a lexical scope nested in parent
// (nil for the outermost) with a table of its own.
func (p *Program) AddScope(parent *Table, head UnitID, context Context) *Scope {
	return p.AddLevel(NewTable(parent), head, context)
}

// AddLevel registers the sequence at head as a level to be extracted that
// shares table with another level, as a bracketed phrase that is not a range
// does. Every unit of the sequence is pointed at table.
func (p *Program) AddLevel(table *Table, head UnitID, context Context) *Scope {
	s := &Scope{
		Head:    head,
		Table:   table,
		Context: context,
	}
	if len(p.Scopes) == 0 {
		p.Root = head
	}
	p.Scopes = append(p.Scopes, s)
	for q := head; q != NoUnit; q = p.Arena.Next(q) {
		p.Arena.Unit(q).Table = table
	}
	return s
}
