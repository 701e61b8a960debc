// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Arena owns every unit of one compilation. Units are addressed by UnitID and
// linked into sequences through next/previous IDs. Deleted units keep their
// slot; the arena is released as a whole. Slot zero is reserved so that the
// zero UnitID is NoUnit.
type Arena struct {
	units    []*Unit
	interner *Interner
}

func NewArena() *Arena {
	return &Arena{
		units:    []*Unit{nil},
		interner: NewInterner(),
	}
}

// Interner returns the arena's token interner.
func (a *Arena) Interner() *Interner {
	return a.interner
}

// New allocates an unlinked unit.
func (a *Arena) New(kind Kind, text string) UnitID {
	return a.add(Unit{Kind: kind, Text: text})
}

func (a *Arena) add(u Unit) UnitID {
	u.Text = a.interner.Intern(u.Text)
	u.next = NoUnit
	u.previous = NoUnit
	id := UnitID(len(a.units))
	a.units = append(a.units, &u)
	return id
}

// Unit returns the unit addressed by id, or nil for NoUnit.
func (a *Arena) Unit(id UnitID) *Unit {
	if id <= NoUnit || int(id) >= len(a.units) {
		return nil
	}
	return a.units[id]
}

// Len returns the number of allocated units, deleted ones included.
func (a *Arena) Len() int {
	return len(a.units) - 1
}

func (a *Arena) Next(id UnitID) UnitID {
	if u := a.Unit(id); u != nil {
		return u.next
	}
	return NoUnit
}

func (a *Arena) Previous(id UnitID) UnitID {
	if u := a.Unit(id); u != nil {
		return u.previous
	}
	return NoUnit
}

// Chain allocates the given units as one sequence and returns its head.
func (a *Arena) Chain(units ...Unit) UnitID {
	head, tail := NoUnit, NoUnit
	for _, u := range units {
		id := a.add(u)
		if tail == NoUnit {
			head = id
		} else {
			a.link(tail, id)
		}
		tail = id
	}
	return head
}

func (a *Arena) link(tail UnitID, id UnitID) {
	a.units[tail].next = id
	a.units[id].previous = tail
}

// InsertAfter splices a copy of u in right after the unit at, keeping links on
// both sides consistent, and returns the new unit's ID.
func (a *Arena) InsertAfter(at UnitID, u Unit) UnitID {
	id := a.add(u)
	after := a.units[at].next
	a.units[at].next = id
	a.units[id].previous = at
	a.units[id].next = after
	if after != NoUnit {
		a.units[after].previous = id
	}
	return id
}

// Delete unlinks id from its sequence. The head of a sequence must not be
// deleted since nothing would point at its successor.
func (a *Arena) Delete(id UnitID) {
	u := a.units[id]
	if u.previous != NoUnit {
		a.units[u.previous].next = u.next
	}
	if u.next != NoUnit {
		a.units[u.next].previous = u.previous
	}
	u.next = NoUnit
	u.previous = NoUnit
}

// MakeSub isolates first..last into a child sequence and turns first into a
// grouping unit of the given kind in their place:
//
//	x - first - a - last - y
//	x - first' - y
//	        |
//	        first - a - last
//
// The grouping unit keeps first's ID so that cursors held by the caller stay
// valid; the original content of first moves to a fresh slot.
func (a *Arena) MakeSub(first UnitID, last UnitID, kind Kind) UnitID {
	p := a.units[first]
	z := *p
	z.previous = NoUnit
	zid := UnitID(len(a.units))
	a.units = append(a.units, &z)
	if first == last {
		z.next = NoUnit
	} else {
		if p.next != NoUnit {
			a.units[p.next].previous = zid
		}
		p.next = a.units[last].next
		if p.next != NoUnit {
			a.units[p.next].previous = first
		}
		a.units[last].next = NoUnit
	}
	p.Sub = zid
	p.Kind = kind
	p.Pending = PendingNone
	return first
}

// IDs lists the sequence starting at head.
func (a *Arena) IDs(head UnitID) []UnitID {
	var out []UnitID
	for q := head; q != NoUnit; q = a.Next(q) {
		out = append(out, q)
	}
	return out
}

// Kinds lists the kinds of the sequence starting at head.
func (a *Arena) Kinds(head UnitID) []Kind {
	var out []Kind
	for q := head; q != NoUnit; q = a.Next(q) {
		out = append(out, a.units[q].Kind)
	}
	return out
}

// Texts lists the texts of the sequence starting at head.
func (a *Arena) Texts(head UnitID) []string {
	var out []string
	for q := head; q != NoUnit; q = a.Next(q) {
		out = append(out, a.units[q].Text)
	}
	return out
}
