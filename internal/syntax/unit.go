// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// UnitID addresses a unit within its Arena. IDs are never reused.
type UnitID int32

const NoUnit UnitID = 0

// Info holds attributes filled in by extraction and resolution.
type Info struct {
	Priority int
	Variable bool
	InProc   bool
	// Elaborated is set once bold-tag resolution has considered the unit.
	Elaborated bool
	// Prioritised is set once priority resolution has considered the unit.
	Prioritised bool
}

// Unit is one element of a lexical level's sequence.
type Unit struct {
	Kind    Kind
	Pending Pending
	Text    string
	Table   *Table
	Sub     UnitID
	Info    Info
	Line    int32
	Column  int32

	next     UnitID
	previous UnitID
}

// Is reports whether the unit currently has kind k.
func (u *Unit) Is(k Kind) bool {
	return u != nil && u.Kind == k
}

// MarkPending parks the unit in the pending state until Settle is called.
func (u *Unit) MarkPending(p Pending) {
	u.Kind = KindPending
	u.Pending = p
}

// Settle gives a pending unit its final kind. It is a no-op on units that are
// not pending.
func (u *Unit) Settle() {
	if u.Kind != KindPending {
		return
	}
	u.Kind = u.Pending.Kind()
	u.Pending = PendingNone
}
