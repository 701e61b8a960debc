// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Whether reports whether the units starting at id have the given kinds, in
// order. KindWildcard accepts any unit and KindKeyword accepts any reserved
// word. A sequence that ends early does not match.
func (a *Arena) Whether(id UnitID, kinds ...Kind) bool {
	q := id
	for _, k := range kinds {
		u := a.Unit(q)
		if u == nil {
			return false
		}
		switch k {
		case KindWildcard:
		case KindKeyword:
			if !u.Kind.IsKeyword() {
				return false
			}
		default:
			if u.Kind != k {
				return false
			}
		}
		q = u.next
	}
	return true
}

// IsOneOf reports whether the unit at id has one of the given kinds.
func (a *Arena) IsOneOf(id UnitID, kinds ...Kind) bool {
	u := a.Unit(id)
	if u == nil {
		return false
	}
	for _, k := range kinds {
		if u.Kind == k {
			return true
		}
	}
	return false
}

// Is reports whether the unit at id has kind k.
func (a *Arena) Is(id UnitID, k Kind) bool {
	return a.Unit(id).Is(k)
}
