// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

// Declarations gathers the identity and variable declarations of the level at
// head, then settles every equals symbol and folds storage qualifiers. The
// scans run in a fixed order since each relies on the kinds rewritten by the
// ones before it.
func (x *Extractor) Declarations(head syntax.UnitID) {
	table := x.table(head)
	x.identities(table, head)
	x.variables(table, head)
	x.procIdentities(table, head)
	x.procVariables(table, head)

	// An equals symbol that did not introduce a declaration is the
	// operator.
	for q := head; q != syntax.NoUnit; q = x.next(q) {
		u := x.arena.Unit(q)
		switch u.Kind {
		case syntax.KindEquals:
			u.Kind = syntax.KindOperator
		case syntax.KindPending:
			u.Settle()
		}
	}

	for q := head; q != syntax.NoUnit; q = x.next(q) {
		if x.whether(q, syntax.KindLoc, syntax.KindDeclarer, syntax.KindDefiningIdentifier) ||
			x.whether(q, syntax.KindHeap, syntax.KindDeclarer, syntax.KindDefiningIdentifier) ||
			x.whether(q, syntax.KindLoc, syntax.KindProc, syntax.KindDefiningIdentifier) ||
			x.whether(q, syntax.KindHeap, syntax.KindProc, syntax.KindDefiningIdentifier) {
			x.arena.MakeSub(q, q, syntax.KindQualifier)
		}
	}
}

func (x *Extractor) defineIdentifier(table *syntax.Table, q syntax.UnitID, variable bool, inProc bool) {
	tag := x.addTag(table, syntax.CategoryIdentifier, q)
	tag.Variable = variable
	tag.InProc = inProc
	u := x.arena.Unit(q)
	u.Kind = syntax.KindDefiningIdentifier
	u.Info.Variable = variable
	u.Info.InProc = inProc
}

// identities finds MOID x = ..., y = ...
func (x *Extractor) identities(table *syntax.Table, head syntax.UnitID) {
	for q := head; q != syntax.NoUnit; {
		if x.whether(q, syntax.KindDeclarer, syntax.KindIdentifier, syntax.KindEquals) {
			q = x.identityList(table, x.next(q), false)
			continue
		}
		q = x.next(q)
	}
}

// procIdentities finds PROC x = ..., y = ...
func (x *Extractor) procIdentities(table *syntax.Table, head syntax.UnitID) {
	for q := head; q != syntax.NoUnit; {
		if x.whether(q, syntax.KindProc, syntax.KindIdentifier, syntax.KindEquals) {
			q = x.identityList(table, x.next(q), true)
			continue
		}
		q = x.next(q)
	}
}

// identityList defines the identifiers of x = ..., y = ... starting at q and
// returns the unit that ends the list. A := in place of the = is reported and
// read as the equals of an identity.
func (x *Extractor) identityList(table *syntax.Table, q syntax.UnitID, inProc bool) syntax.UnitID {
	for {
		switch {
		case x.whether(q, syntax.KindIdentifier, syntax.KindEquals):
		case x.whether(q, syntax.KindIdentifier, syntax.KindAssign):
			x.errorAt(q, exc.CodeMixedDeclaration, exc.MessageMixedDeclaration)
		default:
			return q
		}
		x.defineIdentifier(table, q, false, inProc)
		q = x.next(q)
		x.markEquals(q)
		q = x.skipUnit(q)
		if !x.is(q, syntax.KindComma) {
			return q
		}
		q = x.next(q)
	}
}

// variables finds [LOC|HEAP] MOID x [:= ...], y [:= ...]
func (x *Extractor) variables(table *syntax.Table, head syntax.UnitID) {
	for q := head; q != syntax.NoUnit; {
		if x.whether(q, syntax.KindDeclarer, syntax.KindIdentifier) {
			q = x.variableList(table, x.next(q), false)
			continue
		}
		q = x.next(q)
	}
}

// procVariables finds PROC x := ..., y := ...
func (x *Extractor) procVariables(table *syntax.Table, head syntax.UnitID) {
	for q := head; q != syntax.NoUnit; {
		if x.whether(q, syntax.KindProc, syntax.KindIdentifier, syntax.KindAssign) ||
			x.whether(q, syntax.KindProc, syntax.KindIdentifier, syntax.KindEquals) {
			q = x.variableList(table, x.next(q), true)
			continue
		}
		q = x.next(q)
	}
}

// variableList defines the identifiers of x := ..., y starting at q and
// returns the unit that ends the list. An = in place of the := is reported
// and read as an assignment. A routine variable always has an initial value.
func (x *Extractor) variableList(table *syntax.Table, q syntax.UnitID, inProc bool) syntax.UnitID {
	for x.is(q, syntax.KindIdentifier) {
		if x.whether(q, syntax.KindIdentifier, syntax.KindEquals) {
			x.errorAt(q, exc.CodeMixedDeclaration, exc.MessageMixedDeclaration)
			x.setKind(x.next(q), syntax.KindAssign)
		}
		if inProc && !x.whether(q, syntax.KindIdentifier, syntax.KindAssign) {
			return q
		}
		x.defineIdentifier(table, q, true, inProc)
		q = x.skipUnit(q)
		if !x.is(q, syntax.KindComma) {
			return q
		}
		q = x.next(q)
	}
	return q
}
