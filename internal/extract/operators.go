// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

// Operators finds OP [(plan) declarer] X = ..., Y = ... in the level at head
// and registers each X and Y as an operator. An operator declared without an
// explicit plan is defined by a routine text and is marked InProc.
func (x *Extractor) Operators(head syntax.UnitID) {
	table := x.table(head)
	q := head
	for q != syntax.NoUnit {
		if !x.is(q, syntax.KindOp) {
			q = x.next(q)
			continue
		}
		inProc := true
		if x.is(x.next(q), syntax.KindOpen) {
			q = x.skipPackDeclarer(x.next(q))
			inProc = false
		}
		if q == syntax.NoUnit {
			break
		}
		for {
			q = x.next(q)
			x.detectRedefinedKeyword(q, "operator declaration")
			var ok bool
			if q, ok = x.operatorDeclarator(table, q, inProc); !ok {
				break
			}
			if !x.is(q, syntax.KindComma) {
				break
			}
		}
	}
}

// operatorDeclarator handles one X = unit. On success it returns the
// separator ending the unit.
func (x *Extractor) operatorDeclarator(table *syntax.Table, q syntax.UnitID, inProc bool) (syntax.UnitID, bool) {
	switch {
	case x.whether(q, syntax.KindOperator, syntax.KindOperator):
		x.errorAt(q, exc.CodeInvalidOperatorTag, exc.MessageInvalidOperatorTag)
		x.arena.Delete(x.next(q))
		if after, ok := x.operatorDeclarator(table, q, inProc); ok {
			return after, true
		}
		x.defineOperator(table, q, inProc)
		return x.skipUnit(x.next(q)), true
	case x.whether(q, syntax.KindOperator, syntax.KindEquals),
		x.whether(q, syntax.KindEquals, syntax.KindEquals),
		x.whether(q, syntax.KindBoldTag, syntax.KindEquals):
		x.defineOperator(table, q, inProc)
		x.markEquals(x.next(q))
		return x.skipUnit(x.next(q)), true
	case x.arena.IsOneOf(q, syntax.KindOperator, syntax.KindBoldTag, syntax.KindEquals):
		eq, ok := x.splitEquals(q)
		if !ok {
			return q, false
		}
		x.defineOperator(table, q, inProc)
		return x.skipUnit(eq), true
	default:
		return q, false
	}
}

func (x *Extractor) defineOperator(table *syntax.Table, q syntax.UnitID, inProc bool) {
	x.setKind(q, syntax.KindDefiningOperator)
	tag := x.addTag(table, syntax.CategoryOperator, q)
	tag.InProc = inProc
	x.arena.Unit(q).Info.InProc = inProc
}
