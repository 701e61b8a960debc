// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

// Priorities finds PRIO X = n, Y = m in the level at head and registers each
// X and Y with its priority.
func (x *Extractor) Priorities(head syntax.UnitID) {
	table := x.table(head)
	q := head
	for q != syntax.NoUnit {
		if !x.is(q, syntax.KindPrio) {
			q = x.next(q)
			continue
		}
		for {
			q = x.next(q)
			x.detectRedefinedKeyword(q, "priority declaration")
			var ok bool
			if q, ok = x.priorityDeclarator(table, q); !ok {
				break
			}
			if !x.is(q, syntax.KindComma) {
				break
			}
		}
	}
}

// priorityDeclarator handles one X = n. On success it returns the unit after
// the priority.
func (x *Extractor) priorityDeclarator(table *syntax.Table, q syntax.UnitID) (syntax.UnitID, bool) {
	switch {
	case x.whether(q, syntax.KindOperator, syntax.KindOperator):
		// Tags like ++ or && give strange errors later on, so drop the
		// second operator and hope it was the only superfluous one.
		x.errorAt(q, exc.CodeInvalidOperatorTag, exc.MessageInvalidOperatorTag)
		x.arena.Delete(x.next(q))
		if after, ok := x.priorityDeclarator(table, q); ok {
			return after, true
		}
		return x.definePriority(table, q, x.next(q)), true
	case x.whether(q, syntax.KindOperator, syntax.KindEquals, syntax.KindIntDenotation),
		x.whether(q, syntax.KindEquals, syntax.KindEquals, syntax.KindIntDenotation),
		x.whether(q, syntax.KindBoldTag, syntax.KindEquals, syntax.KindIntDenotation):
		return x.definePriority(table, q, x.next(q)), true
	case x.whether(q, syntax.KindBoldTag, syntax.KindIntDenotation),
		x.whether(q, syntax.KindOperator, syntax.KindIntDenotation),
		x.whether(q, syntax.KindEquals, syntax.KindIntDenotation):
		eq, ok := x.splitEquals(q)
		if !ok {
			return q, false
		}
		return x.definePriority(table, q, eq), true
	default:
		return q, false
	}
}

func (x *Extractor) definePriority(table *syntax.Table, name syntax.UnitID, eq syntax.UnitID) syntax.UnitID {
	x.setKind(name, syntax.KindDefiningOperator)
	if x.is(eq, syntax.KindEquals) {
		x.markEquals(eq)
	}
	value := x.next(eq)
	k := x.profile.Priority.Max
	if x.is(value, syntax.KindIntDenotation) {
		k = x.priority(value)
		x.setKind(value, syntax.KindPriority)
	} else {
		x.errorAt(name, exc.CodeInvalidPriority, exc.MessageInvalidPriority)
	}
	tag := x.addTag(table, syntax.CategoryPriority, name)
	tag.Priority = k
	return x.next(value)
}
