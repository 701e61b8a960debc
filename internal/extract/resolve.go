// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

// BoldTags decides, for every bold tag in the program at root, whether it
// names a mode or an operator. At each enclosing table, innermost first, an
// indicant is preferred over an operator of the same name. A bold tag that
// names neither is reported and keeps its kind so the parser rejects it.
// Units already considered by an earlier call are left alone.
func (x *Extractor) BoldTags(root syntax.UnitID) {
	syntax.Walk(x.arena, root, func(id syntax.UnitID, u *syntax.Unit) {
		if u.Kind != syntax.KindBoldTag || u.Info.Elaborated {
			return
		}
		u.Info.Elaborated = true
		switch x.boldTagCategory(u.Table, u.Text) {
		case syntax.CategoryIndicant:
			u.Kind = syntax.KindIndicant
		case syntax.CategoryOperator:
			u.Kind = syntax.KindOperator
		default:
			x.errorAt(id, exc.CodeTagNotDeclared, exc.MessageTagNotDeclared, u.Text)
		}
	})
}

// boldTagCategory returns CategoryIdentifier when name is declared as neither
// an indicant nor an operator.
func (x *Extractor) boldTagCategory(table *syntax.Table, name string) syntax.Category {
	for s := table; s != nil; s = s.Parent() {
		if s.Find(syntax.CategoryIndicant, name).IsPresent() {
			return syntax.CategoryIndicant
		}
		if s.Find(syntax.CategoryOperator, name).IsPresent() {
			return syntax.CategoryOperator
		}
	}
	return syntax.CategoryIdentifier
}

// OperatorPriorities gives every operator occurrence in the program at root
// the priority of the nearest enclosing PRIO declaration for its name. An
// operator that was never declared is reported as such. A declared operator
// without a priority, as a monadic operator has, only draws a warning. Both
// get the profile's no-priority value.
func (x *Extractor) OperatorPriorities(root syntax.UnitID) {
	syntax.Walk(x.arena, root, func(id syntax.UnitID, u *syntax.Unit) {
		if u.Kind != syntax.KindOperator || u.Info.Prioritised {
			return
		}
		u.Info.Prioritised = true
		u.Info.Priority = x.profile.Priority.None
		if !u.Table.FindGlobal(syntax.CategoryOperator, u.Text).IsPresent() {
			x.errorAt(id, exc.CodeTagNotDeclared, exc.MessageTagNotDeclared, u.Text)
			return
		}
		prio := u.Table.FindGlobal(syntax.CategoryPriority, u.Text)
		if !prio.IsPresent() {
			x.warnAt(id, exc.CodeUndeclaredPriority, exc.MessageNoPriority, u.Text)
			return
		}
		u.Info.Priority = prio.Value().Priority
	})
}
