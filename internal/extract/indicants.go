// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"github.com/pietro/gcc/internal/syntax"
)

// Indicants finds MODE A = ..., B = ... in the level at head and registers
// each A and B as an indicant.
func (x *Extractor) Indicants(head syntax.UnitID) {
	table := x.table(head)
	q := head
	for q != syntax.NoUnit {
		if !x.is(q, syntax.KindMode) {
			q = x.next(q)
			continue
		}
		for {
			q = x.next(q)
			x.detectRedefinedKeyword(q, "mode declaration")
			if !x.whether(q, syntax.KindBoldTag, syntax.KindEquals) {
				break
			}
			x.addTag(table, syntax.CategoryIndicant, q)
			x.setKind(q, syntax.KindDefiningIndicant)
			q = x.next(q)
			x.markEquals(q)
			q = x.next(x.skipPackDeclarer(x.next(q)))
			if !x.is(q, syntax.KindComma) {
				break
			}
		}
	}
}
