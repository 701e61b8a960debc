// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"github.com/pietro/gcc/internal/syntax"
)

// Labels registers every identifier followed by a colon in the level at head
// as a local label. Only clause contexts are searched since in an indexer
// the same shape is a trimmer bound.
func (x *Extractor) Labels(head syntax.UnitID, context syntax.Context) {
	switch context {
	case syntax.ContextSerial, syntax.ContextEnquiry, syntax.ContextSome:
	default:
		return
	}
	table := x.table(head)
	for q := head; q != syntax.NoUnit; q = x.next(q) {
		if x.whether(q, syntax.KindIdentifier, syntax.KindColon) {
			tag := x.addTag(table, syntax.CategoryLabel, q)
			tag.LocalLabel = true
			x.setKind(q, syntax.KindDefiningIdentifier)
		}
	}
}
