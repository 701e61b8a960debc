// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import (
	"slices"
	"strconv"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/syntax"
)

var definingCategories = map[syntax.Kind][]syntax.Category{
	syntax.KindDefiningIdentifier: {syntax.CategoryIdentifier, syntax.CategoryLabel},
	syntax.KindDefiningIndicant:   {syntax.CategoryIndicant},
	syntax.KindDefiningOperator:   {syntax.CategoryOperator, syntax.CategoryPriority},
}

// Verify checks that every defining unit of p is registered exactly once, in
// its own table, under its own text and in a category that fits its kind. A
// violation means extraction itself is broken and is reported as fatal.
func (x *Extractor) Verify(p *syntax.Program) {
	byUnit := make(map[syntax.UnitID][]*syntax.Tag)
	seen := make(map[*syntax.Table]bool)
	for _, scope := range p.Scopes {
		if seen[scope.Table] {
			continue
		}
		seen[scope.Table] = true
		for _, categories := range definingCategories {
			for _, c := range categories {
				for _, tag := range scope.Table.Tags(c) {
					byUnit[tag.Unit] = append(byUnit[tag.Unit], tag)
				}
			}
		}
	}
	syntax.Walk(p.Arena, p.Root, func(id syntax.UnitID, u *syntax.Unit) {
		categories, ok := definingCategories[u.Kind]
		if !ok {
			return
		}
		tags := byUnit[id]
		if len(tags) != 1 {
			x.errorAt(id, exc.CodeInvariant, "defining unit S has S tags", u.Text, strconv.Itoa(len(tags)))
			return
		}
		tag := tags[0]
		if tag.Table != u.Table || tag.Name != u.Text || !slices.Contains(categories, tag.Category) {
			x.errorAt(id, exc.CodeInvariant, "defining unit S is registered as S S", u.Text, tag.Category.String(), tag.Name)
		}
	})
}
