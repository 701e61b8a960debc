// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

import (
	"fmt"

	"github.com/pietro/gcc/internal/optional"
)

// Category selects one of a table's tag lists.
type Category uint8

const (
	CategoryIdentifier Category = iota
	CategoryIndicant
	CategoryLabel
	CategoryOperator
	CategoryPriority

	categoryCount
)

func (c Category) String() string {
	switch c {
	case CategoryIdentifier:
		return "identifier"
	case CategoryIndicant:
		return "indicant"
	case CategoryLabel:
		return "label"
	case CategoryOperator:
		return "operator"
	case CategoryPriority:
		return "priority"
	default:
		return fmt.Sprintf("unknown-%d", uint8(c))
	}
}

// Tag is one registered declaration.
type Tag struct {
	Category   Category
	Name       string
	Unit       UnitID
	Table      *Table
	Variable   bool
	InProc     bool
	LocalLabel bool
	Priority   int
}

// Table is the symbol table of one lexical scope. It only ever mutates its
// own lists; the parent is used for lookup.
type Table struct {
	parent *Table
	level  int
	tags   [categoryCount][]*Tag
}

// NewTable returns a table nested in parent, which is nil for the outermost
// scope.
func NewTable(parent *Table) *Table {
	t := &Table{parent: parent}
	if parent != nil {
		t.level = parent.level + 1
	}
	return t
}

func (t *Table) Parent() *Table {
	return t.parent
}

// Level is the nesting depth; the outermost table is at level zero.
func (t *Table) Level() int {
	return t.level
}

// Add registers a new tag for the defining unit id. Redeclarations are not
// rejected here. Add returns nil only when called on a nil table or with an
// unknown category.
func (t *Table) Add(category Category, name string, id UnitID) *Tag {
	if t == nil || category >= categoryCount {
		return nil
	}
	tag := &Tag{
		Category: category,
		Name:     name,
		Unit:     id,
		Table:    t,
	}
	t.tags[category] = append(t.tags[category], tag)
	return tag
}

// Tags returns the tags of one category in declaration order.
func (t *Table) Tags(category Category) []*Tag {
	if t == nil || category >= categoryCount {
		return nil
	}
	return t.tags[category]
}

// Find looks name up in this table only. The earliest declaration wins.
func (t *Table) Find(category Category, name string) optional.Optional[*Tag] {
	for _, tag := range t.Tags(category) {
		if tag.Name == name {
			return optional.Some(tag)
		}
	}
	return optional.None[*Tag]()
}

// FindGlobal looks name up in this table and then outward through the
// enclosing tables.
func (t *Table) FindGlobal(category Category, name string) optional.Optional[*Tag] {
	for s := t; s != nil; s = s.parent {
		if found := s.Find(category, name); found.IsPresent() {
			return found
		}
	}
	return optional.None[*Tag]()
}
