// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package extract

import "github.com/pietro/gcc/internal/syntax"

var environModes = []string{
	"INT", "REAL", "COMPL", "BITS", "BYTES",
	"BOOL", "CHAR", "STRING", "FILE", "CHANNEL", "SEMA",
}

var environPriorities = []struct {
	name     string
	priority int
}{
	{"+:=", 1}, {"-:=", 1}, {"*:=", 1}, {"/:=", 1}, {"%:=", 1}, {"%*:=", 1}, {"+=:", 1},
	{"PLUSAB", 1}, {"MINUSAB", 1}, {"TIMESAB", 1}, {"DIVAB", 1}, {"OVERAB", 1}, {"MODAB", 1}, {"PLUSTO", 1},
	{"OR", 2},
	{"AND", 3}, {"XOR", 3},
	{"=", 4}, {"/=", 4}, {"EQ", 4}, {"NE", 4},
	{"<", 5}, {"<=", 5}, {">", 5}, {">=", 5}, {"LT", 5}, {"LE", 5}, {"GT", 5}, {"GE", 5},
	{"+", 6}, {"-", 6},
	{"*", 7}, {"/", 7}, {"OVER", 7}, {"%", 7}, {"MOD", 7}, {"%*", 7}, {"ELEM", 7},
	{"**", 8}, {"SHL", 8}, {"SHR", 8}, {"UP", 8}, {"DOWN", 8}, {"^", 8}, {"LWB", 8}, {"UPB", 8}, {"ELEMS", 8},
	{"I", 9}, {"+*", 9},
}

// Operators of the standard prelude that are only ever monadic and so have
// no priority.
var environMonadic = []string{
	"NOT", "~", "ABS", "SIGN", "ODD", "ENTIER", "ROUND", "REPR", "LENG", "SHORTEN",
	"RE", "IM", "ARG", "CONJ", "BIN", "LEVEL",
}

// Environ returns a table holding the modes, operators and priorities of the
// standard prelude, for use as the parent of a program's outermost scope. Its
// tags have no defining unit. The table is never written after construction
// and may be shared between programs.
func Environ() *syntax.Table {
	t := syntax.NewTable(nil)
	for _, name := range environModes {
		t.Add(syntax.CategoryIndicant, name, syntax.NoUnit)
	}
	for _, p := range environPriorities {
		t.Add(syntax.CategoryOperator, p.name, syntax.NoUnit)
		t.Add(syntax.CategoryPriority, p.name, syntax.NoUnit).Priority = p.priority
	}
	for _, name := range environMonadic {
		t.Add(syntax.CategoryOperator, name, syntax.NoUnit)
	}
	return t
}
