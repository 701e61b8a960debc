// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package extract gathers declarations from the flat sequence of one lexical
// level before that level is parsed, so that tags can be applied before their
// textual definition. The scans look for declaration-shaped runs of units,
// register what they declare in the level's table and rewrite unit kinds so
// the full parse is unambiguous. They report problems and repair locally
// rather than stop.
package extract

import (
	"strconv"
	"strings"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/profile"
	"github.com/pietro/gcc/internal/syntax"
)

// Extractor bundles what every scan needs: the arena holding the sequences,
// where to report, and the language profile.
type Extractor struct {
	arena    *syntax.Arena
	reporter exc.Reporter
	profile  profile.Profile
	uri      string
}

func New(arena *syntax.Arena, reporter exc.Reporter, prof profile.Profile, uri string) *Extractor {
	return &Extractor{
		arena:    arena,
		reporter: reporter,
		profile:  prof,
		uri:      uri,
	}
}

func (x *Extractor) next(id syntax.UnitID) syntax.UnitID {
	return x.arena.Next(id)
}

func (x *Extractor) is(id syntax.UnitID, k syntax.Kind) bool {
	return x.arena.Is(id, k)
}

func (x *Extractor) whether(id syntax.UnitID, kinds ...syntax.Kind) bool {
	return x.arena.Whether(id, kinds...)
}

func (x *Extractor) setKind(id syntax.UnitID, k syntax.Kind) {
	if u := x.arena.Unit(id); u != nil {
		u.Kind = k
	}
}

func (x *Extractor) markEquals(id syntax.UnitID) {
	if u := x.arena.Unit(id); u != nil {
		u.MarkPending(syntax.PendingEquals)
	}
}

func (x *Extractor) table(head syntax.UnitID) *syntax.Table {
	if u := x.arena.Unit(head); u != nil {
		return u.Table
	}
	return nil
}

func (x *Extractor) location(id syntax.UnitID) exc.Location {
	loc := exc.Location{URI: x.uri}
	if u := x.arena.Unit(id); u != nil {
		loc.Line = u.Line
		loc.Column = u.Column
	}
	return loc
}

func (x *Extractor) text(id syntax.UnitID) string {
	if u := x.arena.Unit(id); u != nil {
		return u.Text
	}
	return ""
}

func (x *Extractor) report(e exc.Exception) {
	if fatal := x.reporter.Report(e); fatal != nil {
		panic(fatal)
	}
}

func (x *Extractor) errorAt(id syntax.UnitID, code string, message string, args ...string) {
	x.report(exc.New(x.location(id), code, message, args...))
}

func (x *Extractor) warnAt(id syntax.UnitID, code string, message string, args ...string) {
	x.report(exc.Warn(x.location(id), code, message, args...))
}

// addTag registers the unit at id in table under its own text. A failed
// insertion is a defect in the caller, not in the program being compiled.
func (x *Extractor) addTag(table *syntax.Table, category syntax.Category, id syntax.UnitID) *syntax.Tag {
	tag := table.Add(category, x.text(id), id)
	if tag == nil {
		x.errorAt(id, exc.CodeInvariant, "cannot register S in a missing table", x.text(id))
	}
	return tag
}

// skipUnit moves to the next comma, semicolon or EXIT, which ends the unit
// at id. It returns NoUnit if the sequence ends first.
func (x *Extractor) skipUnit(id syntax.UnitID) syntax.UnitID {
	for q := id; q != syntax.NoUnit; q = x.next(q) {
		if x.arena.IsOneOf(q, syntax.KindComma, syntax.KindSemicolon, syntax.KindExit) {
			return q
		}
	}
	return syntax.NoUnit
}

// skipPackDeclarer skips a declarer or an argument pack and declarer, as
// found after MODE A = or OP (...).
func (x *Extractor) skipPackDeclarer(id syntax.UnitID) syntax.UnitID {
	q := id
	for x.arena.IsOneOf(q, syntax.KindSub, syntax.KindOpen, syntax.KindRef, syntax.KindFlex, syntax.KindShort, syntax.KindLong) {
		q = x.next(q)
	}
	switch {
	case x.arena.IsOneOf(q, syntax.KindStruct, syntax.KindUnion):
		return x.next(q)
	case x.is(q, syntax.KindProc):
		return x.skipPackDeclarer(x.next(q))
	default:
		return q
	}
}

// detectRedefinedKeyword reports a reserved word used as the name in a
// declaration. The keyword keeps its kind.
func (x *Extractor) detectRedefinedKeyword(id syntax.UnitID, construct string) {
	if x.whether(id, syntax.KindKeyword, syntax.KindEquals) {
		x.errorAt(id, exc.CodeRedefinedKeyword, exc.MessageRedefinedKeyword, x.text(id), construct)
	}
}

// splitEquals separates a trailing = that the scanner glued to an operator
// name, as in MAX= or +=. The name keeps the unit at id and a pending equals
// unit is inserted right after it; the two texts concatenate to the original.
// It returns the new unit, or false if the text has no trailing =.
func (x *Extractor) splitEquals(id syntax.UnitID) (syntax.UnitID, bool) {
	u := x.arena.Unit(id)
	if u == nil || len(u.Text) < 2 || !strings.HasSuffix(u.Text, "=") {
		return syntax.NoUnit, false
	}
	name := u.Text[:len(u.Text)-1]
	u.Text = x.arena.Interner().Intern(name)
	if len(name) > 1 && name[len(name)-1] == ':' && name[len(name)-2] != '=' {
		x.errorAt(id, exc.CodeMissingSymbol, exc.MessageMissingSymbol, name)
	}
	eq := *u
	eq.Text = "="
	eq.Sub = syntax.NoUnit
	eq.Info = syntax.Info{}
	eq.MarkPending(syntax.PendingEquals)
	return x.arena.InsertAfter(id, eq), true
}

// priority reads a priority declaration value. Anything unparsable or out of
// range is reported and replaced by the maximum priority.
func (x *Extractor) priority(id syntax.UnitID) int {
	k, err := strconv.Atoi(x.text(id))
	if err != nil || !x.profile.Valid(k) {
		x.errorAt(id, exc.CodeInvalidPriority, exc.MessageInvalidPriority)
		return x.profile.Priority.Max
	}
	return k
}
