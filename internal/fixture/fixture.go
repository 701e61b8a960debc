// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package fixture builds programs from a YAML description of their unit
// sequences, the form in which a scanner and bracket matcher hand a program to
// declaration extraction. A document looks like:
//
//	context: serial-clause
//	units:
//	  - prio
//	  - bold-tag MAX
//	  - equals
//	  - int-denotation 9
//	  - semicolon
//	  - kind: begin
//	    sub:
//	      range: true
//	      context: serial-clause
//	      units: [declarer INT, identifier x]
//
// A unit is either a scalar "kind [text]" or a mapping. Omitted texts default
// to the symbol's usual spelling and omitted positions to the unit's place in
// the document. A nested sequence with range set opens a new lexical scope;
// otherwise it shares the table of the enclosing level.
package fixture

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/fs"
	"github.com/pietro/gcc/internal/syntax"
)

type levelDoc struct {
	Context string    `yaml:"context"`
	Range   bool      `yaml:"range"`
	Units   []unitDoc `yaml:"units"`
}

type unitDoc struct {
	Kind   string    `yaml:"kind"`
	Text   string    `yaml:"text"`
	Line   int32     `yaml:"line"`
	Column int32     `yaml:"column"`
	Sub    *levelDoc `yaml:"sub"`
}

func (u *unitDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		kind, text, _ := strings.Cut(strings.TrimSpace(value.Value), " ")
		u.Kind = kind
		u.Text = strings.TrimSpace(text)
	case yaml.MappingNode:
		type plain unitDoc
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*u = unitDoc(p)
	default:
		return fmt.Errorf("line %d: a unit is a scalar or a mapping", value.Line)
	}
	if u.Line == 0 {
		u.Line = int32(value.Line)
	}
	if u.Column == 0 {
		u.Column = int32(value.Column)
	}
	return nil
}

// Option adjusts how a program is built.
type Option func(*builder)

// OptionWithEnviron nests the outermost scope in table, typically the
// standard environ.
func OptionWithEnviron(table *syntax.Table) Option {
	return func(b *builder) {
		b.environ = table
	}
}

type builder struct {
	program *syntax.Program
	environ *syntax.Table
}

// Decode reads one program description from r.
func Decode(uri string, r io.Reader, opts ...Option) (*syntax.Program, error) {
	var doc levelDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, exc.New(exc.Location{URI: uri}, exc.CodeUnexpectedEOF, "unit stream is empty")
		}
		return nil, exc.Wrap(exc.Location{URI: uri}, exc.CodeUnitStreamParseError, err)
	}
	b := &builder{program: syntax.NewProgram(uri)}
	for _, opt := range opts {
		opt(b)
	}
	if len(doc.Units) == 0 {
		return nil, exc.New(exc.Location{URI: uri}, exc.CodeUnexpectedEOF, "unit stream has no units")
	}
	if _, err := b.level(&doc, b.environ, true); err != nil {
		return nil, err
	}
	return b.program, nil
}

// Parse reads one program description from data.
func Parse(uri string, data string, opts ...Option) (*syntax.Program, error) {
	return Decode(uri, strings.NewReader(data), opts...)
}

// Load reads one program description from a file.
func Load(ctx context.Context, f fs.File, opts ...Option) (*syntax.Program, error) {
	uri := f.Path(ctx)
	if k := f.Kind(ctx); k != fs.FileKindUnits {
		return nil, exc.New(exc.Location{URI: uri}, exc.CodeUnsupportedFileFormat, "S is not a unit stream", k.String())
	}
	body, err := f.Body(ctx)
	if err != nil {
		return nil, err
	}
	r := fs.NewReader(ctx, body)
	defer r.Close()
	return Decode(uri, r, opts...)
}

// level allocates one sequence, registers it and then its nested sequences,
// so that scopes are listed outermost first.
func (b *builder) level(doc *levelDoc, table *syntax.Table, isRange bool) (syntax.UnitID, error) {
	ctx := syntax.ContextSome
	if doc.Context != "" {
		c, ok := syntax.ParseContext(doc.Context)
		if !ok {
			return syntax.NoUnit, exc.New(exc.Location{URI: b.program.URI}, exc.CodeInvalidUnit, "unknown context S", doc.Context)
		}
		ctx = c
	}
	units := make([]syntax.Unit, 0, len(doc.Units))
	for _, ud := range doc.Units {
		u, err := b.unit(ud)
		if err != nil {
			return syntax.NoUnit, err
		}
		units = append(units, u)
	}
	a := b.program.Arena
	head := a.Chain(units...)
	if isRange {
		b.program.AddScope(table, head, ctx)
	} else {
		b.program.AddLevel(table, head, ctx)
	}
	level := a.Unit(head).Table
	for offset, id := range a.IDs(head) {
		sub := doc.Units[offset].Sub
		if sub == nil {
			continue
		}
		if len(sub.Units) == 0 {
			return syntax.NoUnit, exc.New(b.location(doc.Units[offset]), exc.CodeInvalidUnit, "nested sequence has no units")
		}
		subHead, err := b.level(sub, level, sub.Range)
		if err != nil {
			return syntax.NoUnit, err
		}
		a.Unit(id).Sub = subHead
	}
	return head, nil
}

func (b *builder) unit(ud unitDoc) (syntax.Unit, error) {
	k, ok := syntax.ParseKind(ud.Kind)
	if !ok || !placeable(k) {
		return syntax.Unit{}, exc.New(b.location(ud), exc.CodeInvalidUnit, "unknown unit kind S", ud.Kind)
	}
	text := ud.Text
	if text == "" {
		text = spelling(k)
	}
	return syntax.Unit{
		Kind:   k,
		Text:   text,
		Line:   ud.Line,
		Column: ud.Column,
	}, nil
}

func (b *builder) location(ud unitDoc) exc.Location {
	return exc.Location{
		URI:    b.program.URI,
		Line:   ud.Line,
		Column: ud.Column,
	}
}

// placeable excludes match classes and the pending state, which no scanner
// produces.
func placeable(k syntax.Kind) bool {
	switch k {
	case syntax.KindUnknown, syntax.KindWildcard, syntax.KindKeyword, syntax.KindPending:
		return false
	}
	return true
}

var spellings = map[syntax.Kind]string{
	syntax.KindEquals:    "=",
	syntax.KindAssign:    ":=",
	syntax.KindColon:     ":",
	syntax.KindComma:     ",",
	syntax.KindSemicolon: ";",
	syntax.KindOpen:      "(",
	syntax.KindClose:     ")",
	syntax.KindSub:       "[",
	syntax.KindBus:       "]",
}

func spelling(k syntax.Kind) string {
	if k.IsKeyword() {
		return strings.ToUpper(k.String())
	}
	return spellings[k]
}
