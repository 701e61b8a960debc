// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package syntax

import "fmt"

// Kind is the construct-kind of a unit. Declaration extraction marks defining
// occurrences by rewriting it.
type Kind uint16

const (
	KindUnknown Kind = 0

	// Match classes. These never appear on a unit.
	KindWildcard Kind = 1
	KindKeyword  Kind = 2

	// Keywords.
	KindMode   Kind = 10
	KindPrio   Kind = 11
	KindOp     Kind = 12
	KindProc   Kind = 13
	KindLoc    Kind = 14
	KindHeap   Kind = 15
	KindRef    Kind = 16
	KindFlex   Kind = 17
	KindShort  Kind = 18
	KindLong   Kind = 19
	KindStruct Kind = 20
	KindUnion  Kind = 21
	KindBegin  Kind = 22
	KindEnd    Kind = 23
	KindExit   Kind = 24
	KindIf     Kind = 25
	KindThen   Kind = 26
	KindElse   Kind = 27
	KindFi     Kind = 28
	KindCase   Kind = 29
	KindIn     Kind = 30
	KindOut    Kind = 31
	KindEsac   Kind = 32
	KindFor    Kind = 33
	KindWhile  Kind = 34
	KindDo     Kind = 35
	KindOd     Kind = 36
	KindGoto   Kind = 37
	KindSkip   Kind = 38
	KindNil    Kind = 39
	KindVoid   Kind = 40
	KindPar    Kind = 41
	KindOf     Kind = 42
	KindIs     Kind = 43
	KindIsnt   Kind = 44
	KindTrue   Kind = 45
	KindFalse  Kind = 46

	// Tokens.
	KindIdentifier    Kind = 60
	KindBoldTag       Kind = 61
	KindIndicant      Kind = 62
	KindOperator      Kind = 63
	KindEquals        Kind = 64
	KindAssign        Kind = 65
	KindColon         Kind = 66
	KindComma         Kind = 67
	KindSemicolon     Kind = 68
	KindOpen          Kind = 69
	KindClose         Kind = 70
	KindSub           Kind = 71
	KindBus           Kind = 72
	KindIntDenotation Kind = 73
	KindDeclarer      Kind = 74

	// Rewritten by extraction.
	KindDefiningIdentifier Kind = 90
	KindDefiningIndicant   Kind = 91
	KindDefiningOperator   Kind = 92
	KindPriority           Kind = 93
	KindQualifier          Kind = 94

	// KindPending is carried by a unit whose role is provisionally decided
	// and will be settled before the full parse. See Pending.
	KindPending Kind = 100
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindWildcard:           "wildcard",
	KindKeyword:            "keyword",
	KindMode:               "mode",
	KindPrio:               "prio",
	KindOp:                 "op",
	KindProc:               "proc",
	KindLoc:                "loc",
	KindHeap:               "heap",
	KindRef:                "ref",
	KindFlex:               "flex",
	KindShort:              "short",
	KindLong:               "long",
	KindStruct:             "struct",
	KindUnion:              "union",
	KindBegin:              "begin",
	KindEnd:                "end",
	KindExit:               "exit",
	KindIf:                 "if",
	KindThen:               "then",
	KindElse:               "else",
	KindFi:                 "fi",
	KindCase:               "case",
	KindIn:                 "in",
	KindOut:                "out",
	KindEsac:               "esac",
	KindFor:                "for",
	KindWhile:              "while",
	KindDo:                 "do",
	KindOd:                 "od",
	KindGoto:               "goto",
	KindSkip:               "skip",
	KindNil:                "nil",
	KindVoid:               "void",
	KindPar:                "par",
	KindOf:                 "of",
	KindIs:                 "is",
	KindIsnt:               "isnt",
	KindTrue:               "true",
	KindFalse:              "false",
	KindIdentifier:         "identifier",
	KindBoldTag:            "bold-tag",
	KindIndicant:           "indicant",
	KindOperator:           "operator",
	KindEquals:             "equals",
	KindAssign:             "assign",
	KindColon:              "colon",
	KindComma:              "comma",
	KindSemicolon:          "semicolon",
	KindOpen:               "open",
	KindClose:              "close",
	KindSub:                "sub",
	KindBus:                "bus",
	KindIntDenotation:      "int-denotation",
	KindDeclarer:           "declarer",
	KindDefiningIdentifier: "defining-identifier",
	KindDefiningIndicant:   "defining-indicant",
	KindDefiningOperator:   "defining-operator",
	KindPriority:           "priority",
	KindQualifier:          "qualifier",
	KindPending:            "pending",
}

var kindsByName = func() map[string]Kind {
	out := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		out[name] = k
	}
	return out
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown-%d", uint16(k))
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KindMode && k <= KindFalse
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// Pending is the role a KindPending unit is waiting to take.
type Pending uint8

const (
	PendingNone Pending = iota
	// PendingEquals marks an equals symbol already consumed as the
	// introducer of a declaration.
	PendingEquals
)

// Kind is the terminal kind a pending role settles to.
func (p Pending) Kind() Kind {
	switch p {
	case PendingEquals:
		return KindEquals
	default:
		return KindUnknown
	}
}

func (p Pending) String() string {
	switch p {
	case PendingNone:
		return "none"
	case PendingEquals:
		return "equals"
	default:
		return fmt.Sprintf("unknown-%d", uint8(p))
	}
}

// Context is the syntactic context a sequence is parsed in.
type Context uint8

const (
	ContextSome Context = iota
	ContextSerial
	ContextEnquiry
	ContextCollateral
	ContextDeclarerPack
	ContextIndexer
)

var contextNames = map[Context]string{
	ContextSome:         "some-clause",
	ContextSerial:       "serial-clause",
	ContextEnquiry:      "enquiry-clause",
	ContextCollateral:   "collateral-clause",
	ContextDeclarerPack: "declarer-pack",
	ContextIndexer:      "indexer",
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown-%d", uint8(c))
}

// ParseContext returns the context with the given name.
func ParseContext(name string) (Context, bool) {
	for c, n := range contextNames {
		if n == name {
			return c, true
		}
	}
	return ContextSome, false
}
