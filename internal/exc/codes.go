// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

const (
	CodeUnknownFatal          = "M0000"
	CodeFileNotFound          = "M0001"
	CodePermissionDenied      = "M0003"
	CodeUnsupportedFileFormat = "M0004"
	CodeUnexpectedEOF         = "M0005"
	CodeUnitStreamParseError  = "M0006"
	CodeInvalidUnit           = "M0007"
	CodeInvalidProfile        = "M0008"
)

// Codes reported by declaration extraction. Every one of them accompanies a
// local repair, so none of them stops a scan.
const (
	CodeTagNotDeclared     = "A0001"
	CodeInvalidPriority    = "A0002"
	CodeMixedDeclaration   = "A0003"
	CodeInvalidOperatorTag = "A0004"
	CodeRedefinedKeyword   = "A0005"
	CodeMissingSymbol      = "A0006"
	CodeUndeclaredPriority = "A0007"
	CodeInvariant          = "A0100"
)

const (
	CodeEOF = "_EOF_"
)

// Message templates. An S stands for one argument.
const (
	MessageTagNotDeclared     = "tag S has not been declared properly"
	MessageInvalidPriority    = "invalid priority declaration"
	MessageMixedDeclaration   = "mixed identity-declaration and variable-declaration"
	MessageInvalidOperatorTag = "invalid operator tag"
	MessageRedefinedKeyword   = "attempt to redefine keyword S in S"
	MessageMissingSymbol      = "probably a missing symbol near invalid operator S"
	MessageNoPriority         = "operator S has no priority declaration"
)

var (
	defaultNonFatal = map[string]bool{
		CodeTagNotDeclared:     true,
		CodeInvalidPriority:    true,
		CodeMixedDeclaration:   true,
		CodeInvalidOperatorTag: true,
		CodeRedefinedKeyword:   true,
		CodeMissingSymbol:      true,
		CodeUndeclaredPriority: true,
	}
)
