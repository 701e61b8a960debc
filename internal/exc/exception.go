// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import (
	"fmt"
	"strings"
)

// Severity distinguishes diagnostics that fail a compilation from those that
// are only advisory.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("unknown-%d", s)
	}
}

type Exception interface {
	error
	Code() string
	Severity() Severity
	// Message is the unrendered template identifying the condition.
	Message() string
	// Args are the implicated names, in template order.
	Args() []string
	Location() Location
}

type Location struct {
	URI    string
	Line   int32
	Column int32
}

type exc struct {
	code     string
	severity Severity
	message  string
	args     []string
	location Location
}

// Error renders the template by substituting each S placeholder, in order,
// with the corresponding quoted argument.
func (e *exc) Error() string {
	return fmt.Sprintf("%s:%d:%d -- %s %s: %s", e.location.URI, e.location.Line, e.location.Column, e.severity, e.code, render(e.message, e.args))
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Severity() Severity {
	return e.severity
}

func (e *exc) Message() string {
	return e.message
}

func (e *exc) Args() []string {
	return e.args
}

func (e *exc) Location() Location {
	return e.location
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

// New creates an error-severity exception.
func New(location Location, code string, message string, args ...string) Exception {
	return &exc{
		location: location,
		severity: SeverityError,
		message:  message,
		args:     args,
		code:     code,
	}
}

// Warn creates a warning-severity exception.
func Warn(location Location, code string, message string, args ...string) Exception {
	return &exc{
		location: location,
		severity: SeverityWarning,
		message:  message,
		args:     args,
		code:     code,
	}
}

func Wrap(location Location, code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(location, code, e.Message(), e.Args()...),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(location, code, err.Error()),
	}
}

func WrapUnknown(location Location, err error) Exception {
	return Wrap(location, CodeUnknownFatal, err)
}

func render(template string, args []string) string {
	if len(args) == 0 {
		return template
	}
	var b strings.Builder
	next := 0
	for _, word := range strings.SplitAfter(template, " ") {
		trimmed := strings.TrimSpace(word)
		if trimmed == "S" && next < len(args) {
			b.WriteString(`"` + args[next] + `"`)
			b.WriteString(word[len(strings.TrimRight(word, " ")):])
			next = next + 1
			continue
		}
		b.WriteString(word)
	}
	for ; next < len(args); next = next + 1 {
		b.WriteString(` "` + args[next] + `"`)
	}
	return b.String()
}
