// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type FileKind uint32

const (
	FileKindNone FileKind = iota
	// FileKindUnits is a YAML document describing the unit sequences of one
	// program, as produced by a scanner and bracket matcher.
	FileKindUnits
	// FileKindProfile is a TOML language profile.
	FileKindProfile
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindUnits:
		return "units"
	case FileKindProfile:
		return "profile"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type Closer interface {
	Close(ctx context.Context) error
}

type FileBody interface {
	Reader
	Closer
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
}

// NewFileString wraps static string content in File.
func NewFileString(path string, content string, kind FileKind) File {
	return NewFileFN(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}, kind)
}

type fileIOFunc struct {
	path string
	kind FileKind
	body func() (io.ReadCloser, error)
}

// NewFileFN wraps actual file based content in the File interface. The body
// function is called on each call to File.Body so it must return a new
// io.ReadCloser every time.
func NewFileFN(path string, body func() (io.ReadCloser, error), kind FileKind) File {
	return &fileIOFunc{
		path: path,
		kind: kind,
		body: body,
	}
}

func (f *fileIOFunc) Path(ctx context.Context) string {
	return f.path
}
func (f *fileIOFunc) Kind(ctx context.Context) FileKind {
	return f.kind
}
func (f *fileIOFunc) Body(ctx context.Context) (FileBody, error) {
	rc, err := f.body()
	if err != nil {
		return nil, err
	}
	rcb := bufio.NewReader(rc)
	rcbc := &bufioReaderCloser{
		Reader: rcb,
		Closer: rc,
	}
	return bodyFromIO(rcbc), nil
}

type bufioReaderCloser struct {
	*bufio.Reader
	io.Closer
}
