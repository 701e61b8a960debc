// Package compiler drives declaration extraction over whole programs: it
// opens the unit streams named by a request, runs every extraction phase on
// each program and collects the diagnostics.
package compiler

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/extract"
	"github.com/pietro/gcc/internal/fixture"
	"github.com/pietro/gcc/internal/fs"
	"github.com/pietro/gcc/internal/profile"
	"github.com/pietro/gcc/internal/syntax"
)

type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	// Files are paths or URIs of unit streams to open through the file
	// system.
	Files []string
	// Programs are already built and are extracted as given.
	Programs  []*syntax.Program
	DumpUnits bool
	DumpTags  bool
}

type CompileResponse struct {
	// Programs are ordered by URI.
	Programs []*syntax.Program
	// Reported holds every diagnostic, warnings included.
	Reported []exc.Exception
}

type Option func(c *compiler) error

func OptionWithFS(fs fs.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *compiler) error {
		c.Reporter = reporter
		return nil
	}
}

func OptionWithProfile(p profile.Profile) Option {
	return func(c *compiler) error {
		if err := p.Validate(); err != nil {
			return exc.Wrap(exc.Location{}, exc.CodeInvalidProfile, err)
		}
		c.Profile = &p
		return nil
	}
}

// OptionWithEnviron nests the programs opened from Files in the standard
// environ so that the modes and operators of the standard prelude resolve.
func OptionWithEnviron(enabled bool) Option {
	return func(c *compiler) error {
		c.UseEnviron = enabled
		return nil
	}
}

// OptionWithVerify adds a final phase checking that extraction registered
// every defining unit exactly once.
func OptionWithVerify(enabled bool) Option {
	return func(c *compiler) error {
		c.Verify = enabled
		return nil
	}
}

func OptionWithMaxConcurrency(max int) Option {
	return func(c *compiler) error {
		if max < 0 {
			return fmt.Errorf("max concurrency %d is negative", max)
		}
		c.MaxConcurrency = max
		return nil
	}
}

// OptionWithDumpOutput sets where unit and tag dumps are written. The
// default is standard output.
func OptionWithDumpOutput(w io.Writer) Option {
	return func(c *compiler) error {
		c.DumpOutput = w
		return nil
	}
}

func New(opts ...Option) (Compiler, error) {
	c := &compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = os.LookupEnv
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency == 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Semaphore == nil {
		c.Semaphore = newSemaphore(c.MaxConcurrency)
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}
	if c.Profile == nil {
		p := profile.Default()
		c.Profile = &p
	}
	if c.UseEnviron {
		c.Environ = extract.Environ()
	}
	if c.DumpOutput == nil {
		c.DumpOutput = os.Stdout
	}
	c.Phases = Phases(c.Verify)
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             fs.FileSystem
	MaxConcurrency int
	Semaphore      *semaphore
	Reporter       exc.Reporter
	Profile        *profile.Profile
	UseEnviron     bool
	Environ        *syntax.Table
	Verify         bool
	Phases         []Phase
	DumpOutput     io.Writer
	dumpLock       sync.Mutex
}

func (self *compiler) Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error) {
	files := make([]fs.File, 0, len(req.Files))
	for _, f := range req.Files {
		target := self.targetURI(f)
		in, err := self.FS.Open(ctx, target)
		if err != nil {
			return nil, err
		}
		for _, inf := range in {
			if inf.Kind(ctx) != fs.FileKindUnits {
				continue
			}
			files = append(files, inf)
		}
	}
	programs := make([]*syntax.Program, 0, len(files)+len(req.Programs))
	loaded := &sync.Map{}
	results := make(chan programResult, len(files)+len(req.Programs))
	expectedResults := len(files) + len(req.Programs)

	for _, file := range files {
		go func(file fs.File) {
			p, err := self.compileFile(ctx, file, loaded, req.DumpUnits, req.DumpTags)
			results <- programResult{p, err}
		}(file)
	}
	for _, program := range req.Programs {
		go func(program *syntax.Program) {
			err := self.compileProgram(ctx, program, req.DumpUnits, req.DumpTags)
			results <- programResult{program, err}
		}(program)
	}

	for x := 0; x < expectedResults; x = x + 1 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case result := <-results:
			if result.err != nil {
				return nil, result.err
			}
			if result.program != nil {
				programs = append(programs, result.program)
			}
		}
	}
	slices.SortStableFunc(programs, func(a, b *syntax.Program) int {
		return strings.Compare(a.URI, b.URI)
	})

	resp := &CompileResponse{
		Programs: programs,
		Reported: self.Reporter.Reported(),
	}
	if self.Reporter.ErrorCount() > 0 {
		return resp, MultiException(resp.Reported)
	}
	return resp, nil
}

func (self *compiler) compileFile(ctx context.Context, file fs.File, loaded *sync.Map, dumpUnits bool, dumpTags bool) (*syntax.Program, error) {
	if _, ok := loaded.LoadOrStore(file.Path(ctx), true); ok {
		return nil, nil
	}
	var opts []fixture.Option
	if self.Environ != nil {
		opts = append(opts, fixture.OptionWithEnviron(self.Environ))
	}
	p, err := fixture.Load(ctx, file, opts...)
	if err != nil {
		e, ok := err.(exc.Exception)
		if !ok {
			e = exc.WrapUnknown(exc.Location{URI: file.Path(ctx)}, err)
		}
		return nil, self.Reporter.Report(e)
	}
	if err := self.compileProgram(ctx, p, dumpUnits, dumpTags); err != nil {
		return nil, err
	}
	return p, nil
}

// compileProgram runs every phase over p. A fatal diagnostic stops p and is
// returned; any other panic is not ours to handle.
func (self *compiler) compileProgram(ctx context.Context, p *syntax.Program, dumpUnits bool, dumpTags bool) (err error) {
	if err := self.Semaphore.Lock(ctx); err != nil {
		return err
	}
	defer self.Semaphore.Unlock()
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(exc.Exception)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	x := extract.New(p.Arena, self.Reporter, *self.Profile, p.URI)
	runPhases(x, p, self.Phases)
	if dumpUnits || dumpTags {
		self.dumpLock.Lock()
		defer self.dumpLock.Unlock()
		if dumpUnits {
			dumpProgramUnits(self.DumpOutput, p)
		}
		if dumpTags {
			dumpProgramTags(self.DumpOutput, p)
		}
	}
	return nil
}

// targetURI converts file paths and file URIs to absolute paths for the local
// file systems. Other URIs are left for some other FileSystem to handle.
func (self *compiler) targetURI(target string) string {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	if !filepath.IsAbs(target) {
		return filepath.Join("/", target)
	}
	return target
}

type programResult struct {
	program *syntax.Program
	err     error
}

type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
