package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/pietro/gcc/internal/compiler"
	"github.com/pietro/gcc/internal/exc"
	"github.com/pietro/gcc/internal/fs"
	"github.com/pietro/gcc/internal/profile"
)

type opts struct {
	Roots          []string
	Profile        string
	DumpUnits      bool
	DumpTags       bool
	Environ        bool
	Verify         bool
	MaxConcurrency int
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("a68extract", pflag.ExitOnError)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for unit streams.")
	flags.StringVar(&op.Profile, "profile", "", "TOML language profile overriding the priority range.")
	flags.BoolVar(&op.DumpUnits, "dump-units", false, "Output the unit sequences after extraction")
	flags.BoolVar(&op.DumpTags, "dump-tags", false, "Output the symbol tables after extraction")
	flags.BoolVar(&op.Environ, "environ", true, "Resolve against the standard prelude")
	flags.BoolVar(&op.Verify, "verify", false, "Check that every defining occurrence was registered once")
	flags.IntVar(&op.MaxConcurrency, "max-concurrency", 0, "Programs extracted at once; 0 picks the CPU count")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()
	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "usage: a68extract [flags] files...")
		flags.PrintDefaults()
		os.Exit(2)
	}

	prof := profile.Default()
	if op.Profile != "" {
		absProfile, err := filepath.Abs(op.Profile)
		if err != nil {
			panic(err.Error())
		}
		pfs, err := fs.NewFileSystemLocal(filepath.Dir(absProfile))
		if err != nil {
			panic(err.Error())
		}
		p, err := profile.Open(ctx, pfs, filepath.Base(absProfile))
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		prof = p
	}

	f, err := compiler.NewDefaultFS(os.LookupEnv)
	if err != nil {
		panic(err)
	}
	mf := make(fs.FileSystemMulti, 0, len(op.Roots)+1)
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			panic(errAbs.Error())
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			panic(err.Error())
		}
		mf = append(mf, rf)
	}
	mf = append(mf, f)

	c, err := compiler.New(
		compiler.OptionWithLookupEnv(os.LookupEnv),
		compiler.OptionWithFS(mf),
		compiler.OptionWithProfile(prof),
		compiler.OptionWithEnviron(op.Environ),
		compiler.OptionWithVerify(op.Verify),
		compiler.OptionWithMaxConcurrency(op.MaxConcurrency),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	out, err := c.Compile(ctx, &compiler.CompileRequest{
		Files:     targets,
		DumpUnits: op.DumpUnits,
		DumpTags:  op.DumpTags,
	})
	if err != nil {
		var me compiler.MultiException
		if errors.As(err, &me) {
			for _, err := range me {
				fmt.Fprintln(os.Stderr, err.Error())
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	for _, e := range out.Reported {
		if e.Severity() == exc.SeverityWarning {
			fmt.Fprintln(os.Stderr, e.Error())
		}
	}
}
