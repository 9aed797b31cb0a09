// Command hlslc is the reference driver for the HLSL front end (spec.md
// §4.9): for each input file it scans and dumps the raw token stream
// (--dump-tokens) and/or parses and dumps the tree (--dump-tree); with
// neither flag a file is not read. It is structurally identical to the teacher's main.go —
// parse flags into an opts struct, construct a logger, run the library,
// print diagnostics to stderr and exit non-zero on failure — with the
// teacher's protobuf/plugin code-generation machinery dropped, since this
// front end has no downstream codegen stage to feed (see DESIGN.md).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"gopkg.hlsltranslate.org/parser.go/internal/fs"
	"gopkg.hlsltranslate.org/parser.go/internal/lexer"
	"gopkg.hlsltranslate.org/parser.go/internal/logger"
	"gopkg.hlsltranslate.org/parser.go/internal/parser"
	"gopkg.hlsltranslate.org/parser.go/internal/printer"
	"gopkg.hlsltranslate.org/parser.go/internal/source"
	"gopkg.hlsltranslate.org/parser.go/internal/token"
)

type opts struct {
	DumpTokens bool
	DumpTree   bool
}

func main() {
	op := &opts{}
	flags := pflag.NewFlagSet("hlslc", pflag.ExitOnError)
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream as it is processed")
	flags.BoolVar(&op.DumpTree, "dump-tree", false, "Output the parse tree after parsing")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "hlslc: no input files")
		os.Exit(1)
	}

	paths, err := fs.Discover(targets, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	log := logger.NewStdLogger(os.Stdout)

	failed := false
	for _, path := range paths {
		if err := process(path, op, log); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, err.Error())
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func process(path string, op *opts, log logger.Logger) error {
	// Each stage gets its own SourceCode: a scan consumes the cursor as it
	// goes, and this is the one CLI case where both a standalone token
	// dump and a full parse might run over the same file in one process.
	if op.DumpTokens {
		src, err := source.FromFile(path)
		if err != nil {
			return err
		}
		if err := dumpTokens(src, log); err != nil {
			return err
		}
	}

	if !op.DumpTree {
		return nil
	}
	src, err := source.FromFile(path)
	if err != nil {
		return err
	}
	prog, err := parser.New(log).Parse(src)
	if err != nil {
		return err
	}
	printer.Print(prog, log)
	return nil
}

// dumpTokens scans src standalone, without invoking the parser, printing
// one line per token — exercises internal/lexer on its own, the way
// --dump-tokens is documented to (spec.md §4.9).
func dumpTokens(src *source.SourceCode, log logger.Logger) error {
	name := src.Name()
	scan := lexer.New(src, name)
	for {
		tok, err := scan.Next()
		if err != nil {
			return err
		}
		log.Info(fmt.Sprintf("%s %q %s", tok.Kind, tok.Spelling, tok.Pos))
		if tok.Kind == token.EndOfStream {
			return nil
		}
	}
}
