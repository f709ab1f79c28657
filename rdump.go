// This file is part of os9rof.
//
// os9rof is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// os9rof is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with os9rof.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jetsetilly/os9rof/dump"
	"github.com/jetsetilly/os9rof/logger"
	"github.com/jetsetilly/os9rof/modalflag"
	"github.com/jetsetilly/os9rof/paths"
	"github.com/jetsetilly/os9rof/prefs"
	"github.com/jetsetilly/os9rof/rof"
	"github.com/jetsetilly/os9rof/script"
	"github.com/jetsetilly/os9rof/statsview"
	"github.com/jetsetilly/os9rof/stream"
	"github.com/jetsetilly/os9rof/version"
	"golang.org/x/sync/errgroup"
)

// exit values
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch runs the command with the arguments and returns the exit value.
func launch(args []string, stdout io.Writer, stderr io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.AddSubModes("DUMP", "SYMBOLS", "REFS", "DISASM", "VERSION")

	echo := md.AddBool("log", false, "echo log to stderr")
	prefsOverride := md.AddString("prefs", "", "preferences for this session. key::value; key::value")
	savePrefs := md.AddBool("saveprefs", false, "save preferences, including those given by -prefs")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitArguments
	}

	if *echo {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(stderr)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "rdump", "unused preferences: %s", unused)
			}
		}()
	}

	pr, err := newPreferences()
	if err != nil {
		fmt.Fprintf(stderr, "* error: %v\n", err)
		return exitMode
	}

	if *savePrefs {
		if err := pr.dsk.Save(); err != nil {
			fmt.Fprintf(stderr, "* error: %v\n", err)
			return exitMode
		}
	}

	switch md.Mode() {
	case "DUMP":
		err = dumpMode(md, pr, stdout)
	case "SYMBOLS":
		err = symbolsMode(md, pr, stdout)
	case "REFS":
		err = refsMode(md, pr, stdout)
	case "DISASM":
		err = disasmMode(md, pr, stdout)
	case "VERSION":
		err = versionMode(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stderr, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitOK
}

// the object files named on the command line
type objectFile struct {
	filename string
	segs     []*rof.Segment
}

// loadFile reads every segment in the named file. Segments that were
// completely decoded are returned even if there is an error.
func loadFile(filename string) ([]*rof.Segment, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := stream.NewReaderFrom(f, binary.BigEndian)
	if err != nil {
		return nil, err
	}

	return rof.ReadAll(r)
}

// loadFiles reads the named files concurrently. The returned slice is in the
// same order as the filenames and is complete even if there is an error.
func loadFiles(filenames []string) ([]objectFile, error) {
	files := make([]objectFile, len(filenames))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, fn := range filenames {
		i, fn := i, fn
		files[i].filename = fn
		g.Go(func() error {
			segs, err := loadFile(fn)
			files[i].segs = segs
			if err != nil {
				return fmt.Errorf("%s: %w", fn, err)
			}
			return nil
		})
	}

	return files, g.Wait()
}

// eachSegment loads the files named in the remaining arguments of the mode
// and calls fn for every segment. A load error is returned only after the
// segments that were decoded have been processed.
func eachSegment(md *modalflag.Modes, output io.Writer, fn func(seg *rof.Segment) error) error {
	filenames := md.RemainingArgs()
	if len(filenames) == 0 {
		return errors.New("object file required")
	}

	files, loadErr := loadFiles(filenames)

	for _, f := range files {
		if len(files) > 1 {
			fmt.Fprintf(output, "=== %s\n", f.filename)
		}
		for _, seg := range f.segs {
			if err := fn(seg); err != nil {
				return fmt.Errorf("%s: %w", f.filename, err)
			}
		}
	}

	return loadErr
}

func newDumper(pr *preferences, output io.Writer) *dump.Dumper {
	d := &dump.Dumper{
		Output:   output,
		HexWidth: pr.hexWidth.Get().(int),
		Symbols:  pr.symbols.Get().(bool),
	}
	if f, ok := output.(*os.File); ok {
		d.Terminal = dump.DetectTerminal(f)
	}
	if !pr.colour.Get().(bool) {
		d.Terminal.Colour = false
	}
	return d
}

// addFilter adds the -filter flag to the current mode. The returned function
// should be called after parsing and returns the filter or nil if no filter
// has been specified.
func addFilter(md *modalflag.Modes) func() (*script.Filter, error) {
	fn := md.AddString("filter", "", "lua script selecting the symbols to list")
	return func() (*script.Filter, error) {
		if *fn == "" {
			return nil, nil
		}
		return script.NewFilter(*fn)
	}
}

func dumpMode(md *modalflag.Modes, pr *preferences, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("dump every segment of the object files. the default mode")

	pause := md.AddBool("pause", false, "wait for key press between segments")
	graph := md.AddBool("memviz", false, "write a memviz graph of the segments to a dot file")
	filter := addFilter(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	d := newDumper(pr, output)
	if f, err := filter(); err != nil {
		return err
	} else if f != nil {
		defer f.Close()
		d.Filter = f
	}

	var all []*rof.Segment
	err = eachSegment(md, output, func(seg *rof.Segment) error {
		if *pause && len(all) > 0 {
			if err := dump.Pause(output, "press a key for next segment"); err != nil {
				return err
			}
		}
		all = append(all, seg)
		return d.Segment(seg)
	})

	if *graph && len(all) > 0 {
		if gerr := writeGraph(md.GetArg(0), all); gerr != nil {
			return errors.Join(err, gerr)
		}
	}

	return err
}

// writeGraph writes the memviz graph to a uniquely named file in the current
// directory. the name is based on the first object file.
func writeGraph(objectFile string, segs []*rof.Segment) error {
	name := strings.TrimSuffix(filepath.Base(objectFile), filepath.Ext(objectFile))
	fn := paths.UniqueFilename("memviz", name, "dot")

	f, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	defer f.Close()

	dump.Graph(f, segs)
	logger.Logf(logger.Allow, "rdump", "memviz graph written to %s", fn)

	return nil
}

func symbolsMode(md *modalflag.Modes, pr *preferences, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("list the symbol table of every segment")

	filter := addFilter(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	d := newDumper(pr, output)
	if f, err := filter(); err != nil {
		return err
	} else if f != nil {
		defer f.Close()
		d.Filter = f
	}

	return eachSegment(md, output, func(seg *rof.Segment) error {
		fmt.Fprintln(output, seg.Name)
		return d.SymbolTable(seg)
	})
}

func refsMode(md *modalflag.Modes, pr *preferences, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("list the local references of every segment")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	d := newDumper(pr, output)

	return eachSegment(md, output, func(seg *rof.Segment) error {
		d.Refs(seg)
		return nil
	})
}

func disasmMode(md *modalflag.Modes, pr *preferences, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("disassemble the object code of every segment")

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	grep := md.AddString("grep", "", "only show instructions that contain the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	d := newDumper(pr, output)
	d.Bytecode = *bytecode

	return eachSegment(md, output, func(seg *rof.Segment) error {
		if *grep == "" {
			return d.Disasm(seg)
		}

		_, err := d.Grep(seg, *grep)
		return err
	})
}

func versionMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.String())
	return nil
}
