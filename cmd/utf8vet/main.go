package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/corpustext/utf8text/charwidth"
	"github.com/corpustext/utf8text/escape"
	"github.com/corpustext/utf8text/scan"
	"github.com/corpustext/utf8text/vector"
)

func main() {
	var (
		file        = flag.String("file", "", "Read lines from file instead of stdin")
		doValid     = flag.Bool("valid", false, "Report UTF-8 validity per line")
		doWidth     = flag.Bool("width", false, "Report display width per line")
		ascii       = flag.Bool("ascii", false, "Escape every code point above ASCII")
		display     = flag.Bool("display", term.IsTerminal(int(os.Stdout.Fd())), "Display mode: drop ignorables, pad emoji")
		debugLog    = flag.Bool("debug", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive inspector TUI")
	)
	flag.Parse()

	if *debugLog {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		vector.SetLogger(logger)
	}

	opts := escape.Options{Display: *display, ASCIIOnly: *ascii}

	if *interactive {
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *doValid, *doWidth, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, doValid, doWidth bool, opts escape.Options) error {
	var in io.Reader = os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	// One scratch buffer for the whole run; it grows to the largest line
	// and every later line encodes without allocating.
	scratch := escape.GetScratch()
	defer escape.PutScratch(scratch)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineno := 0
	for sc.Scan() {
		lineno++
		line := sc.Bytes()

		switch {
		case doValid:
			if ok, off := scan.Valid(line); ok {
				fmt.Fprintf(out, "%d: valid\n", lineno)
			} else {
				fmt.Fprintf(out, "%d: invalid byte in position %d (\\x%02x)\n",
					lineno, off+1, line[off])
			}

		case doWidth:
			fmt.Fprintf(out, "%d\n", charwidth.Width(line))

		default:
			size, transformed, err := escape.Estimate(line, opts)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
			if !transformed {
				out.Write(line)
			} else {
				dst := scratch.Bytes(size)
				escape.Encode(dst, line, opts)
				out.Write(dst)
			}
			out.WriteByte('\n')
		}
	}
	return sc.Err()
}
