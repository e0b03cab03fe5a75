// nanolog-replay: CLI tool for replaying a nanolog text/JSON sink's output
//
// nanolog's core persists nothing, so this tool does not replay from any
// nanolog-specific wire format; it re-streams
// whatever a Text1/Text2 or JSON1/JSON2 sink already wrote to a file, optionally
// prefixing each line with a running sequence number — useful when
// stitching together output captured from several producer processes for
// offline review.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
)

const (
	version = "1.0.0"
	usage   = `nanolog-replay - replay a captured nanolog sink stream

USAGE:
    nanolog-replay [OPTIONS]

EXAMPLES:
    nanolog-replay -i session.log
    ./myapp 2>&1 | nanolog-replay -number > annotated.log

OPTIONS:
`
)

type config struct {
	input   string
	output  string
	number  bool
	version bool
}

func main() {
	cfg := parseFlags()

	if cfg.version {
		fmt.Printf("nanolog-replay version %s\n", version)
		os.Exit(0)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *config {
	cfg := &config{}

	flag.StringVar(&cfg.input, "i", "", "Input file (use '-' or empty for stdin)")
	flag.StringVar(&cfg.input, "input", "", "Input file (use '-' or empty for stdin)")
	flag.StringVar(&cfg.output, "o", "", "Output file (use '-' or empty for stdout)")
	flag.StringVar(&cfg.output, "output", "", "Output file (use '-' or empty for stdout)")
	flag.BoolVar(&cfg.number, "number", false, "Prefix each line with a running sequence number")
	flag.BoolVar(&cfg.version, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()
	return cfg
}

func run(cfg *config) error {
	in := io.Reader(os.Stdin)
	if cfg.input != "" && cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if cfg.output != "" && cfg.output != "-" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return fmt.Errorf("opening output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return replay(in, out, cfg.number)
}

func replay(in io.Reader, out io.Writer, number bool) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	w := bufio.NewWriter(out)
	defer w.Flush()

	seq := 0
	for scanner.Scan() {
		seq++
		if number {
			if _, err := fmt.Fprintf(w, "%06d %s\n", seq, scanner.Text()); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
