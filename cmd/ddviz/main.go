// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command ddviz renders a Graphviz DOT file produced by bdd.WriteDot or
// zdd.WriteDot into an image, by shelling out to the external Graphviz
// dot binary (spec §6: "External Interfaces... delegated to an external
// Graphviz process, not part of the core").
//
// Usage:
//
//	ddviz <input.dot> <output.(png|svg)>
//
// The output format is taken from the output file's extension.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: ddviz <input.dot> <output.(png|svg)>")
		os.Exit(1)
	}
	in, out := os.Args[1], os.Args[2]
	if err := render(in, out); err != nil {
		fmt.Fprintf(os.Stderr, "ddviz: %s\n", err)
		os.Exit(1)
	}
}

// render shells out to "dot -T<format> <in> -o <out>". format is derived
// from out's extension (".png" or ".svg"); any other extension is passed
// through verbatim to -T, since Graphviz supports dozens of output
// formats and this CLI has no business maintaining its own allowlist.
func render(in, out string) error {
	if _, err := os.Stat(in); err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}
	format := strings.TrimPrefix(filepath.Ext(out), ".")
	if format == "" {
		return fmt.Errorf("output file %q has no extension to infer a -T format from", out)
	}
	path, err := exec.LookPath("dot")
	if err != nil {
		return fmt.Errorf("graphviz's dot binary not found on PATH: %w", err)
	}
	cmd := exec.Command(path, "-T"+format, in, "-o", out)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running dot: %w", err)
	}
	return nil
}
