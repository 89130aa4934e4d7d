// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package zdd

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lattice-dd/ddkit/internal/engine"
)

// WriteDot writes a Graphviz DOT rendering of the DAG reachable from
// roots to w. Dotted edges are lo-children, solid edges are
// hi-children; the empty-family terminal (LO) is never drawn, for the
// same reason as bdd.Factory.WriteDot. Grounded on the teacher's
// Set.PrintDot/dotlabel (stdio.go), adapted to this package's
// Factory/ZDD API.
func (f *Factory) WriteDot(w io.Writer, roots ...ZDD) error {
	if err := f.checkOwn(roots...); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, `1 [shape=box, label="{}", style=filled, height=0.3, width=0.3];`)

	seen := map[engine.Ref]bool{f.e.Zero(): true, f.e.One(): true}
	var walk func(r engine.Ref) error
	walk = func(r engine.Ref) error {
		if seen[r] {
			return nil
		}
		seen[r] = true
		v := f.e.Var(r)
		pos := f.e.OrderIndex(v)
		fmt.Fprintf(bw, "%d %s\n", r, dotlabel(uint64(r), pos))
		lo, hi := f.e.Lo(r), f.e.Hi(r)
		if lo != f.e.Zero() {
			fmt.Fprintf(bw, "%d -> %d [style=dotted];\n", r, lo)
		}
		if hi != f.e.Zero() {
			fmt.Fprintf(bw, "%d -> %d [style=filled];\n", r, hi)
		}
		if !f.e.IsTerminal(lo) {
			if err := walk(lo); err != nil {
				return err
			}
		}
		if !f.e.IsTerminal(hi) {
			if err := walk(hi); err != nil {
				return err
			}
		}
		return nil
	}
	for _, root := range roots {
		if !f.e.IsTerminal(root.Ref()) {
			if err := walk(root.Ref()); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func dotlabel(id uint64, level int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, level, id)
}
