package main

import (
	"fmt"
	"io"

	"github.com/wlattner/segreg"
)

// report prints a text summary of a fitted tree, following the layout of
// the teacher's model.go Report method: headline stats first, then a
// structural dump.
func report(w io.Writer, tree *segreg.Tree, n int, fitSeconds float64) {
	fmt.Fprintf(w, "Fit segmented regression on %d examples in %.3fs\n", n, fitSeconds)
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "RSS: %.4f\n", tree.RSS())
	fmt.Fprintf(w, "MSE: %.4f\n", tree.MSE())
	fmt.Fprintf(w, "AIC: %.4f\n", tree.AIC())
	fmt.Fprintf(w, "BIC: %.4f\n", tree.BIC())
	fmt.Fprintf(w, "\n")

	bp := tree.Breakpoints()
	if len(bp) == 0 {
		fmt.Fprintf(w, "Breakpoints: none\n")
	} else {
		fmt.Fprintf(w, "Breakpoints: %v\n", bp)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintln(w, tree.String())
}
