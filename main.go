package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/davecheney/profile"

	"github.com/wlattner/segreg"
	"github.com/wlattner/segreg/segtree"
)

var (
	dataFile    = flag.String("data", "", "csv file with (x, y) observations")
	mode        = flag.String("mode", "bic", "scoring objective: rss, aic, or bic")
	epsilon     = flag.Float64("epsilon", 0, "noise tolerance; 0 selects the default (min|y|)")
	doSimplify  = flag.Bool("simplify", false, "merge statistically indistinguishable adjacent segments")
	dotFile     = flag.String("dot", "", "file to write a Graphviz DOT rendering of the fitted tree")
	predictFile = flag.String("predict", "", "csv file of x values to predict, written back with a predicted column")
	runProfile  = flag.Bool("profile", false, "cpu profile")
)

var modeCode = map[string]segtree.ScoreMode{
	"rss": segtree.RSS,
	"aic": segtree.AIC,
	"bic": segtree.BIC,
}

func main() {
	flag.Parse()

	if *dataFile == "" {
		log.Fatal("missing required flag", "flag", "-data")
	}

	if *runProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	m, ok := modeCode[*mode]
	if !ok {
		log.Fatal("invalid scoring mode", "mode", *mode)
	}

	f, err := os.Open(*dataFile)
	if err != nil {
		log.Fatal("error opening data file", "file", *dataFile, "err", err)
	}
	defer f.Close()

	xs, ys, err := parseXY(f)
	if err != nil {
		log.Fatal("error parsing data file", "file", *dataFile, "err", err)
	}

	opts := []segreg.Option{segreg.WithMode(m)}
	if *epsilon > 0 {
		opts = append(opts, segreg.WithEpsilon(*epsilon))
	}
	if *doSimplify {
		opts = append(opts, segreg.WithSimplify())
	}

	start := time.Now()
	tree, err := segreg.Compute(xs, ys, opts...)
	if err != nil {
		log.Fatal("error fitting tree", "err", err)
	}
	fitTime := time.Since(start)

	report(os.Stdout, tree, len(xs), fitTime.Seconds())

	if *dotFile != "" {
		out, err := os.Create(*dotFile)
		if err != nil {
			log.Fatal("error creating dot file", "file", *dotFile, "err", err)
		}
		defer out.Close()

		if err := tree.ExportDOT(out); err != nil {
			log.Fatal("error writing dot file", "file", *dotFile, "err", err)
		}
	}

	if *predictFile != "" {
		if err := predictFromFile(tree, *predictFile); err != nil {
			log.Fatal("error writing predictions", "file", *predictFile, "err", err)
		}
	}
}
