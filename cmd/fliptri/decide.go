package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/scott-cotton/cli"

	"github.com/tessile/fliptri/flipdist"
)

type decideConfig struct {
	*cli.Command
	Algo  string `cli:"name=algo aliases=a desc='search strategy (source, simple, bfs)'"`
	K     int    `cli:"name=k desc='flip budget for a single decision'"`
	Sweep bool   `cli:"name=sweep desc='probe every budget from 1 to 2n-6 with timings'"`
}

// DecideCommand returns the decide subcommand.
func DecideCommand() *cli.Command {
	cfg := &decideConfig{Algo: "source", K: -1}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "decide").
		WithSynopsis("decide [-algo name] (-k budget | -sweep) <start> <target> - budgeted reachability").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *decideConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: decide requires two triangulation encodings", cli.ErrUsage)
	}
	start, target, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}
	solver, err := flipdist.New(cfg.Algo, start, target)
	if err != nil {
		return errors.Wrapf(err, "strategy %q of %s", cfg.Algo, strings.Join(flipdist.Algorithms(), ", "))
	}
	if cfg.Sweep {
		for k := 1; k <= 2*start.Size()-6; k++ {
			began := time.Now()
			printVerdict(cc.Out, k, solver.Decision(k), time.Since(began))
		}

		return nil
	}
	if cfg.K < 0 {
		return fmt.Errorf("%w: provide -k or -sweep", cli.ErrUsage)
	}
	began := time.Now()
	printVerdict(cc.Out, cfg.K, solver.Decision(cfg.K), time.Since(began))

	return nil
}

var (
	verdictYes = color.New(color.FgGreen)
	verdictNo  = color.New(color.FgRed)
)

// printVerdict renders one decision line: budget, colored verdict, timing.
func printVerdict(w io.Writer, k int, ok bool, elapsed time.Duration) {
	if ok {
		verdictYes.Fprintf(w, "k=%-3d yes", k)
	} else {
		verdictNo.Fprintf(w, "k=%-3d no", k)
	}
	fmt.Fprintf(w, "  %.3fs\n", elapsed.Seconds())
}
