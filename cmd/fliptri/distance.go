package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/scott-cotton/cli"

	"github.com/tessile/fliptri/flipdist"
)

type distanceConfig struct {
	*cli.Command
	Algo  string `cli:"name=algo aliases=a desc='search strategy (source, simple, bfs)'"`
	Stats bool   `cli:"name=stats desc='print search-node visits after the answer'"`
}

// DistanceCommand returns the distance subcommand.
func DistanceCommand() *cli.Command {
	cfg := &distanceConfig{Algo: "source"}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "distance").
		WithSynopsis("distance [-algo name] [-stats] <start> <target> - minimum flip distance").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *distanceConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: distance requires two triangulation encodings", cli.ErrUsage)
	}
	start, target, err := parsePair(args[0], args[1])
	if err != nil {
		return err
	}
	solver, err := flipdist.New(cfg.Algo, start, target)
	if err != nil {
		return errors.Wrapf(err, "strategy %q", cfg.Algo)
	}
	began := time.Now()
	d := solver.Distance()
	elapsed := time.Since(began)
	fmt.Fprintf(cc.Out, "%d\n%.3fs\n", d, elapsed.Seconds())
	if cfg.Stats {
		fmt.Fprintf(cc.Out, "branches=%d\n", solver.Statistics()[0])
	}

	return nil
}
