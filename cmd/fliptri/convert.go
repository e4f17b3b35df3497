package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/tessile/fliptri/triangulation"
)

type convertConfig struct {
	*cli.Command
}

// ConvertCommand returns the convert subcommand: it prints the polygon
// size, the diagonal list and the canonical parentheses form of one
// triangulation, which round-trips shorthand inputs into the codec.
func ConvertCommand() *cli.Command {
	cfg := &convertConfig{}
	opts, _ := cli.StructOpts(cfg)

	return cli.NewCommandAt(&cfg.Command, "convert").
		WithSynopsis("convert <triangulation> - print size, diagonals and canonical form").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *convertConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: convert requires one triangulation encoding", cli.ErrUsage)
	}
	g, err := parseArg(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, g.Size())
	for _, e := range g.Edges() {
		fmt.Fprintf(cc.Out, "%d %d\n", e.U, e.V)
	}
	fmt.Fprintln(cc.Out, triangulation.Format(g))

	return nil
}
