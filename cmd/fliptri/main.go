// Command fliptri decides and measures flip distances between
// triangulations of convex polygons.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

const usageText = `fliptri - flip distance between polygon triangulations

Usage:
  fliptri decide [-algo name] -k <budget> <start> <target>   One budgeted decision
  fliptri decide [-algo name] -sweep <start> <target>        Probe budgets 1..2n-6 with timings
  fliptri distance [-algo name] [-stats] <start> <target>    Minimum flip distance
  fliptri convert <triangulation>                            Print size, edges and canonical form

Triangulations are balanced-parentheses encodings of the dual binary tree
(leaf = "", internal node = "(left right)"), or the shorthand fan:N[:APEX]
for the fan triangulation of the N-gon.

Examples:
  fliptri decide -k 2 'fan:6:0' 'fan:6:3'
  fliptri decide -algo bfs -sweep '(()())' '((()))'
  fliptri distance -algo source -stats 'fan:8:0' 'fan:8:1'
  fliptri convert '(((())))'`

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

// MainCommand assembles the fliptri command tree.
func MainCommand() *cli.Command {
	return cli.NewCommand("fliptri").
		WithSynopsis("fliptri - flip distance between polygon triangulations").
		WithDescription(usageText).
		WithSubs(
			DecideCommand(),
			DistanceCommand(),
			ConvertCommand(),
		)
}
