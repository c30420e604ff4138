package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cospan/chypio"
	"github.com/katalvlaran/cospan/hypergraph"
	"github.com/katalvlaran/cospan/term"
)

var showCmd = &cobra.Command{
	Use:   "show <file.chyp | file.chyprule>",
	Short: "Print a diagram (or both sides of a rule) as a term",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if strings.HasSuffix(path, ".chyprule") {
			r, err := chypio.LoadRule(path)
			if err != nil {
				return err
			}
			lhs, err := term.FromGraph(r.LHS())
			if err != nil {
				return err
			}
			rhs, err := term.FromGraph(r.RHS())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rule %s : %s = %s\n", r.Name(), lhs, rhs)
			return nil
		}

		g, err := chypio.LoadGraph(path)
		if err != nil {
			return err
		}
		return printGraph(cmd, g)
	},
}

func printGraph(cmd *cobra.Command, g *hypergraph.Graph) error {
	t, err := term.FromGraph(g)
	if err != nil {
		return err
	}
	in, out := g.Arity()
	fmt.Fprintf(cmd.OutOrStdout(), "%s : %d -> %d (%d vertices, %d edges)\n",
		t, in, out, g.NumVertices(), g.NumEdges())
	return nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}
