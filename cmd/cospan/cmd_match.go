package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cospan/chypio"
	"github.com/katalvlaran/cospan/match"
)

var matchReverse bool

var matchCmd = &cobra.Command{
	Use:   "match <rule.chyprule> <target.chyp>",
	Short: "Enumerate the convex matches of a rule in a diagram",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := chypio.LoadRule(args[0])
		if err != nil {
			return err
		}
		if matchReverse {
			if r, err = r.Reverse(); err != nil {
				return err
			}
		}
		g, err := chypio.LoadGraph(args[1])
		if err != nil {
			return err
		}

		ms := match.FindRule(r, g, match.WithContext(cmd.Context()), match.WithLogger(logger))
		n := 0
		for {
			m, ok := ms.Next()
			if !ok {
				break
			}
			n++
			fmt.Fprintf(cmd.OutOrStdout(), "match %d: %s\n", n, m)
			if config.MatchLimit > 0 && n >= config.MatchLimit {
				fmt.Fprintf(cmd.OutOrStdout(), "stopped at match_limit %d\n", config.MatchLimit)
				break
			}
		}
		if err := ms.Err(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d match(es)\n", n)
		return nil
	},
}

func init() {
	matchCmd.Flags().BoolVar(&matchReverse, "reverse", false, "match the rule right-to-left")
	rootCmd.AddCommand(matchCmd)
}
