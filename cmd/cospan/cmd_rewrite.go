package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cospan/chypio"
	"github.com/katalvlaran/cospan/match"
	"github.com/katalvlaran/cospan/rewrite"
)

var (
	rewriteReverse bool
	rewriteNth     int
	rewriteOut     string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <rule.chyprule> <target.chyp>",
	Short: "Apply a rule at the n-th match and print or save the result",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := chypio.LoadRule(args[0])
		if err != nil {
			return err
		}
		if rewriteReverse {
			if r, err = r.Reverse(); err != nil {
				return err
			}
		}
		g, err := chypio.LoadGraph(args[1])
		if err != nil {
			return err
		}

		if rewriteNth < 1 {
			return fmt.Errorf("--match must be at least 1")
		}
		ms := match.FindRule(r, g, match.WithContext(cmd.Context()), match.WithLogger(logger))
		var m *match.Match
		for i := 0; i < rewriteNth; i++ {
			var ok bool
			if m, ok = ms.Next(); !ok {
				if err := ms.Err(); err != nil {
					return err
				}
				return fmt.Errorf("rule %s: only %d match(es), wanted %d", r.Name(), i, rewriteNth)
			}
		}

		h, err := rewrite.Rewrite(r, m)
		if err != nil {
			return err
		}
		logger.Info("rewrite applied",
			zap.String("rule", r.Name()), zap.Int("match", rewriteNth))

		if rewriteOut != "" {
			return chypio.SaveGraph(rewriteOut, h)
		}
		data, err := chypio.MarshalGraph(h)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rewriteCmd.Flags().BoolVar(&rewriteReverse, "reverse", false, "apply the rule right-to-left")
	rewriteCmd.Flags().IntVarP(&rewriteNth, "match", "n", 1, "1-based match number to rewrite at")
	rewriteCmd.Flags().StringVarP(&rewriteOut, "out", "o", "", "write the result to this .chyp file")
	rootCmd.AddCommand(rewriteCmd)
}
