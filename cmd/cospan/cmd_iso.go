package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cospan/chypio"
	"github.com/katalvlaran/cospan/match"
)

var isoCmd = &cobra.Command{
	Use:   "iso <a.chyp> <b.chyp>",
	Short: "Test two diagrams for ordered-boundary isomorphism",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := chypio.LoadGraph(args[0])
		if err != nil {
			return err
		}
		h, err := chypio.LoadGraph(args[1])
		if err != nil {
			return err
		}

		m := match.FindIso(g, h, match.WithContext(cmd.Context()), match.WithLogger(logger))
		if m == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "not isomorphic")
			return fmt.Errorf("%s and %s are not isomorphic", args[0], args[1])
		}
		logger.Debug("isomorphism found", zap.String("map", m.String()))
		fmt.Fprintln(cmd.OutOrStdout(), "isomorphic")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(isoCmd)
}
