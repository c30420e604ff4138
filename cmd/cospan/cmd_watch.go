package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/cospan/chypio"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-validate .chyp and .chyprule files as they change",
	Long: `watch monitors a directory and reloads every changed .chyp or .chyprule
file, reporting whether it still parses and satisfies the diagram
invariants (monogamy, acyclicity, rule boundary agreement). Stop with
Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watcher: %w", err)
		}
		defer w.Close()
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Info("watching", zap.String("dir", dir))

		// Check everything once up front.
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, ent := range entries {
			if !ent.IsDir() {
				checkFile(cmd, filepath.Join(dir, ent.Name()))
			}
		}

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		// Debounce bursts of events per path: editors often emit several
		// writes per save.
		pending := make(map[string]struct{})
		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				pending[ev.Name] = struct{}{}
				if timer == nil {
					timer = time.NewTimer(config.debounce())
				} else {
					timer.Reset(config.debounce())
				}
				fire = timer.C

			case <-fire:
				for path := range pending {
					checkFile(cmd, path)
				}
				clear(pending)
				fire = nil

			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watcher error", zap.Error(err))

			case <-sig:
				logger.Info("stopping")
				return nil

			case <-cmd.Context().Done():
				return cmd.Context().Err()
			}
		}
	},
}

// checkFile reloads one file and reports its status. Unknown extensions
// are skipped silently so stray editor files don't spam the output.
func checkFile(cmd *cobra.Command, path string) {
	var err error
	switch {
	case strings.HasSuffix(path, ".chyp"):
		_, err = chypio.LoadGraph(path)
	case strings.HasSuffix(path, ".chyprule"):
		_, err = chypio.LoadRule(path)
	default:
		return
	}
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "ok   %s\n", path)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
