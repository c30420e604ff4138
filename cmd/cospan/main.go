// Command cospan inspects and rewrites string-diagram files: .chyp graphs
// and .chyprule rewrite rules.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
