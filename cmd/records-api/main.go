// main is the entry point of the records-api binary.
//
// COMMANDS:
//
//	records-api serve --config=config/local.yaml   run the HTTP API
//	records-api demo [account|car|student|employee] replay the walkthroughs
//
// serve also accepts the config path through CONFIG_PATH:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/records-api serve
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "records-api",
	Short: "Guarded records (accounts, cars, students) over a JSON API",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newServeCmd(), newDemoCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
