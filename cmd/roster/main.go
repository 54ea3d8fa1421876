// roster inspects the intern roster and reward tiers without starting the API.
//
// Usage:
//
//	roster leaderboard [--seed=<roster.yaml>] [--locale=en]
//	roster tiers <donations> [--locale=en]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rootFlags struct {
	locale string
}

var rootCmd = &cobra.Command{
	Use:          "roster",
	Short:        "Inspect the intern roster, leaderboard and reward tiers",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.locale, "locale", "en", "Locale used to format amounts (en, en-IN, id)")
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(tiersCmd)
}

func printer() *message.Printer {
	tag, err := language.Parse(rootFlags.locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
