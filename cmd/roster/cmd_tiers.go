package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"internportal/internal/domain"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers <donations>",
	Short: "Show unlocked tiers and progress for a donation total",
	Args:  cobra.ExactArgs(1),
	RunE:  runTiers,
}

func runTiers(cmd *cobra.Command, args []string) error {
	donations, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || donations < 0 {
		return fmt.Errorf("donations must be a non-negative integer, got %q", args[0])
	}

	p := printer()
	out := cmd.OutOrStdout()
	for _, t := range domain.Tiers() {
		mark := " "
		if t.Unlocked(donations) {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %-16s %s\n", mark, t.Name, p.Sprintf("Rs %d", t.Threshold))
	}

	progress := domain.ProgressFor(donations)
	if progress.Next == nil {
		fmt.Fprintf(out, "Top tier reached: %s\n", domain.Tiers()[len(domain.Tiers())-1].Name)
		return nil
	}
	fmt.Fprintf(out, "Next: %s, %s to go (%.1f%%)\n", progress.Next.Name, p.Sprintf("Rs %d", progress.Remaining), progress.Percent)
	return nil
}
