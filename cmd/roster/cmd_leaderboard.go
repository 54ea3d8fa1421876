package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"internportal/internal/adapter/repo"
	"internportal/internal/domain"
)

var leaderboardFlags struct {
	seed string
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Print the ranked roster",
	Args:  cobra.NoArgs,
	RunE:  runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&leaderboardFlags.seed, "seed", "", "YAML roster file (defaults to the built-in roster)")
}

func runLeaderboard(cmd *cobra.Command, _ []string) error {
	seed, err := repo.LoadSeed(leaderboardFlags.seed)
	if err != nil {
		return err
	}
	roster, err := repo.NewRosterRepository(seed).List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list roster: %w", err)
	}

	p := printer()
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tID\tNAME\tRAISED\tTIERS\tREFERRAL")
	for _, r := range domain.RankAll(roster) {
		tiers := make([]string, 0, 4)
		for _, t := range domain.UnlockedTiers(r.DonationsRaised) {
			tiers = append(tiers, string(t))
		}
		tierCol := strings.Join(tiers, ",")
		if tierCol == "" {
			tierCol = "-"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n", r.Rank, r.ID, r.Name, p.Sprintf("Rs %d", r.DonationsRaised), tierCol, r.ReferralCode)
	}
	return tw.Flush()
}
