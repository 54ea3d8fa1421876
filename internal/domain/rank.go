package domain

import (
	"cmp"
	"slices"
)

// Ranked pairs an intern with its computed leaderboard position.
type Ranked struct {
	Intern
	Rank int
}

// RankAll orders interns by donations raised, highest first. Equal totals
// keep ascending ID order. The input slice is left untouched.
func RankAll(interns []Intern) []Ranked {
	sorted := slices.Clone(interns)
	slices.SortStableFunc(sorted, func(a, b Intern) int {
		if c := cmp.Compare(b.DonationsRaised, a.DonationsRaised); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	out := make([]Ranked, len(sorted))
	for i, in := range sorted {
		out[i] = Ranked{Intern: in, Rank: i + 1}
	}
	return out
}

// RankOf returns the 1-based leaderboard position of id.
func RankOf(interns []Intern, id int) (int, bool) {
	for _, r := range RankAll(interns) {
		if r.ID == id {
			return r.Rank, true
		}
	}
	return 0, false
}
