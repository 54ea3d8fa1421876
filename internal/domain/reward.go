package domain

// Tier names a reward level.
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// TierInfo describes a tier and the donation total that unlocks it.
type TierInfo struct {
	Tier        Tier
	Name        string
	Description string
	Threshold   int64
}

// tiers is ordered by strictly increasing threshold.
var tiers = []TierInfo{
	{Tier: TierBronze, Name: "Bronze Achiever", Description: "Raise Rs 1,000 in donations", Threshold: 1000},
	{Tier: TierSilver, Name: "Silver Supporter", Description: "Raise Rs 5,000 in donations", Threshold: 5000},
	{Tier: TierGold, Name: "Gold Champion", Description: "Raise Rs 10,000 in donations", Threshold: 10000},
	{Tier: TierPlatinum, Name: "Platinum Legend", Description: "Raise Rs 25,000 in donations", Threshold: 25000},
}

// Tiers returns every tier in increasing threshold order.
func Tiers() []TierInfo {
	out := make([]TierInfo, len(tiers))
	copy(out, tiers)
	return out
}

// Rewards flags which tiers a donation total has unlocked.
type Rewards struct {
	Bronze   bool `json:"bronze"`
	Silver   bool `json:"silver"`
	Gold     bool `json:"gold"`
	Platinum bool `json:"platinum"`
}

// Progress reports how far a donation total is from the next tier.
type Progress struct {
	Next      *TierInfo
	Target    int64
	Remaining int64
	Percent   float64
}

// Unlocked reports whether donations meets the tier threshold.
func (t TierInfo) Unlocked(donations int64) bool {
	return donations >= t.Threshold
}

// UnlockedTiers returns the tiers met by donations. The result is always a
// prefix of Tiers().
func UnlockedTiers(donations int64) []Tier {
	out := []Tier{}
	for _, t := range tiers {
		if !t.Unlocked(donations) {
			break
		}
		out = append(out, t.Tier)
	}
	return out
}

// RewardsFor computes the reward flags for donations.
func RewardsFor(donations int64) Rewards {
	var r Rewards
	for _, t := range UnlockedTiers(donations) {
		switch t {
		case TierBronze:
			r.Bronze = true
		case TierSilver:
			r.Silver = true
		case TierGold:
			r.Gold = true
		case TierPlatinum:
			r.Platinum = true
		}
	}
	return r
}

// NextTier returns the lowest tier not yet unlocked. ok is false once every
// tier has been reached.
func NextTier(donations int64) (TierInfo, bool) {
	for _, t := range tiers {
		if !t.Unlocked(donations) {
			return t, true
		}
	}
	return TierInfo{}, false
}

// ProgressFor computes the distance to the next tier. With every tier unlocked
// the top threshold is used as the target and nothing remains.
func ProgressFor(donations int64) Progress {
	p := Progress{Target: tiers[len(tiers)-1].Threshold}
	if next, ok := NextTier(donations); ok {
		p.Next = &next
		p.Target = next.Threshold
		p.Remaining = max(0, next.Threshold-donations)
	}
	p.Percent = min(100, 100*float64(donations)/float64(p.Target))
	return p
}
