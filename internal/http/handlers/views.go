package handlers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"internportal/internal/domain"
)

// internDTO keeps the wire shape the portal UI expects. Rank and rewards are
// computed from the current roster on every response.
type internDTO struct {
	ID              int            `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	ReferralCode    string         `json:"referralCode"`
	DonationsRaised int64          `json:"donationsRaised"`
	Rank            int            `json:"rank"`
	Rewards         domain.Rewards `json:"rewards"`
}

type leaderboardEntryDTO struct {
	internDTO
	Tiers []domain.Tier `json:"tiers"`
}

type tierDTO struct {
	Tier             domain.Tier `json:"tier"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	Requirement      int64       `json:"requirement"`
	RequirementLabel string      `json:"requirementLabel"`
	Unlocked         bool        `json:"unlocked"`
}

type dashboardDTO struct {
	Intern          internDTO `json:"intern"`
	TotalRaised     string    `json:"totalRaised"`
	Rewards         []tierDTO `json:"rewards"`
	NextTier        *tierDTO  `json:"nextTier"`
	Remaining       int64     `json:"remaining"`
	RemainingLabel  string    `json:"remainingLabel"`
	ProgressPercent float64   `json:"progressPercent"`
	InLead          bool      `json:"inLead"`
}

func newInternDTO(in domain.Intern, rank int) internDTO {
	return internDTO{
		ID:              in.ID,
		Name:            in.Name,
		Email:           in.Email,
		ReferralCode:    in.ReferralCode,
		DonationsRaised: in.DonationsRaised,
		Rank:            rank,
		Rewards:         domain.RewardsFor(in.DonationsRaised),
	}
}

func newTierDTO(p *message.Printer, t domain.TierInfo, donations int64) tierDTO {
	return tierDTO{
		Tier:             t.Tier,
		Name:             t.Name,
		Description:      t.Description,
		Requirement:      t.Threshold,
		RequirementLabel: formatRupees(p, t.Threshold) + " needed",
		Unlocked:         t.Unlocked(donations),
	}
}

func newDashboardDTO(in domain.Intern, rank int, locale string) dashboardDTO {
	p := printerFor(locale)
	progress := domain.ProgressFor(in.DonationsRaised)

	d := dashboardDTO{
		Intern:          newInternDTO(in, rank),
		TotalRaised:     formatRupees(p, in.DonationsRaised),
		Remaining:       progress.Remaining,
		RemainingLabel:  formatRupees(p, progress.Remaining),
		ProgressPercent: progress.Percent,
		InLead:          rank == 1,
	}
	for _, t := range domain.Tiers() {
		d.Rewards = append(d.Rewards, newTierDTO(p, t, in.DonationsRaised))
	}
	if progress.Next != nil {
		next := newTierDTO(p, *progress.Next, in.DonationsRaised)
		d.NextTier = &next
	}
	return d
}

func printerFor(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func formatRupees(p *message.Printer, amount int64) string {
	return p.Sprintf("Rs %d", amount)
}
