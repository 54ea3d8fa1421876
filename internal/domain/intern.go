package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const referralSuffix = "2025"

// Intern represents a roster member. Rank and rewards are not stored here;
// they are derived from the roster at read time.
type Intern struct {
	ID              int
	Name            string
	Email           string
	ReferralCode    string
	DonationsRaised int64
}

// NewIntern builds an intern record and derives its referral code from name.
func NewIntern(id int, name, email string, donations int64) Intern {
	return Intern{
		ID:              id,
		Name:            name,
		Email:           email,
		ReferralCode:    ReferralCode(name),
		DonationsRaised: donations,
	}
}

// ReferralCode lowercases name, strips every space and appends the campaign suffix.
func ReferralCode(name string) string {
	compact := strings.ReplaceAll(name, " ", "")
	return cases.Lower(language.Und).String(compact) + referralSuffix
}
