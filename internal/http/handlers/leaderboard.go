package handlers

import (
	"net/http"

	"internportal/internal/domain"
)

func (a *App) Leaderboard(w http.ResponseWriter, r *http.Request) {
	roster, err := a.Roster.List(r.Context())
	if err != nil {
		a.log(r).Error().Err(err).Msg("list roster failed")
		a.error(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	ranked := domain.RankAll(roster)
	items := make([]leaderboardEntryDTO, 0, len(ranked))
	for _, rk := range ranked {
		items = append(items, leaderboardEntryDTO{
			internDTO: newInternDTO(rk.Intern, rk.Rank),
			Tiers:     domain.UnlockedTiers(rk.DonationsRaised),
		})
	}
	a.json(w, http.StatusOK, items)
}
