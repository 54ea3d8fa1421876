package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"internportal/internal/domain"
	"internportal/internal/middleware"
)

const msgInternNotFound = "Intern not found"

// rankedIntern loads the intern named by the {id} URL param together with its
// current leaderboard position.
func (a *App) rankedIntern(w http.ResponseWriter, r *http.Request) (domain.Intern, int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		a.error(w, http.StatusNotFound, msgInternNotFound)
		return domain.Intern{}, 0, false
	}
	intern, err := a.Roster.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, msgInternNotFound)
			return domain.Intern{}, 0, false
		}
		a.log(r).Error().Err(err).Int("intern_id", id).Msg("load intern failed")
		a.error(w, http.StatusInternalServerError, "failed to load intern")
		return domain.Intern{}, 0, false
	}
	rank, err := a.rankOf(r, intern.ID)
	if err != nil {
		a.log(r).Error().Err(err).Msg("rank intern failed")
		a.error(w, http.StatusInternalServerError, "failed to load leaderboard")
		return domain.Intern{}, 0, false
	}
	return intern, rank, true
}

func (a *App) rankOf(r *http.Request, id int) (int, error) {
	roster, err := a.Roster.List(r.Context())
	if err != nil {
		return 0, err
	}
	rank, ok := domain.RankOf(roster, id)
	if !ok {
		return 0, domain.ErrNotFound
	}
	return rank, nil
}

func (a *App) InternGet(w http.ResponseWriter, r *http.Request) {
	intern, rank, ok := a.rankedIntern(w, r)
	if !ok {
		return
	}
	a.json(w, http.StatusOK, newInternDTO(intern, rank))
}

func (a *App) InternDashboard(w http.ResponseWriter, r *http.Request) {
	intern, rank, ok := a.rankedIntern(w, r)
	if !ok {
		return
	}
	locale := middleware.LocaleFromContext(r.Context())
	a.json(w, http.StatusOK, newDashboardDTO(intern, rank, locale))
}
