package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"internportal/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupRequest accepts a password for form compatibility; it is never stored.
type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool       `json:"success"`
	Intern  *internDTO `json:"intern,omitempty"`
	Message string     `json:"message"`
}

func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	intern, err := domain.Authenticate(r.Context(), a.Roster, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			a.json(w, http.StatusUnauthorized, authResponse{Success: false, Message: "Invalid credentials"})
			return
		}
		a.log(r).Error().Err(err).Msg("login failed")
		a.error(w, http.StatusInternalServerError, "failed to log in")
		return
	}
	rank, err := a.rankOf(r, intern.ID)
	if err != nil {
		a.log(r).Error().Err(err).Msg("rank intern failed")
		a.error(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	dto := newInternDTO(intern, rank)
	a.json(w, http.StatusOK, authResponse{Success: true, Intern: &dto, Message: "Login successful"})
}

func (a *App) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	intern, err := a.Roster.Append(r.Context(), req.Name, req.Email, 0)
	if err != nil {
		a.log(r).Error().Err(err).Msg("signup failed")
		a.error(w, http.StatusInternalServerError, "failed to sign up")
		return
	}
	rank, err := a.rankOf(r, intern.ID)
	if err != nil {
		a.log(r).Error().Err(err).Msg("rank intern failed")
		a.error(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	a.log(r).Info().Int("intern_id", intern.ID).Str("referral_code", intern.ReferralCode).Msg("intern signed up")
	dto := newInternDTO(intern, rank)
	a.json(w, http.StatusOK, authResponse{Success: true, Intern: &dto, Message: "Signup successful"})
}
