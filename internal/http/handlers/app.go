package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"internportal/internal/domain"
)

// App carries the dependencies shared by every handler.
type App struct {
	Roster domain.RosterStore
	Logger zerolog.Logger
}

func NewApp(roster domain.RosterStore, logger zerolog.Logger) *App {
	return &App{Roster: roster, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.Logger.Error().Err(err).Msg("encode response")
	}
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]string{"error": message})
}

// log returns the request scoped logger when the logging middleware set one.
func (a *App) log(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &a.Logger
}
