package handlers

import (
	"net/http"
)

func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats answers the dashboard counters.
func (a *App) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Catalog.Stats(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	a.ok(w, http.StatusOK, toStatsDTO(stats))
}
