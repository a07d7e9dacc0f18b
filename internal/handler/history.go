package handler

import (
	"net/http"
	"strconv"

	"github.com/mveiros/ironwood-companion/internal/history"
)

// HandleGetHistory serves the most recent recorded searches.
func HandleGetHistory(historySvc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		entries, err := historySvc.Recent(r.Context(), limit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"searches": entries})
	}
}
