package handler

import (
	"net/http"

	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/market"
)

// HandleGetPrices serves the market snapshot, or a per-skill catalog join
// when a skill parameter is given.
func HandleGetPrices(marketSvc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if skill := r.URL.Query().Get("skill"); skill != "" {
			joined, err := marketSvc.GetSkillPrices(r.Context(), domain.Skill(skill))
			if err != nil {
				writeError(w, r, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{"skill": skill, "prices": joined})
			return
		}

		prices, err := marketSvc.GetPrices(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"prices": prices})
	}
}
