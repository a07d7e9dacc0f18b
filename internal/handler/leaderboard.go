package handler

import (
	"net/http"
	"strconv"

	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/leaderboard"
)

// HandleGetLeaderboard serves one page of a skill leaderboard.
func HandleGetLeaderboard(lbSvc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill := domain.Skill(r.URL.Query().Get("skill"))
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

		result, err := lbSvc.GetPage(r.Context(), skill, page, pageSize)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
