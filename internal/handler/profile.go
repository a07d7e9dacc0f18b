package handler

import (
	"net/http"

	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/history"
	"github.com/mveiros/ironwood-companion/internal/profile"
)

// HandleGetProfile looks up a player profile and records the search.
func HandleGetProfile(profileSvc profile.Service, historySvc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing username parameter"})
			return
		}

		p, err := profileSvc.GetProfile(r.Context(), username)
		if err != nil {
			writeError(w, r, err)
			return
		}

		historySvc.RecordSearch(r.Context(), domain.SearchTypePlayer, username)
		writeJSON(w, http.StatusOK, p)
	}
}

// HandleGetClan looks up a clan and records the search.
func HandleGetClan(profileSvc profile.Service, historySvc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("name")
		if name == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing name parameter"})
			return
		}

		clan, err := profileSvc.GetClan(r.Context(), name)
		if err != nil {
			writeError(w, r, err)
			return
		}

		historySvc.RecordSearch(r.Context(), domain.SearchTypeClan, name)
		writeJSON(w, http.StatusOK, clan)
	}
}
