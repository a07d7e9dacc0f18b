package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mveiros/ironwood-companion/internal/calculator"
	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/logger"
	"github.com/mveiros/ironwood-companion/internal/metrics"
	"github.com/mveiros/ironwood-companion/internal/profile"
)

// CalculatorHandler serves the calculator endpoints.
type CalculatorHandler struct {
	service calculator.Service
}

// NewCalculatorHandler creates a CalculatorHandler.
func NewCalculatorHandler(service calculator.Service) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// ProjectRequest is the stateless projection payload.
type ProjectRequest struct {
	Skill       string                     `json:"skill" validate:"required,skill"`
	ItemName    string                     `json:"item_name" validate:"required"`
	Selection   domain.SkillBoostSelection `json:"selection"`
	General     domain.GeneralBuffs        `json:"general"`
	Gathering   domain.GatheringBuffs      `json:"gathering"`
	CurrentExp  float64                    `json:"current_exp" validate:"min=0"`
	TargetLevel int                        `json:"target_level" validate:"required,min=1,max=121"`
}

// HandleProject computes a one-shot projection from a complete selection.
func (h *CalculatorHandler) HandleProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := getValidator().Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": formatValidationError(err)})
		return
	}

	outputs, err := h.service.ProjectStateless(r.Context(), calculator.ProjectRequest{
		Skill:       domain.Skill(req.Skill),
		ItemName:    req.ItemName,
		Selection:   req.Selection,
		General:     req.General,
		Gathering:   req.Gathering,
		CurrentExp:  req.CurrentExp,
		TargetLevel: req.TargetLevel,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.ProjectionsComputed.WithLabelValues(req.Skill).Inc()
	writeJSON(w, http.StatusOK, outputs)
}

// HandleCreateSession opens a new calculator session.
func (h *CalculatorHandler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CreateSession(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": session.ID()})
}

func (h *CalculatorHandler) session(w http.ResponseWriter, r *http.Request) (*calculator.Session, bool) {
	session, err := h.service.Session(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, r, err)
		return nil, false
	}
	return session, true
}

// SelectSkillRequest picks the active skill.
type SelectSkillRequest struct {
	Skill string `json:"skill" validate:"required,skill"`
}

// HandleSelectSkill switches the session's active skill.
func (h *CalculatorHandler) HandleSelectSkill(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectSkillRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := getValidator().Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": formatValidationError(err)})
		return
	}

	if err := session.SelectSkill(domain.Skill(req.Skill)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"skill": req.Skill})
}

// SelectItemRequest picks an item for the active skill.
type SelectItemRequest struct {
	Name string `json:"name" validate:"required"`
}

// HandleSelectItem selects a catalog item in the session.
func (h *CalculatorHandler) HandleSelectItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := session.SelectItem(req.Name); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"item": req.Name})
}

// ScrollsRequest sets the scroll counts. The combined total may not exceed
// the slot cap; violating requests are rejected and the state is kept.
type ScrollsRequest struct {
	T1 int `json:"t1" validate:"min=0"`
	T2 int `json:"t2" validate:"min=0"`
	T3 int `json:"t3" validate:"min=0"`
}

// HandleSetScrolls sets the session's scroll counts.
func (h *CalculatorHandler) HandleSetScrolls(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req ScrollsRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := session.SetScrollCounts(req.T1, req.T2, req.T3); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// GearRequest sets the non-scroll equipment selections.
type GearRequest struct {
	Tool         *string `json:"tool,omitempty"`
	SkillCape    *string `json:"skill_cape,omitempty"`
	Consumable   *string `json:"consumable,omitempty"`
	OutfitPieces *int    `json:"outfit_pieces,omitempty"`
}

// HandleSetGear updates the provided equipment fields, leaving others as-is.
func (h *CalculatorHandler) HandleSetGear(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req GearRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Tool != nil {
		if err := session.SetTool(*req.Tool); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.SkillCape != nil {
		if err := session.SetSkillCape(*req.SkillCape); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.Consumable != nil {
		if err := session.SetConsumable(*req.Consumable); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if req.OutfitPieces != nil {
		if err := session.SetOutfitPieces(*req.OutfitPieces); err != nil {
			writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, req)
}

// HandleSetToggles replaces the active skill's boolean toggles.
func (h *CalculatorHandler) HandleSetToggles(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req calculator.Toggles
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := session.SetToggles(req); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// BuffsRequest replaces the account-wide buffs.
type BuffsRequest struct {
	General   *domain.GeneralBuffs   `json:"general,omitempty"`
	Gathering *domain.GatheringBuffs `json:"gathering,omitempty"`
}

// HandleSetBuffs replaces the general and gathering buffs.
func (h *CalculatorHandler) HandleSetBuffs(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req BuffsRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.General != nil {
		session.SetGeneralBuffs(*req.General)
	}
	if req.Gathering != nil {
		if err := session.SetGatheringBuffs(*req.Gathering); err != nil {
			writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, req)
}

// TargetRequest sets the projection target.
type TargetRequest struct {
	TargetLevel int      `json:"target_level" validate:"required,min=1,max=121"`
	CurrentExp  *float64 `json:"current_exp,omitempty"` // Manual override for the active skill
	Skill       string   `json:"skill,omitempty"`       // Override skill; defaults to active
}

// HandleSetTarget sets the target level and optional experience override.
func (h *CalculatorHandler) HandleSetTarget(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req TargetRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := getValidator().Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": formatValidationError(err)})
		return
	}

	if err := session.SetTargetLevel(req.TargetLevel); err != nil {
		writeError(w, r, err)
		return
	}
	if req.CurrentExp != nil && req.Skill != "" {
		if err := session.SetCurrentExp(domain.Skill(req.Skill), *req.CurrentExp); err != nil {
			writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, req)
}

// HandleGetProjection recomputes and returns the session's projection.
func (h *CalculatorHandler) HandleGetProjection(w http.ResponseWriter, r *http.Request) {
	outputs, err := h.service.Project(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	metrics.ProjectionsComputed.WithLabelValues(string(outputs.Skill)).Inc()
	writeJSON(w, http.StatusOK, outputs)
}

// ApplyProfileRequest loads a player's live experience into the session.
type ApplyProfileRequest struct {
	Username string `json:"username" validate:"required"`
}

// HandleApplyProfile fetches a player profile and replaces the session's
// experience values with the live ones. Clan upgrades are applied when the
// profile names a clan.
func (h *CalculatorHandler) HandleApplyProfile(profileSvc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.session(w, r)
		if !ok {
			return
		}

		var req ApplyProfileRequest
		if err := decodeBody(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": formatValidationError(err)})
			return
		}

		p, err := profileSvc.GetProfile(r.Context(), req.Username)
		if err != nil {
			writeError(w, r, err)
			return
		}
		session.ApplyProfile(p)

		if p.ClanName != "" {
			clan, err := profileSvc.GetClan(r.Context(), p.ClanName)
			if err == nil {
				session.ApplyClan(clan)
			} else {
				logger.FromContext(r.Context()).Warn("Clan lookup failed during profile apply",
					"clan", p.ClanName, "error", err)
			}
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// HandleGetSkills lists the skills with catalog entries.
func (h *CalculatorHandler) HandleGetSkills(w http.ResponseWriter, r *http.Request) {
	skills := h.service.Catalog().Skills()
	out := make([]map[string]string, 0, len(skills))
	for _, skill := range skills {
		out = append(out, map[string]string{
			"skill":        string(skill),
			"display_name": skill.DisplayName(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"skills": out})
}

// HandleGetItems lists a skill's catalog.
func (h *CalculatorHandler) HandleGetItems(w http.ResponseWriter, r *http.Request) {
	skill := domain.Skill(r.URL.Query().Get("skill"))
	if !skill.IsValid() {
		writeError(w, r, domain.ErrUnknownSkill)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"skill": skill,
		"items": h.service.Catalog().Items(skill),
	})
}
