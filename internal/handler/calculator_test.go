package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mveiros/ironwood-companion/internal/boost"
	"github.com/mveiros/ironwood-companion/internal/calculator"
	"github.com/mveiros/ironwood-companion/internal/catalog"
	"github.com/mveiros/ironwood-companion/internal/domain"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(map[domain.Skill][]domain.SkillItem{
		domain.SkillWoodcutting: {
			{Name: "Pine Log", Level: 1, BaseExp: 10, BaseSeconds: 5, BaseGoldValue: 2},
		},
		domain.SkillCrafting: {
			{Name: "Arcane Powder", Level: 50, BaseExp: 150, BaseSeconds: 6, Category: domain.CategoryRefinement},
		},
	})
}

func newTestRouter(t *testing.T) (chi.Router, calculator.Service) {
	t.Helper()

	svc, err := calculator.NewService(testCatalog(), boost.DefaultTables())
	require.NoError(t, err)

	h := NewCalculatorHandler(svc)
	r := chi.NewRouter()
	r.Post("/project", h.HandleProject)
	r.Post("/sessions", h.HandleCreateSession)
	r.Put("/sessions/{sessionID}/skill", h.HandleSelectSkill)
	r.Put("/sessions/{sessionID}/item", h.HandleSelectItem)
	r.Put("/sessions/{sessionID}/scrolls", h.HandleSetScrolls)
	r.Put("/sessions/{sessionID}/gear", h.HandleSetGear)
	r.Get("/sessions/{sessionID}/projection", h.HandleGetProjection)
	r.Get("/skills", h.HandleGetSkills)
	r.Get("/items", h.HandleGetItems)
	return r, svc
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleProject(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("valid stateless projection", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/project", map[string]interface{}{
			"skill":        "woodcutting",
			"item_name":    "Pine Log",
			"target_level": 2,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var out domain.ProjectionOutputs
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, "Pine Log", out.Item)
		assert.Equal(t, int64(35), out.ActionsNeeded)
	})

	t.Run("unknown skill fails validation", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/project", map[string]interface{}{
			"skill":        "alchemy",
			"item_name":    "Pine Log",
			"target_level": 2,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "skill")
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/project", map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown item is a 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/project", map[string]interface{}{
			"skill":        "woodcutting",
			"item_name":    "Missing Log",
			"target_level": 2,
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSessionFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	sessionID := created["session_id"]
	require.NotEmpty(t, sessionID)

	base := fmt.Sprintf("/sessions/%s", sessionID)

	t.Run("projection before skill selection is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, base+"/projection", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("select skill and item, then project", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, base+"/skill", map[string]string{"skill": "woodcutting"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPut, base+"/item", map[string]string{"name": "Pine Log"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodPut, base+"/gear", map[string]interface{}{"tool": "dragon"})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, base+"/projection", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var out domain.ProjectionOutputs
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, domain.FigureOf(3.75), out.BoostedTime)
	})

	t.Run("scroll cap violations are rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, base+"/scrolls", map[string]int{"t1": 3, "t2": 2, "t3": 0})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.ErrScrollCapExceeded.Error())
	})

	t.Run("unknown session is a 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/sessions/nope/skill", map[string]string{"skill": "woodcutting"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleGetSkills(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/skills", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Skills []map[string]string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Skills, 2)
	assert.Equal(t, "woodcutting", out.Skills[0]["skill"])
	assert.Equal(t, "Woodcutting", out.Skills[0]["display_name"])
}

func TestHandleGetItems(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("lists a skill's catalog", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/items?skill=crafting", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Arcane Powder")
	})

	t.Run("unknown skill is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/items?skill=alchemy", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
