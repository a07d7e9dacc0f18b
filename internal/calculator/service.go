package calculator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mveiros/ironwood-companion/internal/boost"
	"github.com/mveiros/ironwood-companion/internal/catalog"
	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/logger"
	"github.com/mveiros/ironwood-companion/internal/projection"
)

// Session store sizing. Idle sessions expire; the calculator keeps no
// durable state.
const (
	DefaultSessionCapacity = 1024
	DefaultSessionTTL      = 2 * time.Hour
)

// Service owns calculator sessions and runs projections over them.
type Service interface {
	CreateSession(ctx context.Context) (*Session, error)
	Session(ctx context.Context, id string) (*Session, error)
	Project(ctx context.Context, sessionID string) (domain.ProjectionOutputs, error)
	ProjectStateless(ctx context.Context, req ProjectRequest) (domain.ProjectionOutputs, error)
	Tables() *boost.Tables
	Catalog() *catalog.Catalog
}

// ProjectRequest is a complete stateless projection input: the whole
// selection travels in the request instead of a session.
type ProjectRequest struct {
	Skill       domain.Skill               `json:"skill"`
	ItemName    string                     `json:"item_name"`
	Selection   domain.SkillBoostSelection `json:"selection"`
	General     domain.GeneralBuffs        `json:"general"`
	Gathering   domain.GatheringBuffs      `json:"gathering"`
	CurrentExp  float64                    `json:"current_exp"`
	TargetLevel int                        `json:"target_level"`
}

type service struct {
	catalog  *catalog.Catalog
	engine   *boost.Engine
	tables   *boost.Tables
	sessions *expirable.LRU[string, *Session]
}

// NewService creates the calculator service over a loaded catalog and
// validated rule tables.
func NewService(cat *catalog.Catalog, tables *boost.Tables) (Service, error) {
	engine, err := boost.NewEngine(tables)
	if err != nil {
		return nil, err
	}
	return &service{
		catalog:  cat,
		engine:   engine,
		tables:   tables,
		sessions: expirable.NewLRU[string, *Session](DefaultSessionCapacity, nil, DefaultSessionTTL),
	}, nil
}

func (s *service) CreateSession(ctx context.Context) (*Session, error) {
	session := newSession(uuid.NewString(), s.catalog)
	s.sessions.Add(session.ID(), session)
	logger.FromContext(ctx).Debug("Created calculator session", "session_id", session.ID())
	return session, nil
}

func (s *service) Session(_ context.Context, id string) (*Session, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Project recomputes the session's projection. Recomputation is synchronous
// and cheap: every lookup is bounded by the fixed-size rule tables.
func (s *service) Project(ctx context.Context, sessionID string) (domain.ProjectionOutputs, error) {
	session, err := s.Session(ctx, sessionID)
	if err != nil {
		return domain.ProjectionOutputs{}, err
	}

	snap, err := session.snapshot()
	if err != nil {
		return domain.ProjectionOutputs{}, err
	}

	item, err := s.catalog.Find(snap.skill, snap.itemName)
	if err != nil {
		return domain.ProjectionOutputs{}, err
	}

	boosts := s.engine.Compute(snap.skill, snap.selection, snap.general, snap.gathering, item)
	return projection.Project(item, boosts, snap.inputs), nil
}

// ProjectStateless computes a one-shot projection from a full request.
func (s *service) ProjectStateless(_ context.Context, req ProjectRequest) (domain.ProjectionOutputs, error) {
	if !req.Skill.IsValid() {
		return domain.ProjectionOutputs{}, domain.ErrUnknownSkill
	}
	if req.TargetLevel < domain.MinTargetLevel || req.TargetLevel > domain.TrueMasterLevel {
		return domain.ProjectionOutputs{}, domain.ErrInvalidLevel
	}
	if req.Selection.ScrollTotal() > domain.ScrollSlotCap {
		return domain.ProjectionOutputs{}, domain.ErrScrollCapExceeded
	}

	item, err := s.catalog.Find(req.Skill, req.ItemName)
	if err != nil {
		return domain.ProjectionOutputs{}, err
	}

	boosts := s.engine.Compute(req.Skill, req.Selection, req.General, req.Gathering, item)
	inputs := domain.ProjectionInputs{
		Skill:       req.Skill,
		CurrentExp:  req.CurrentExp,
		TargetLevel: req.TargetLevel,
	}
	return projection.Project(item, boosts, inputs), nil
}

func (s *service) Tables() *boost.Tables     { return s.tables }
func (s *service) Catalog() *catalog.Catalog { return s.catalog }
