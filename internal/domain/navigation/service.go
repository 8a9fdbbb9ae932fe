package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aurumimpex/procurement/internal/repository"
)

// Service keeps one navigation trail per client session.
type Service struct {
	repo   Repository
	logger *slog.Logger

	// mu serialises load-mutate-save cycles.
	mu sync.Mutex
}

// NewService creates a new navigation service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// PushRequest describes a section change.
type PushRequest struct {
	View       string
	SubSection string
}

// Trail returns the session's trail without changing it.
func (s *Service) Trail(ctx context.Context, tenantID, sessionID string) (*TrailView, error) {
	return s.apply(ctx, tenantID, sessionID, "trail", func(*Controller) bool { return false })
}

// Push records a section change.
func (s *Service) Push(ctx context.Context, tenantID, sessionID string, req PushRequest) (*TrailView, error) {
	if strings.TrimSpace(req.View) == "" {
		return nil, ErrInvalidInput
	}
	return s.apply(ctx, tenantID, sessionID, "push", func(c *Controller) bool {
		return c.Push(req.View, req.SubSection)
	})
}

// Back returns to the previous location.
func (s *Service) Back(ctx context.Context, tenantID, sessionID string) (*TrailView, error) {
	return s.apply(ctx, tenantID, sessionID, "back", func(c *Controller) bool {
		return c.GoBack()
	})
}

// Jump rewinds the trail to a breadcrumb.
func (s *Service) Jump(ctx context.Context, tenantID, sessionID string, target Entry) (*TrailView, error) {
	if strings.TrimSpace(target.View) == "" {
		return nil, ErrInvalidInput
	}
	return s.apply(ctx, tenantID, sessionID, "jump", func(c *Controller) bool {
		c.JumpToBreadcrumb(target)
		return true
	})
}

// Reset starts the trail over at the dashboard.
func (s *Service) Reset(ctx context.Context, tenantID, sessionID string) (*TrailView, error) {
	return s.apply(ctx, tenantID, sessionID, "reset", func(c *Controller) bool {
		c.Reset()
		return true
	})
}

func (s *Service) apply(ctx context.Context, tenantID, sessionID, op string, fn func(*Controller) bool) (*TrailView, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trail, err := s.load(ctx, tenantID, sessionID)
	if err != nil {
		return nil, err
	}

	state := &ViewState{CurrentView: trail.CurrentView, MasterSection: trail.MasterSection}
	ctrl := Restore(trail.Entries, state)
	changed := fn(ctrl)

	if op != "trail" {
		trail.Entries = ctrl.Entries()
		trail.CurrentView = state.CurrentView
		trail.MasterSection = state.MasterSection
		trail.UpdatedAt = time.Now()
		if err := s.repo.Save(ctx, tenantID, trail); err != nil {
			return nil, fmt.Errorf("saving trail: %w", err)
		}
		if s.logger != nil {
			s.logger.Debug("navigation", "op", op, "session_id", sessionID, "changed", changed, "length", len(trail.Entries), "current", state.CurrentView)
		}
	}

	return &TrailView{
		SessionID:     sessionID,
		Entries:       ctrl.Entries(),
		Breadcrumbs:   ctrl.Breadcrumbs(),
		CurrentView:   state.CurrentView,
		MasterSection: state.MasterSection,
		CanGoBack:     ctrl.CanGoBack(),
		ShowReset:     ctrl.ShowReset(),
		Changed:       changed,
	}, nil
}

func (s *Service) load(ctx context.Context, tenantID, sessionID string) (*Trail, error) {
	trail, err := s.repo.Get(ctx, tenantID, sessionID)
	if err == nil {
		return trail, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading trail: %w", err)
	}

	state := NewViewState()
	return &Trail{
		TenantID:      tenantID,
		SessionID:     sessionID,
		Entries:       []Entry{DefaultPolicy().Landing()},
		CurrentView:   state.CurrentView,
		MasterSection: state.MasterSection,
	}, nil
}
