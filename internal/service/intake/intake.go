package intake

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"freightdesk/internal/entities"
	"freightdesk/internal/service/draft"
)

type Config struct {
	StrictGating bool
	IdleTTL      time.Duration
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

type entry struct {
	owner      string
	controller *draft.Controller
}

// Service keeps the order drafts of shipper sessions, one draft per session.
type Service struct {
	acceptor OrderAcceptor
	windows  DeliveryWindowFactory
	cfg      Config

	now   func() time.Time
	newID func() string

	mu      sync.Mutex
	drafts  map[string]*entry
	byOwner map[string]string
}

func New(acceptor OrderAcceptor, windows DeliveryWindowFactory, cfg Config, opts ...Option) *Service {
	s := &Service{
		acceptor: acceptor,
		windows:  windows,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
		drafts:   make(map[string]*entry),
		byOwner:  make(map[string]string),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create starts a new draft for the owner, dropping the previous one.
func (s *Service) Create(ownerID string) (*entities.DraftState, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrMissingOwner
	}

	controller := draft.New(
		s.newID(),
		s.acceptor,
		draft.WithStrictGating(s.cfg.StrictGating),
		draft.WithClock(s.now),
	)

	s.mu.Lock()
	if previous, ok := s.byOwner[ownerID]; ok {
		delete(s.drafts, previous)
	}
	s.drafts[controller.ID()] = &entry{owner: ownerID, controller: controller}
	s.byOwner[ownerID] = controller.ID()
	DraftsActive.Set(float64(len(s.drafts)))
	s.mu.Unlock()

	return s.snapshot(controller), nil
}

func (s *Service) Get(ownerID, draftID string) (*entities.DraftState, error) {
	controller, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(controller), nil
}

func (s *Service) UpdateField(ownerID, draftID string, field entities.DraftField, value string) (*entities.DraftState, error) {
	controller, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}

	if err := controller.UpdateField(field.String(), value); err != nil {
		return nil, fmt.Errorf("update field: %w", err)
	}
	return s.snapshot(controller), nil
}

func (s *Service) Advance(ownerID, draftID string) (*entities.DraftState, error) {
	controller, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}

	if err := controller.Advance(); err != nil {
		return nil, fmt.Errorf("advance: %w", err)
	}
	return s.snapshot(controller), nil
}

func (s *Service) Retreat(ownerID, draftID string) (*entities.DraftState, error) {
	controller, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}

	controller.Retreat()
	return s.snapshot(controller), nil
}

func (s *Service) Reset(ownerID, draftID string) (*entities.DraftState, error) {
	controller, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}

	if err := controller.Reset(); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	return s.snapshot(controller), nil
}

// Submit returns the draft state together with the error so callers can show
// the failure reason next to the kept draft.
func (s *Service) Submit(ctx context.Context, ownerID, draftID string) (*entities.DraftState, error) {
	controller, err := s.lookup(ownerID, draftID)
	if err != nil {
		return nil, err
	}

	_, err = controller.Submit(ctx)
	DraftSubmissionsTotal.WithLabelValues(submissionResult(err)).Inc()
	if err != nil {
		return s.snapshot(controller), fmt.Errorf("submit: %w", err)
	}
	return s.snapshot(controller), nil
}

// EvictIdle drops drafts untouched for longer than the idle TTL.
// Drafts with a submission in flight are kept.
func (s *Service) EvictIdle(ctx context.Context) (int64, error) {
	if s.cfg.IdleTTL <= 0 {
		return 0, nil
	}
	deadline := s.now().Add(-s.cfg.IdleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted int64
	for id, e := range s.drafts {
		if err := ctx.Err(); err != nil {
			return evicted, fmt.Errorf("evict idle drafts: %w", err)
		}

		state := e.controller.Snapshot()
		if state.Submission == entities.SubmissionSubmitting || !state.UpdatedAt.Before(deadline) {
			continue
		}

		delete(s.drafts, id)
		if s.byOwner[e.owner] == id {
			delete(s.byOwner, e.owner)
		}
		evicted++
	}

	DraftsActive.Set(float64(len(s.drafts)))
	DraftsEvictedTotal.Add(float64(evicted))
	return evicted, nil
}

func (s *Service) lookup(ownerID, draftID string) (*draft.Controller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[draftID]
	// another session's draft is reported as missing
	if !ok || e.owner != ownerID {
		return nil, fmt.Errorf("%s: %w", draftID, ErrDraftNotFound)
	}
	return e.controller, nil
}

func (s *Service) snapshot(controller *draft.Controller) *entities.DraftState {
	state := controller.Snapshot()
	if window, ok := s.windows.Estimate(state.Draft.Urgency, state.Draft.PickupDate); ok {
		state.EstimatedDelivery = window
	}
	return &state
}

func submissionResult(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, draft.ErrSubmitInProgress),
		errors.Is(err, draft.ErrAlreadySubmitted),
		errors.Is(err, draft.ErrNotFinalStep),
		errors.Is(err, draft.ErrInvalidStep):
		return "rejected"
	default:
		return "failed"
	}
}
