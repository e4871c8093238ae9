package draft

import (
	"context"
	"fmt"
	"sync"
	"time"

	"freightdesk/internal/entities"
)

type Option func(c *Controller)

// WithStrictGating makes Advance refuse to leave a step that is not valid.
func WithStrictGating(strict bool) Option {
	return func(c *Controller) {
		c.strictGating = strict
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// Controller owns one order draft: the current step, the fields entered so far
// and the state of its submission.
type Controller struct {
	id       string
	acceptor Acceptor

	strictGating bool
	now          func() time.Time

	mu            sync.Mutex
	step          entities.Step
	draft         entities.OrderDraft
	submission    entities.SubmissionState
	acceptance    *entities.OrderAcceptance
	failureReason string
	updatedAt     time.Time
}

func New(id string, acceptor Acceptor, opts ...Option) *Controller {
	c := &Controller{
		id:       id,
		acceptor: acceptor,
		now:      func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(c)
	}

	c.reset()
	return c
}

func (c *Controller) ID() string {
	return c.id
}

func (c *Controller) UpdateField(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submission == entities.SubmissionSubmitting {
		return ErrSubmitInProgress
	}

	if err := setField(&c.draft, entities.DraftField(field), value); err != nil {
		return err
	}

	c.touch()
	return nil
}

func (c *Controller) IsStepValid(step entities.Step) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return isStepValid(&c.draft, step)
}

func (c *Controller) Advance() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step >= entities.LastStep {
		return nil
	}

	if c.strictGating && !isStepValid(&c.draft, c.step) {
		return fmt.Errorf("step %d: %w", c.step, ErrInvalidStep)
	}

	c.step++
	c.touch()
	return nil
}

func (c *Controller) Retreat() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.step <= entities.FirstStep {
		return
	}

	c.step--
	c.touch()
}

// Submit sends the draft to the acceptor. Only one submission can be in flight;
// on failure the draft is kept as is and Submit may be called again.
func (c *Controller) Submit(ctx context.Context) (*entities.OrderAcceptance, error) {
	payload, err := c.beginSubmit()
	if err != nil {
		return nil, err
	}

	acceptance, err := c.acceptor.Accept(ctx, c.id, payload)
	switch {
	case err != nil:
	case ctx.Err() != nil:
		// the caller went away, a late acceptance is not applied
		err = ctx.Err()
	case acceptance == nil:
		err = ErrEmptyAcceptance
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.touch()
	if err != nil {
		c.submission = entities.SubmissionFailed
		c.failureReason = err.Error()
		return nil, fmt.Errorf("accept order: %w", err)
	}

	c.submission = entities.SubmissionSubmitted
	c.acceptance = acceptance
	c.failureReason = ""

	accepted := *acceptance
	return &accepted, nil
}

func (c *Controller) beginSubmit() (entities.OrderDraft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.submission {
	case entities.SubmissionSubmitting:
		return entities.OrderDraft{}, ErrSubmitInProgress
	case entities.SubmissionSubmitted:
		return entities.OrderDraft{}, ErrAlreadySubmitted
	case entities.SubmissionIdle, entities.SubmissionFailed:
	}

	if c.step != entities.LastStep {
		return entities.OrderDraft{}, ErrNotFinalStep
	}
	if !isStepValid(&c.draft, entities.LastStep) {
		return entities.OrderDraft{}, fmt.Errorf("step %d: %w", entities.LastStep, ErrInvalidStep)
	}

	c.submission = entities.SubmissionSubmitting
	c.failureReason = ""
	c.touch()

	return c.draft, nil
}

// Reset starts over with an empty draft on the first step.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.submission == entities.SubmissionSubmitting {
		return ErrSubmitInProgress
	}

	c.reset()
	return nil
}

func (c *Controller) Snapshot() entities.DraftState {
	c.mu.Lock()
	defer c.mu.Unlock()

	stepValid := make(map[entities.Step]bool, len(entities.Steps))
	for _, s := range entities.Steps {
		stepValid[s.ID] = isStepValid(&c.draft, s.ID)
	}

	var acceptance *entities.OrderAcceptance
	if c.acceptance != nil {
		a := *c.acceptance
		acceptance = &a
	}

	return entities.DraftState{
		ID:            c.id,
		Step:          c.step,
		Draft:         c.draft,
		StepValid:     stepValid,
		Submission:    c.submission,
		Acceptance:    acceptance,
		FailureReason: c.failureReason,
		UpdatedAt:     c.updatedAt,
	}
}

// LastActivity is used by the registry to find idle drafts.
func (c *Controller) LastActivity() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updatedAt
}

func (c *Controller) reset() {
	c.step = entities.FirstStep
	c.draft = entities.OrderDraft{}
	c.submission = entities.SubmissionIdle
	c.acceptance = nil
	c.failureReason = ""
	c.touch()
}

func (c *Controller) touch() {
	c.updatedAt = c.now()
}
