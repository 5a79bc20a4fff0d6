// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/danielhkuo/heart-risk/models"
)

var (
	ErrIncomplete     = errors.New("form is incomplete")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrUnknownField   = errors.New("unknown field")
)

// State is the controller's position in the submission lifecycle
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Predictor sends an encoded row to the prediction service
type Predictor interface {
	Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error)
}

// PredictorFunc adapts a function to Predictor
type PredictorFunc func(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error)

func (f PredictorFunc) Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResult, error) {
	return f(ctx, req)
}

// Controller owns the answers of one questionnaire session and at most one
// outstanding submission.
type Controller struct {
	predictor Predictor

	mu     sync.Mutex
	form   models.FormState
	state  State
	result *models.PredictionResult
}

func NewController(p Predictor) *Controller {
	return &Controller{predictor: p}
}

// UpdateField replaces one answer. A finished submission's result is
// discarded and the controller returns to idle; an in-flight submission
// is unaffected since it already holds its own copy of the answers.
func (c *Controller) UpdateField(name models.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.form.Set(name, value) {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if c.state != StateSubmitting {
		c.state = StateIdle
		c.result = nil
	}
	return nil
}

// Load replaces every answer at once
func (c *Controller) Load(form models.FormState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
	if c.state != StateSubmitting {
		c.state = StateIdle
		c.result = nil
	}
}

// Reset clears the answers and any finished result
func (c *Controller) Reset() {
	c.Load(models.FormState{})
}

func (c *Controller) Form() models.FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submittable reports whether Submit would be accepted right now
func (c *Controller) Submittable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != StateSubmitting && IsSubmittable(c.form)
}

// Result returns the outcome of the last finished submission
func (c *Controller) Result() (models.PredictionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return models.PredictionResult{}, false
	}
	return *c.result, true
}

// View renders the last finished submission, if any
func (c *Controller) View() (models.RiskView, bool) {
	r, ok := c.Result()
	if !ok {
		return models.RiskView{}, false
	}
	return RenderResult(r), true
}

// Submit encodes the answers and sends them to the prediction service.
//
// It returns an error only when the submission is refused: the form is
// incomplete (ErrIncomplete), an answer is out of its domain
// (*ValidationError), or another submission is still pending
// (ErrSubmitInFlight). Transport failures never surface as errors; they
// become a result carrying models.GenericErrorMessage.
func (c *Controller) Submit(ctx context.Context) (models.PredictionResult, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return models.PredictionResult{}, ErrSubmitInFlight
	}
	if !IsSubmittable(c.form) {
		missing := joinFields(Missing(c.form))
		c.mu.Unlock()
		return models.PredictionResult{}, fmt.Errorf("%w: missing %s", ErrIncomplete, missing)
	}
	req, err := EncodeRequest(c.form)
	if err != nil {
		c.state = StateIdle
		c.result = nil
		c.mu.Unlock()
		return models.PredictionResult{}, err
	}
	c.state = StateSubmitting
	c.result = nil
	c.mu.Unlock()

	result, err := c.predictor.Predict(ctx, req)
	if err != nil {
		slog.Warn("prediction failed", "error", err)
		result = models.PredictionResult{Error: models.GenericErrorMessage}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = &result
	if result.Failed() {
		c.state = StateFailure
	} else {
		c.state = StateSuccess
	}
	return result, nil
}

func joinFields(fields []models.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
