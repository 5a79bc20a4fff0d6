// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/heart-risk/assessment"
	"github.com/danielhkuo/heart-risk/middleware"
	"github.com/danielhkuo/heart-risk/models"
	"github.com/danielhkuo/heart-risk/observability"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Messages shown when a submission is refused before reaching the service
const (
	msgIncomplete = "Please answer every question before requesting an assessment."
	msgInvalid    = "Some answers are not valid. Please correct the highlighted fields."
)

type AssessmentHandler struct {
	predictor assessment.Predictor
	metrics   *observability.Metrics
}

func NewAssessmentHandler(p assessment.Predictor, metrics *observability.Metrics) *AssessmentHandler {
	return &AssessmentHandler{predictor: p, metrics: metrics}
}

// fieldView is one form control with the visitor's current answer
type fieldView struct {
	assessment.FieldSpec
	Value   string
	Problem string
}

type pageData struct {
	Fields []fieldView
	Notice string
	View   *models.RiskView
}

func newPage(form models.FormState) pageData {
	fields := make([]fieldView, len(assessment.Fields))
	for i, spec := range assessment.Fields {
		value, _ := form.Get(spec.Name)
		fields[i] = fieldView{FieldSpec: spec, Value: value}
	}
	return pageData{Fields: fields}
}

func (p *pageData) markProblems(problems []assessment.Problem) {
	for _, problem := range problems {
		for i := range p.Fields {
			if p.Fields[i].Name == problem.Field {
				p.Fields[i].Problem = problem.Reason
			}
		}
	}
}

// assess runs one submission through a fresh controller and records its outcome.
// Each request owns its controller, so the browser page guards against double
// submits itself. Answers are never logged.
func (h *AssessmentHandler) assess(ctx context.Context, channel string, form models.FormState) (models.RiskView, error) {
	c := assessment.NewController(h.predictor)
	c.Load(form)

	result, err := c.Submit(ctx)
	if err != nil {
		var verr *assessment.ValidationError
		switch {
		case errors.Is(err, assessment.ErrIncomplete):
			h.metrics.ObserveSubmission(channel, observability.OutcomeIncomplete)
		case errors.As(err, &verr):
			h.metrics.ObserveSubmission(channel, observability.OutcomeInvalid)
		}
		return models.RiskView{}, err
	}

	view := assessment.RenderResult(result)
	switch {
	case view.Failed:
		h.metrics.ObserveSubmission(channel, observability.OutcomeError)
	case view.Low():
		h.metrics.ObserveSubmission(channel, observability.OutcomeLow)
	default:
		h.metrics.ObserveSubmission(channel, observability.OutcomeHigh)
	}

	slog.Info("assessment completed",
		"request_id", middleware.RequestID(ctx),
		"channel", channel,
		"risk", view.Risk,
		"failed", view.Failed,
	)
	return view, nil
}

// Index handles GET /
func (h *AssessmentHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.renderPage(w, http.StatusOK, newPage(models.FormState{}))
}

// AssessForm handles POST /assess from the HTML form and re-renders the
// page with the answers kept and the result panel filled in.
func (h *AssessmentHandler) AssessForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	var form models.FormState
	for _, spec := range assessment.Fields {
		form.Set(spec.Name, r.PostForm.Get(string(spec.Name)))
	}

	page := newPage(form)
	view, err := h.assess(r.Context(), observability.ChannelForm, form)

	var verr *assessment.ValidationError
	switch {
	case err == nil:
		page.View = &view
		h.renderPage(w, http.StatusOK, page)
	case errors.Is(err, assessment.ErrIncomplete):
		page.Notice = msgIncomplete
		missing := assessment.Missing(form)
		problems := make([]assessment.Problem, len(missing))
		for i, f := range missing {
			problems[i] = assessment.Problem{Field: f, Reason: "required"}
		}
		page.markProblems(problems)
		h.renderPage(w, http.StatusBadRequest, page)
	case errors.As(err, &verr):
		page.Notice = msgInvalid
		page.markProblems(verr.Problems)
		h.renderPage(w, http.StatusUnprocessableEntity, page)
	default:
		slog.Error("assessment refused", "error", err)
		page.View = &models.RiskView{Risk: models.RiskHigh, Title: "High Risk", Result: models.GenericErrorMessage, Failed: true}
		h.renderPage(w, http.StatusOK, page)
	}
}

// AssessJSON handles POST /api/heart
func (h *AssessmentHandler) AssessJSON(w http.ResponseWriter, r *http.Request) {
	var form models.FormState
	if err := middleware.ParseJSONBody(w, r, &form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	view, err := h.assess(r.Context(), observability.ChannelAPI, form)

	var verr *assessment.ValidationError
	switch {
	case err == nil:
		middleware.JSONResponse(w, http.StatusOK, view)
	case errors.Is(err, assessment.ErrIncomplete):
		missing := assessment.Missing(form)
		fields := make([]string, len(missing))
		for i, f := range missing {
			fields[i] = string(f)
		}
		middleware.FieldErrorResponse(w, http.StatusBadRequest, msgIncomplete, fields)
	case errors.As(err, &verr):
		middleware.FieldErrorResponse(w, http.StatusUnprocessableEntity, verr.Error(), verr.Fields())
	default:
		slog.Error("assessment refused", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.GenericErrorMessage)
	}
}

// ListFields handles GET /api/fields
func (h *AssessmentHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, assessment.Fields)
}

func (h *AssessmentHandler) renderPage(w http.ResponseWriter, status int, page pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, models.GenericErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
