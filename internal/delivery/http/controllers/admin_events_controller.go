package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"teenevents/internal/delivery/http/helpers"
	"teenevents/internal/domain"
)

// eventDateLayout is the wire format for event dates in admin requests.
const eventDateLayout = "2006-01-02"

// EventRequest is the request body for POST /admin/events and
// PUT /admin/events/{eventID}. Updates replace the whole form; omitted
// fields are cleared.
type EventRequest struct {
	Title       string `json:"title"`
	Speaker     string `json:"speaker"`
	Position    string `json:"position"`
	District    string `json:"district"`
	EventDate   string `json:"event_date"` // YYYY-MM-DD
	EventTime   string `json:"event_time"`
	Duration    string `json:"duration"`
	Theme       string `json:"theme"`
	BibleTexts  string `json:"bible_texts"`
	Description string `json:"description"`
	Phase       string `json:"phase"` // optional: "upcoming", "current" or "past" (defaults to "upcoming")
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(e.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(e.EventDate) == "" {
		errs = append(errs, "event_date is required")
	} else if _, err := time.Parse(eventDateLayout, e.EventDate); err != nil {
		errs = append(errs, "event_date must be formatted as YYYY-MM-DD")
	}
	if phase := domain.Phase(strings.TrimSpace(e.Phase)); e.Phase != "" && !phase.Valid() {
		errs = append(errs, "phase must be \"upcoming\", \"current\" or \"past\"")
	}
	return errs
}

func (e EventRequest) form() *domain.EventForm {
	date, _ := time.Parse(eventDateLayout, e.EventDate)
	return &domain.EventForm{
		Title:       e.Title,
		Speaker:     e.Speaker,
		Position:    e.Position,
		District:    e.District,
		EventDate:   date,
		EventTime:   e.EventTime,
		Duration:    e.Duration,
		Theme:       e.Theme,
		BibleTexts:  e.BibleTexts,
		Description: e.Description,
		Phase:       domain.Phase(strings.TrimSpace(e.Phase)),
	}
}

// EventSuccessResponse is the success response envelope for single-event admin operations.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for GET /admin/events (200).
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AdminEventsController handles event management in the back office.
// All routes require an admin token.
type AdminEventsController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewAdminEventsController(logger *slog.Logger, svc domain.EventService) *AdminEventsController {
	return &AdminEventsController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events for management
// @Description Returns every event ordered by event date descending, regardless of phase.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [get]
func (c *AdminEventsController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a new event. The phase defaults to "upcoming" when omitted; id and timestamps are server-generated.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events [post]
func (c *AdminEventsController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.form())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Replaces the event's editable fields with the request body. This is a full replace: omitted fields are cleared.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param body body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [put]
func (c *AdminEventsController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Update(r.Context(), eventID, req.form())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event. Existing registrations for the event are kept and remain visible in the registration listing.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted event ID"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/events/{eventID} [delete]
func (c *AdminEventsController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.Delete(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": eventID})
}
