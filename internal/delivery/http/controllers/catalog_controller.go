package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"teenevents/internal/delivery/http/helpers"
	"teenevents/internal/domain"
)

// CatalogController serves the public, unauthenticated event listing.
type CatalogController struct {
	Logger  *slog.Logger
	Catalog domain.CatalogService
	Events  domain.EventService
}

func NewCatalogController(logger *slog.Logger, catalog domain.CatalogService, events domain.EventService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Catalog: catalog,
		Events:  events,
	}
}

// CatalogSuccessResponse is the success response envelope for GET /events (200).
type CatalogSuccessResponse struct {
	Data  *domain.Catalog   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEvents godoc
// @Summary List all events grouped by phase
// @Description Returns every event partitioned into upcoming, current, and past buckets. Descriptions are rendered from markdown to HTML. Public, no authentication.
// @Tags catalog
// @Produce json
// @Success 200 {object} controllers.CatalogSuccessResponse "data contains the three buckets"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *CatalogController) ListEvents(w http.ResponseWriter, r *http.Request) {
	catalog, err := c.Catalog.Catalog(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, catalog)
}

// HighlightSuccessResponse is the success response envelope for GET /catalog/highlight (200).
type HighlightSuccessResponse struct {
	Data  *domain.Highlight `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Highlight godoc
// @Summary Home page highlight
// @Description Returns the current event (null when none) and up to three soonest upcoming events. Public, no authentication.
// @Tags catalog
// @Produce json
// @Success 200 {object} controllers.HighlightSuccessResponse "data contains current and upcoming"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /catalog/highlight [get]
func (c *CatalogController) Highlight(w http.ResponseWriter, r *http.Request) {
	highlight, err := c.Catalog.Highlight(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, highlight)
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEvent godoc
// @Summary Get a single event
// @Description Returns one event by ID for the public detail page. Public, no authentication.
// @Tags catalog
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *CatalogController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Events.GetByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
