package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"teenevents/internal/delivery/http/helpers"
	"teenevents/internal/domain"
)

// AdminRegisterRequest is the request body for POST /admin/registrations.
// Unlike the public flow, the event is named in the body.
type AdminRegisterRequest struct {
	RegisterRequest
	EventID string `json:"event_id"`
}

// Validate implements Validator.
func (a AdminRegisterRequest) Validate() []string {
	errs := a.RegisterRequest.Validate()
	if strings.TrimSpace(a.EventID) == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// RegistrationListResponse is the response body for GET /admin/registrations.
type RegistrationListResponse struct {
	Registrations []*domain.RegistrationWithEvent `json:"registrations"`
	Pagination    helpers.PaginationMeta          `json:"pagination"`
}

// RegistrationListSuccessResponse is the success response envelope for GET /admin/registrations (200).
type RegistrationListSuccessResponse struct {
	Data  RegistrationListResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// AdminRegistrationsController handles registration management in the back
// office. All routes require an admin token.
type AdminRegistrationsController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewAdminRegistrationsController(logger *slog.Logger, svc domain.RegistrationService) *AdminRegistrationsController {
	return &AdminRegistrationsController{
		Logger:  logger,
		Service: svc,
	}
}

// ListRegistrations godoc
// @Summary List registrations
// @Description Returns a page of registrations ordered by creation time descending, each joined with its event's title and date. Registrations whose event was deleted are included with an empty title.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.RegistrationListSuccessResponse "data contains registrations and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/registrations [get]
func (c *AdminRegistrationsController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	regs, total, err := c.Service.ListWithEvents(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationListResponse{
		Registrations: regs,
		Pagination:    helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// CreateRegistration godoc
// @Summary Create a registration on behalf of a visitor
// @Description Creates a registration for the event named in the body. The event must exist. A confirmation email is sent when an email address is supplied.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AdminRegisterRequest true "Registration data with event_id"
// @Success 201 {object} controllers.RegisterSuccessResponse "data contains the created registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/registrations [post]
func (c *AdminRegistrationsController) CreateRegistration(w http.ResponseWriter, r *http.Request) {
	var req AdminRegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), strings.TrimSpace(req.EventID), req.form())
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
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// DeleteRegistration godoc
// @Summary Delete a registration
// @Description Deletes the registration. The event it referenced is not touched.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param registrationID path string true "Registration ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted registration ID"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /admin/registrations/{registrationID} [delete]
func (c *AdminRegistrationsController) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	registrationID := r.PathValue("registrationID")
	if registrationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing registrationID")
		return
	}
	if err := c.Service.Delete(r.Context(), registrationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "registration not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": registrationID})
}
