package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teenevents/internal/delivery/http/helpers"
	"teenevents/internal/domain"
)

func registerBody() map[string]any {
	return map[string]any{
		"full_name":      "Chika Obi",
		"email":          "chika@example.com",
		"address":        "12 Church Road",
		"phone_number":   "08030000000",
		"class_vocation": "SS2",
		"church":         "Grace Chapel",
	}
}

func TestRegistrationController_Register(t *testing.T) {
	createdReg := &domain.Registration{
		ID:        "r1",
		FullName:  "Chika Obi",
		EventID:   "e1",
		CreatedAt: time.Now(),
	}

	tests := []struct {
		name         string
		eventID      string
		body         map[string]any
		regErr       error
		wantStatus   int
		wantBodyCode string
		wantEventID  string
	}{
		{
			name:        "success",
			eventID:     "e1",
			body:        registerBody(),
			wantStatus:  http.StatusCreated,
			wantEventID: "e1",
		},
		{
			name:    "missing required fields",
			eventID: "e1",
			body: map[string]any{
				"full_name": "Chika Obi",
			},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:    "malformed email",
			eventID: "e1",
			body: func() map[string]any {
				b := registerBody()
				b["email"] = "not-an-email"
				return b
			}(),
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:    "unknown body field",
			eventID: "e1",
			body: func() map[string]any {
				b := registerBody()
				b["event_id"] = "other-event"
				return b
			}(),
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "unknown event",
			eventID:      "missing",
			body:         registerBody(),
			regErr:       domain.ErrNotFound,
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeNotFound,
		},
		{
			name:         "service error",
			eventID:      "e1",
			body:         registerBody(),
			regErr:       assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrationService{reg: createdReg, regErr: tt.regErr}
			ctrl := NewRegistrationController(testLogger(), fake)

			bodyBytes, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "http://test/events/"+tt.eventID+"/registrations", bytes.NewReader(bodyBytes))
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusCreated {
				require.Nil(t, envelope.Error)
				assert.Equal(t, tt.wantEventID, fake.lastEventID)
				require.NotNil(t, fake.lastForm)
				assert.Equal(t, "Chika Obi", fake.lastForm.FullName)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}
