package controllers

import (
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

func testCatalogEvent(id string, phase domain.Phase) *domain.CatalogEvent {
	return &domain.CatalogEvent{
		Event: &domain.Event{
			ID:        id,
			Title:     "Event " + id,
			EventDate: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
			Phase:     phase,
		},
		DescriptionHTML: "<p>hello</p>",
	}
}

func TestCatalogController_ListEvents(t *testing.T) {
	tests := []struct {
		name         string
		catalog      *domain.Catalog
		err          error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name: "success",
			catalog: &domain.Catalog{
				Upcoming: []*domain.CatalogEvent{testCatalogEvent("e1", domain.PhaseUpcoming)},
				Current:  []*domain.CatalogEvent{},
				Past:     []*domain.CatalogEvent{testCatalogEvent("e2", domain.PhasePast)},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "service error",
			err:          assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCatalogService{catalog: tt.catalog, err: tt.err}
			ctrl := NewCatalogController(testLogger(), fake, &fakeEventService{})

			req := httptest.NewRequest(http.MethodGet, "http://test/events", nil)
			rr := httptest.NewRecorder()

			ctrl.ListEvents(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
				dataBytes, err := json.Marshal(envelope.Data)
				require.NoError(t, err)
				var catalog domain.Catalog
				require.NoError(t, json.Unmarshal(dataBytes, &catalog))
				assert.Len(t, catalog.Upcoming, 1)
				assert.Len(t, catalog.Past, 1)
				assert.Equal(t, "<p>hello</p>", catalog.Upcoming[0].DescriptionHTML)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}

func TestCatalogController_Highlight(t *testing.T) {
	t.Run("with current event", func(t *testing.T) {
		fake := &fakeCatalogService{highlight: &domain.Highlight{
			Current:  testCatalogEvent("c1", domain.PhaseCurrent),
			Upcoming: []*domain.CatalogEvent{testCatalogEvent("u1", domain.PhaseUpcoming)},
		}}
		ctrl := NewCatalogController(testLogger(), fake, &fakeEventService{})

		req := httptest.NewRequest(http.MethodGet, "http://test/catalog/highlight", nil)
		rr := httptest.NewRecorder()

		ctrl.Highlight(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
		dataBytes, err := json.Marshal(envelope.Data)
		require.NoError(t, err)
		var highlight domain.Highlight
		require.NoError(t, json.Unmarshal(dataBytes, &highlight))
		require.NotNil(t, highlight.Current)
		assert.Equal(t, "c1", highlight.Current.ID)
		require.Len(t, highlight.Upcoming, 1)
	})

	t.Run("no current event serializes as null", func(t *testing.T) {
		fake := &fakeCatalogService{highlight: &domain.Highlight{Upcoming: []*domain.CatalogEvent{}}}
		ctrl := NewCatalogController(testLogger(), fake, &fakeEventService{})

		req := httptest.NewRequest(http.MethodGet, "http://test/catalog/highlight", nil)
		rr := httptest.NewRecorder()

		ctrl.Highlight(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var raw struct {
			Data struct {
				Current  json.RawMessage `json:"current"`
				Upcoming json.RawMessage `json:"upcoming"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&raw))
		assert.Equal(t, "null", string(raw.Data.Current))
	})
}

func TestCatalogController_GetEvent(t *testing.T) {
	tests := []struct {
		name         string
		eventID      string
		event        *domain.Event
		err          error
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success",
			eventID:    "e1",
			event:      testCatalogEvent("e1", domain.PhaseUpcoming).Event,
			wantStatus: http.StatusOK,
		},
		{
			name:         "not found",
			eventID:      "missing",
			err:          domain.ErrNotFound,
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeNotFound,
		},
		{
			name:         "service error",
			eventID:      "e1",
			err:          assert.AnError,
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeEventService{event: tt.event, getErr: tt.err}
			ctrl := NewCatalogController(testLogger(), &fakeCatalogService{}, fake)

			req := httptest.NewRequest(http.MethodGet, "http://test/events/"+tt.eventID, nil)
			req.SetPathValue("eventID", tt.eventID)
			rr := httptest.NewRecorder()

			ctrl.GetEvent(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantStatus == http.StatusOK {
				require.Nil(t, envelope.Error)
			} else {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
			}
		})
	}
}
