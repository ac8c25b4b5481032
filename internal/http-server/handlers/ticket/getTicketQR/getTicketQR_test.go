package getTicketQR

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventTicketing/internal/lib/clock"
	"eventTicketing/internal/lib/logger/handlers/slogdiscard"
	"eventTicketing/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubGetter map[string]models.Ticket

func (s stubGetter) GetTicketByID(_ context.Context, id string) (models.Ticket, bool) {
	t, ok := s[id]
	return t, ok
}

func TestGetTicketQRHandler(t *testing.T) {
	t.Parallel()

	getter := stubGetter{"TKT-1": {ID: "TKT-1", FullName: "A", EventTitle: "Music Festival"}}
	clk := clock.NewFixed(time.Date(2025, 6, 5, 16, 0, 0, 0, time.UTC))

	router := chi.NewRouter()
	router.Get("/tickets/{id}/qr", New(slogdiscard.NewDiscardLogger(), getter, clk))

	testCases := []struct {
		name           string
		url            string
		expectedStatus int
		expectPNG      bool
	}{
		{name: "PNG", url: "/tickets/TKT-1/qr", expectedStatus: http.StatusOK, expectPNG: true},
		{name: "Custom size", url: "/tickets/TKT-1/qr?size=128", expectedStatus: http.StatusOK, expectPNG: true},
		{name: "Bad size", url: "/tickets/TKT-1/qr?size=abc", expectedStatus: http.StatusBadRequest},
		{name: "Too large", url: "/tickets/TKT-1/qr?size=5000", expectedStatus: http.StatusBadRequest},
		{name: "Unknown ticket", url: "/tickets/TKT-404/qr", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.url, nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectPNG {
				assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
				assert.Contains(t, rr.Header().Get("Content-Disposition"), "Ticket-TKT-1.png")
				assert.True(t, bytes.HasPrefix(rr.Body.Bytes(), []byte("\x89PNG")))
			}
		})
	}
}
