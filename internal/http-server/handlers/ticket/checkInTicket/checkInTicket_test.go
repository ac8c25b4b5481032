package checkInTicket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventTicketing/internal/http-server/handlers/ticket/checkInTicket/mocks"
	"eventTicketing/internal/lib/logger/handlers/slogdiscard"
	"eventTicketing/internal/models"
	"eventTicketing/internal/tickets"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckInTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	checkedAt := time.Date(2025, 4, 15, 9, 5, 0, 0, time.UTC)
	fresh := models.Ticket{ID: "TKT-1", FullName: "A"}
	used := models.Ticket{ID: "TKT-1", FullName: "A", CheckedIn: true, CheckInTime: &checkedAt}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.TicketCheckInner)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.TicketCheckInner) {
				m.On("ValidateTicket", mock.Anything, "TKT-1").
					Return(models.Validation{Valid: true, Status: models.ValidationValid, Ticket: &fresh})
				m.On("CheckInTicket", mock.Anything, "TKT-1").Return(used, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp CheckInResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.NotNil(t, resp.Ticket)
				assert.True(t, resp.Ticket.CheckedIn)
				require.NotNil(t, resp.Ticket.CheckInTime)
				assert.True(t, checkedAt.Equal(*resp.Ticket.CheckInTime))
			},
		},
		{
			name: "Not found",
			mockSetup: func(m *mocks.TicketCheckInner) {
				m.On("ValidateTicket", mock.Anything, "TKT-1").
					Return(models.Validation{Status: models.ValidationNotFound, Message: tickets.MessageNotFound})
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"ticket not found"}`,
		},
		{
			name: "Already used is not checked in again",
			mockSetup: func(m *mocks.TicketCheckInner) {
				m.On("ValidateTicket", mock.Anything, "TKT-1").
					Return(models.Validation{Status: models.ValidationAlreadyUsed, Message: tickets.MessageAlreadyUsed, Ticket: &used})
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body []byte) {
				var resp CheckInResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "ticket already used", resp.Error)
				require.NotNil(t, resp.Ticket)
				assert.True(t, resp.Ticket.CheckedIn)
			},
		},
		{
			name: "Removed between validate and check-in",
			mockSetup: func(m *mocks.TicketCheckInner) {
				m.On("ValidateTicket", mock.Anything, "TKT-1").
					Return(models.Validation{Valid: true, Status: models.ValidationValid, Ticket: &fresh})
				m.On("CheckInTicket", mock.Anything, "TKT-1").
					Return(models.Ticket{}, fmt.Errorf("op: %w", tickets.ErrTicketNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"ticket not found"}`,
		},
		{
			name: "Store failure",
			mockSetup: func(m *mocks.TicketCheckInner) {
				m.On("ValidateTicket", mock.Anything, "TKT-1").
					Return(models.Validation{Valid: true, Status: models.ValidationValid, Ticket: &fresh})
				m.On("CheckInTicket", mock.Anything, "TKT-1").
					Return(models.Ticket{}, errors.Join(tickets.ErrCheckInFailed, errors.New("disk full")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to check in ticket"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSvc := mocks.NewTicketCheckInner(t)
			tc.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Post("/admin/tickets/{id}/checkin", New(logger, mockSvc))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/admin/tickets/TKT-1/checkin", nil))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.Bytes())
			}
		})
	}
}
