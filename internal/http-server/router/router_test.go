package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventTicketing/internal/auth"
	"eventTicketing/internal/catalog"
	"eventTicketing/internal/http-server/handlers/admin/login"
	"eventTicketing/internal/http-server/handlers/ticket/createTicket"
	"eventTicketing/internal/http-server/handlers/ticket/getCheckInStats"
	"eventTicketing/internal/lib/logger/handlers/slogdiscard"
	"eventTicketing/internal/storage/memory"
	"eventTicketing/internal/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := slogdiscard.NewDiscardLogger()
	svc := tickets.NewService(log, tickets.NewStore(log, memory.New(), "tickets"))

	srv := httptest.NewServer(New(log, Deps{
		Tickets:  svc,
		Catalog:  catalog.New(),
		Sessions: auth.NewSessions(),
	}))
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestBookScanAndCheckInFlow(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/events/event-1/tickets", "", map[string]any{
		"fullName": "A",
		"email":    "a@x.com",
		"phone":    "1",
		"quantity": 2,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var booked createTicket.TicketResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&booked))
	require.NotNil(t, booked.Ticket)
	assert.Equal(t, "Tech Conference 2025", booked.Ticket.EventTitle)
	assert.Equal(t, 2, booked.Ticket.Quantity)

	resp = do(t, http.MethodGet, srv.URL+"/tickets/"+booked.Ticket.ID+"/qr", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp = do(t, http.MethodGet, srv.URL+"/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/admin/login", "", map[string]string{"username": "admin", "password": "x"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loggedIn login.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loggedIn))
	token := loggedIn.Token
	require.NotEmpty(t, token)

	qrText, err := json.Marshal(map[string]string{"ticket": booked.Ticket.ID})
	require.NoError(t, err)

	resp = do(t, http.MethodPost, srv.URL+"/admin/scan", token, map[string]string{"data": string(qrText)})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/admin/tickets/"+booked.Ticket.ID+"/checkin", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/admin/tickets/"+booked.Ticket.ID+"/checkin", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/admin/stats", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats getCheckInStats.StatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.Stats.TotalTickets)
	assert.Equal(t, 1, stats.Stats.CheckedIn)
	assert.Equal(t, 100, stats.Stats.PercentageCheckedIn)

	resp = do(t, http.MethodPost, srv.URL+"/admin/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/admin/stats", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublicRoutes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/events", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/events/event-404", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/tickets/TKT-404", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/metrics", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
