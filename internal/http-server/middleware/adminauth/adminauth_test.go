package adminauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventTicketing/internal/auth"
	"eventTicketing/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuth(t *testing.T) {
	t.Parallel()

	sessions := auth.NewSessions()
	token, err := sessions.Login("admin", "pw")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(UserFromContext(r.Context())))
	})
	handler := New(slogdiscard.NewDiscardLogger(), sessions)(next)

	testCases := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Valid token",
			header:         "Bearer " + token,
			expectedStatus: http.StatusOK,
			expectedBody:   "admin",
		},
		{
			name:           "Lowercase scheme",
			header:         "bearer " + token,
			expectedStatus: http.StatusOK,
			expectedBody:   "admin",
		},
		{
			name:           "Missing header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authorization required"}`,
		},
		{
			name:           "Unknown token",
			header:         "Bearer nope",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid or expired session"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, tc.expectedBody, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", BearerToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "", BearerToken(req))

	req.Header.Set("Authorization", "Bearer  abc ")
	assert.Equal(t, "abc", BearerToken(req))
}
