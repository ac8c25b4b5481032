package login

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventTicketing/internal/auth"
	"eventTicketing/internal/http-server/handlers/admin/login/mocks"
	"eventTicketing/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.Authenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"username":"admin","password":"anything"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", "admin", "anything").Return("token-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","token":"token-1"}`,
		},
		{
			name:        "Rejected",
			requestBody: `{"username":"guest","password":"x"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", "guest", "x").Return("", auth.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid username or password"}`,
		},
		{
			name:        "Unexpected error",
			requestBody: `{"username":"admin","password":"x"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", "admin", "x").Return("", errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
		{
			name:           "Missing password",
			requestBody:    `{"username":"admin"}`,
			mockSetup:      func(m *mocks.Authenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Password is a required field"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.Authenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockAuth := mocks.NewAuthenticator(t)
			tc.mockSetup(mockAuth)

			req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()

			New(logger, mockAuth).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
