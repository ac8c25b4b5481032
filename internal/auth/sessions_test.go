package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "admin any password", username: "admin", password: "x"},
		{name: "case insensitive", username: "SuperAdmin", password: "secret"},
		{name: "not an admin", username: "guest", password: "x", wantErr: true},
		{name: "empty password", username: "admin", password: "", wantErr: true},
		{name: "empty username", username: "", password: "x", wantErr: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewSessions()

			token, err := s.Login(tc.username, tc.password)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			_, err = uuid.Parse(token)
			assert.NoError(t, err)
			assert.True(t, s.Valid(token))

			user, ok := s.User(token)
			require.True(t, ok)
			assert.Equal(t, tc.username, user)
		})
	}
}

func TestLogout(t *testing.T) {
	t.Parallel()

	s := NewSessions()

	token, err := s.Login("admin", "pw")
	require.NoError(t, err)

	s.Logout(token)
	assert.False(t, s.Valid(token))

	s.Logout("unknown")
	assert.False(t, s.Valid("unknown"))
}
