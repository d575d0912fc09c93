package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/finboard/internal/session"
)

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	f, err := session.OpenFile(path)
	require.NoError(t, err)
	assert.Empty(t, f.Token())

	require.NoError(t, f.SetToken("abc"))
	require.NoError(t, f.SetRedirectPath("/bills"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened, err := session.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", reopened.Token())
	assert.Equal(t, "/bills", reopened.RedirectPath())

	require.NoError(t, reopened.ClearToken())

	again, err := session.OpenFile(path)
	require.NoError(t, err)
	assert.Empty(t, again.Token())
	assert.Equal(t, "/bills", again.RedirectPath())
}

func TestOpenFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := session.OpenFile(path)
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	m := session.NewMemory("tok")
	assert.Equal(t, "tok", m.Token())

	require.NoError(t, m.ClearToken())
	assert.Empty(t, m.Token())
}

func TestExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	sign := func(exp time.Time) string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		})

		s, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)

		return s
	}

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "Empty", token: "", want: false},
		{name: "Opaque", token: "not-a-jwt", want: false},
		{name: "Valid", token: sign(now.Add(time.Hour)), want: false},
		{name: "Expired", token: sign(now.Add(-time.Minute)), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, session.Expired(tt.token, now))
		})
	}
}
