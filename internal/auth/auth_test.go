package auth_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/auth"
	"github.com/MrJamesThe3rd/finboard/internal/session"
	"github.com/MrJamesThe3rd/finboard/internal/user"
)

func signed(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	return token
}

func TestSession_Bootstrap(t *testing.T) {
	profile := &user.User{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}

	tests := []struct {
		name      string
		token     func(t *testing.T) string
		setupMock func(m *user.MockRepository)
		wantState auth.State
		wantToken bool
		wantErr   error
	}{
		{
			name:      "NoToken",
			token:     func(*testing.T) string { return "" },
			wantState: auth.StateUnauthenticated,
			wantErr:   auth.ErrNoSession,
		},
		{
			name:      "ExpiredLocally",
			token:     func(t *testing.T) string { return signed(t, time.Now().Add(-time.Minute)) },
			wantState: auth.StateLoggedOut,
			wantErr:   auth.ErrNoSession,
		},
		{
			name:  "Loaded",
			token: func(t *testing.T) string { return signed(t, time.Now().Add(time.Hour)) },
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().Me(gomock.Any()).Return(profile, nil)
			},
			wantState: auth.StateAuthenticated,
			wantToken: true,
		},
		{
			name:  "OpaqueToken",
			token: func(*testing.T) string { return "opaque" },
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().Me(gomock.Any()).Return(profile, nil)
			},
			wantState: auth.StateAuthenticated,
			wantToken: true,
		},
		{
			name:  "RejectedByBackend",
			token: func(*testing.T) string { return "opaque" },
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().Me(gomock.Any()).Return(nil, &apiclient.Error{StatusCode: http.StatusUnauthorized})
			},
			wantState: auth.StateLoggedOut,
			wantErr:   apiclient.ErrUnauthorized,
		},
		{
			name:  "NetworkFailureKeepsToken",
			token: func(*testing.T) string { return "opaque" },
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().Me(gomock.Any()).Return(nil, &apiclient.NetworkError{Message: "down"})
			},
			wantState: auth.StateUnauthenticated,
			wantToken: true,
			wantErr:   apiclient.ErrNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			store := session.NewMemory(tt.token(t))
			s := auth.New(repo, store)

			got, err := s.Bootstrap(context.Background())

			assert.Equal(t, tt.wantState, s.State())
			assert.Equal(t, tt.wantToken, store.Token() != "")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				assert.Nil(t, s.User())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, profile, got)
			assert.Equal(t, profile, s.User())
		})
	}
}

func TestSession_BootstrapSharesOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	profile := &user.User{ID: uuid.New()}

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		Me(gomock.Any()).
		DoAndReturn(func(context.Context) (*user.User, error) {
			<-release
			return profile, nil
		}).
		Times(1)

	s := auth.New(repo, session.NewMemory("opaque"))

	var (
		wg      sync.WaitGroup
		started sync.WaitGroup
	)

	results := make([]*user.User, 5)
	for i := range results {
		started.Add(1)
		wg.Go(func() {
			started.Done()

			u, err := s.Bootstrap(context.Background())
			assert.NoError(t, err)
			results[i] = u
		})
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, u := range results {
		assert.Same(t, profile, u)
	}
}

func TestSession_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creds := user.Credentials{Email: "ana@example.com", Password: "secret123"}
	profile := &user.User{ID: uuid.New()}

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		Login(gomock.Any(), creds).
		Return(&user.AuthResult{Token: "tok", User: profile}, nil).
		Times(2)

	store := session.NewMemory("")
	require.NoError(t, store.SetRedirectPath("/bills"))

	s := auth.New(repo, store)

	redirect, err := s.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "/bills", redirect)
	assert.Equal(t, "tok", store.Token())
	assert.Equal(t, auth.StateAuthenticated, s.State())
	assert.Same(t, profile, s.User())

	redirect, err = s.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, auth.HomePath, redirect)
}

func TestSession_LoginFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, &apiclient.Error{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"})

	store := session.NewMemory("")
	s := auth.New(repo, store)

	_, err := s.Login(context.Background(), user.Credentials{Email: "a@b.co", Password: "x"})
	assert.EqualError(t, err, "invalid credentials")
	assert.Equal(t, auth.StateUnauthenticated, s.State())
	assert.Empty(t, store.Token())
}

func TestSession_LogoutAlwaysClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().Logout(gomock.Any()).Return(errors.New("backend down"))

	store := session.NewMemory("tok")
	s := auth.New(repo, store)

	require.NoError(t, s.Logout(context.Background()))
	assert.Empty(t, store.Token())
	assert.Equal(t, auth.StateLoggedOut, s.State())
	assert.Nil(t, s.User())
}

func TestSession_BootstrapCanceledResetsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		Me(gomock.Any()).
		DoAndReturn(func(context.Context) (*user.User, error) {
			close(entered)
			<-release

			return nil, context.Canceled
		})

	store := session.NewMemory("opaque")
	s := auth.New(repo, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Bootstrap(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, auth.StateUnauthenticated, s.State())
	assert.Equal(t, "opaque", store.Token())

	<-entered
	close(release)
}

func TestSession_Expire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profile := &user.User{ID: uuid.New(), Name: "Ana"}

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().Me(gomock.Any()).Return(profile, nil)

	store := session.NewMemory("opaque")
	s := auth.New(repo, store)

	_, err := s.Bootstrap(context.Background())
	require.NoError(t, err)
	require.Equal(t, auth.StateAuthenticated, s.State())

	s.Expire()

	assert.Equal(t, auth.StateLoggedOut, s.State())
	assert.Nil(t, s.User())
	assert.Empty(t, store.Token())
}
