package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/auth"
	"github.com/MrJamesThe3rd/finboard/internal/session"
	"github.com/MrJamesThe3rd/finboard/internal/user"
)

func TestNavigator_RejectedTokenExpiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().Me(gomock.Any()).Return(&user.User{ID: uuid.New(), Name: "Ana"}, nil)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	sess := session.NewMemory("opaque")
	s := auth.New(repo, sess)

	_, err := s.Bootstrap(context.Background())
	require.NoError(t, err)

	nav := &navigator{session: s}
	nav.setCurrent("/bills")

	c, err := apiclient.New(ts.URL, sess, apiclient.WithNavigator(nav))
	require.NoError(t, err)

	err = c.Get(context.Background(), "/banks", nil, nil)
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)

	assert.Equal(t, auth.StateLoggedOut, s.State())
	assert.Nil(t, s.User())
	assert.Equal(t, "/bills", sess.RedirectPath())
}
