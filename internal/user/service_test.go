package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finboard/internal/user"
	"github.com/MrJamesThe3rd/finboard/internal/validation"
)

func TestService_Login(t *testing.T) {
	tests := []struct {
		name      string
		creds     user.Credentials
		setupMock func(m *user.MockRepository)
		wantErr   error
	}{
		{
			name:  "Success",
			creds: user.Credentials{Email: "  ana@example.com ", Password: "secret"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					Login(gomock.Any(), user.Credentials{Email: "ana@example.com", Password: "secret"}).
					Return(&user.AuthResult{Token: "tok", User: &user.User{ID: uuid.New()}}, nil)
			},
		},
		{
			name:    "InvalidEmail",
			creds:   user.Credentials{Email: "ana", Password: "secret"},
			wantErr: validation.ErrInvalid,
		},
		{
			name:  "NoToken",
			creds: user.Credentials{Email: "ana@example.com", Password: "secret"},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					Login(gomock.Any(), gomock.Any()).
					Return(&user.AuthResult{}, nil)
			},
			wantErr: user.ErrNoToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := user.NewService(repo).Login(context.Background(), tt.creds)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "tok", got.Token)
		})
	}
}

func TestService_RegisterRejectsShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := user.NewService(user.NewMockRepository(ctrl)).Register(context.Background(), user.RegisterParams{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "123",
	})
	assert.ErrorIs(t, err, validation.ErrInvalid)
}
