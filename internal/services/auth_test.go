package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-mood-journal/internal/models"
	"github.com/sbilibin2017/gw-mood-journal/internal/repositories"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, nil, nil)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
		},
		{
			name:         "user already exists",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.UserDB{Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "concurrent insert wins the race",
			username:  "dave",
			password:  "pass123",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, hash string) error {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerErr
					})
			}

			err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewAuthService(mockReader, nil, nil, nil)

	hashed, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	alice := &models.UserDB{Username: "alice", PasswordHash: string(hashed)}

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.UserDB
		readerErr error
		want      *models.User
		wantErr   bool
	}{
		{name: "match", username: "alice", password: "pw1", user: alice, want: &models.User{Username: "alice"}},
		{name: "wrong password", username: "alice", password: "wrong", user: alice},
		{name: "unknown user", username: "mallory", password: "pw1"},
		{name: "reader error", username: "alice", password: "pw1", readerErr: errors.New("db error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().GetByUsername(gomock.Any(), tt.username).Return(tt.user, tt.readerErr)

			got, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockSessions := services.NewMockSessionStore(ctrl)
	mockTokens := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, nil, mockSessions, mockTokens)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.UserDB{Username: "alice", PasswordHash: string(hashed)}

	t.Run("successful login", func(t *testing.T) {
		var issued *models.Session
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.Session) (string, error) {
				issued = s
				return "token123", nil
			})
		mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.Session) error {
				assert.Same(t, issued, s)
				return nil
			})

		token, err := svc.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "token123", token)

		current, ok := issued.CurrentUser()
		assert.True(t, ok)
		assert.Equal(t, "alice", current)
	})

	t.Run("invalid password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)

		token, err := svc.Login(context.Background(), "alice", "wrongpass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)

		_, err := svc.Login(context.Background(), "bob", "secret")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("token error", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("jwt error"))

		_, err := svc.Login(context.Background(), "alice", "secret")
		assert.EqualError(t, err, "jwt error")
	})

	t.Run("session store error", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		mockTokens.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("token123", nil)
		mockSessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("store error"))

		token, err := svc.Login(context.Background(), "alice", "secret")
		assert.EqualError(t, err, "store error")
		assert.Empty(t, token)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessionStore(ctrl)
	svc := services.NewAuthService(nil, nil, mockSessions, nil)

	session := models.NewSession()
	session.SetCurrentUser("alice")

	mockSessions.EXPECT().Delete(gomock.Any(), session.ID).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), session))
	_, ok := session.CurrentUser()
	assert.False(t, ok)
}
