package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Henry18/mvp-debts/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	in := models.CreateUserInput{Email: "ana@example.com", Password: "secret1", Name: "Ana"}
	user := &models.User{ID: uuid.New(), Email: "ana@example.com", Name: "Ana", IsActive: true}

	tests := []struct {
		name      string
		createErr error
		jwtErr    error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful registration",
			wantToken: "token",
		},
		{
			name:      "directory rejects",
			createErr: &ValidationError{Message: MsgEmailTaken},
			wantErr:   &ValidationError{Message: MsgEmailTaken},
		},
		{
			name:    "token error",
			jwtErr:  errors.New("sign error"),
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := NewMockUserDirectory(ctrl)
			jwt := NewMockJWTGenerator(ctrl)
			svc := NewAuthService(users, jwt)

			if tt.createErr != nil {
				users.EXPECT().Create(ctx, in).Return(nil, tt.createErr)
			} else {
				users.EXPECT().Create(ctx, in).Return(user, nil)
				jwt.EXPECT().Generate(ctx, user.ID, user.Email).Return(tt.wantToken, tt.jwtErr)
			}

			token, got, err := svc.Register(ctx, in)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, user, got)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	active := &models.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: string(hash), IsActive: true}
	inactive := &models.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: string(hash)}

	tests := []struct {
		name        string
		password    string
		found       *models.User
		findErr     error
		expectJWT   bool
		wantToken   string
		wantAuthErr bool
		wantErr     string
	}{
		{
			name:      "successful login",
			password:  "secret1",
			found:     active,
			expectJWT: true,
			wantToken: "token",
		},
		{
			name:        "unknown email",
			password:    "secret1",
			wantAuthErr: true,
		},
		{
			name:        "wrong password",
			password:    "wrong-pass",
			found:       active,
			wantAuthErr: true,
		},
		{
			name:        "inactive user",
			password:    "secret1",
			found:       inactive,
			wantAuthErr: true,
		},
		{
			name:    "lookup error",
			findErr: errors.New("db error"),
			wantErr: "db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := NewMockUserDirectory(ctrl)
			jwt := NewMockJWTGenerator(ctrl)
			svc := NewAuthService(users, jwt)

			users.EXPECT().FindByEmail(ctx, "ana@example.com").Return(tt.found, tt.findErr)
			if tt.expectJWT {
				jwt.EXPECT().Generate(ctx, tt.found.ID, tt.found.Email).Return(tt.wantToken, nil)
			}

			token, user, err := svc.Login(ctx, "ana@example.com", tt.password)

			switch {
			case tt.wantAuthErr:
				var authErr *AuthenticationError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, MsgInvalidCredentials, authErr.Message)
			case tt.wantErr != "":
				assert.EqualError(t, err, tt.wantErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				assert.Equal(t, tt.found, user)
			}
		})
	}
}
