package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-rooms/internal/config"
	"github.com/MKhiriev/go-cipher-rooms/internal/logger"
	"github.com/MKhiriev/go-cipher-rooms/internal/mock"
	"github.com/MKhiriev/go-cipher-rooms/internal/store"
	"github.com/MKhiriev/go-cipher-rooms/internal/utils"
	"github.com/MKhiriev/go-cipher-rooms/internal/validators"
	"github.com/MKhiriev/go-cipher-rooms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testAppConfig uses the minimum bcrypt cost to keep tests fast.
func testAppConfig() config.App {
	return config.App{
		TokenSignKey:             "test-sign-key",
		TokenIssuer:              "cipher-rooms-test",
		TokenDuration:            time.Hour,
		PasswordCheckLockTimeout: 30 * time.Second,
		BacklogLimit:             10000,
		BcryptCost:               4,
		Version:                  "test",
	}
}

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	return NewAuthService(users, testAppConfig(), logger.Nop()), users
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password, "plaintext password must not reach storage")
			require.NoError(t, utils.CheckPassword(u.PasswordHash, "secret-pass"))
			u.UserID = 7
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "al", Password: "secret-pass"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidLogin)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, users := newTestAuthSvc(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret-pass"})
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("secret-pass", 4)
	require.NoError(t, err)
	stored := models.User{UserID: 3, Login: "alice", PasswordHash: hash}
	dbErr := errors.New("connection reset")

	tests := []struct {
		name     string
		input    models.User
		setup    func(users *mock.MockUserRepository)
		wantErr  error
		wantUser int64
	}{
		{
			name:  "valid credentials",
			input: models.User{Login: "alice", Password: "secret-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
			},
			wantUser: 3,
		},
		{
			name:  "wrong password",
			input: models.User{Login: "alice", Password: "other-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:  "unknown login looks like wrong password",
			input: models.User{Login: "bob", Password: "secret-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrWrongPassword,
		},
		{
			name:  "storage failure",
			input: models.User{Login: "alice", Password: "secret-pass"},
			setup: func(users *mock.MockUserRepository) {
				users.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:    "empty password",
			input:   models.User{Login: "alice"},
			setup:   func(*mock.MockUserRepository) {},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users := newTestAuthSvc(t)
			tt.setup(users)

			user, err := svc.Login(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user.UserID)
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice", parsed.Login)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_MissingSignKey(t *testing.T) {
	cfg := testAppConfig()
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
