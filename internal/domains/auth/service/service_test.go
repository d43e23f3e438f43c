package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	jwtMocks "frontdesk/infras/jwt/mocks"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	userModel "frontdesk/internal/domains/user/model"
	userMocks "frontdesk/internal/domains/user/repository/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
)

var validUser = userModel.User{
	Username:     "john",
	PasswordHash: "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi", // "password" hashed
	Name:         "John Smith",
	Level:        constant.RoleStaff,
	RCNo:         "EMP001",
}

var digestUser = userModel.User{
	Username:     "admin",
	PasswordHash: "sha256$k7Qe2mVb$bedf3526933aab7b4f1d1a437755ce7d909c2a0ca0f74625a291e05035d4e43a",
	Name:         "Administrator",
	Level:        constant.RoleAdmin,
	RCNo:         "ADM001",
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, &config.Config{}, mockOtel, mockJWT)

	tokens := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful login with bcrypt digest",
			req:  dto.LoginRequest{Username: "John", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Find(gomock.Any(), "John").Return(validUser, nil)
				mockJWT.EXPECT().
					GenerateTokenPair(jwt.Identity{Username: "john", Name: "John Smith", Level: constant.RoleStaff, RCNo: "EMP001"}).
					Return(tokens, nil)
			},
		},
		{
			name: "successful login with sha256 digest",
			req:  dto.LoginRequest{Username: "admin", Password: "admin123"},
			setupMock: func() {
				mockUserRepo.EXPECT().Find(gomock.Any(), "admin").Return(digestUser, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any()).Return(tokens, nil)
			},
		},
		{
			name: "unknown user",
			req:  dto.LoginRequest{Username: "nobody", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Find(gomock.Any(), "nobody").Return(userModel.User{}, gRepo.ErrNotFound)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "john", Password: "wrongpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().Find(gomock.Any(), "john").Return(validUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "missing username",
			req:       dto.LoginRequest{Username: "  ", Password: "password"},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Username: "john", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().Find(gomock.Any(), "john").Return(validUser, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any()).Return(nil, errors.New("token generation failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", result.AccessToken)
			assert.Equal(t, "refresh-token", result.RefreshToken)
			assert.NotEmpty(t, result.User.RCNo)
		})
	}
}

func TestAuthService_AuthenticateFailuresAreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	mockUserRepo.EXPECT().Find(gomock.Any(), "ghost").Return(userModel.User{}, gRepo.ErrNotFound)
	mockUserRepo.EXPECT().Find(gomock.Any(), "john").Return(validUser, nil)

	_, unknownErr := svc.Authenticate(context.Background(), "ghost", "password")
	_, wrongErr := svc.Authenticate(context.Background(), "john", "nope")

	assert.Equal(t, unknownErr, wrongErr)
	assert.Equal(t, failure.InvalidCredentials, unknownErr)
}

func TestAuthService_AuthenticateUnknownUserRunsDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	mockUserRepo.EXPECT().Find(gomock.Any(), "ghost").Return(userModel.User{}, gRepo.ErrNotFound).Times(2)
	mockUserRepo.EXPECT().Find(gomock.Any(), "john").Return(validUser, nil)

	// first call pays for building the decoy hash
	_, _ = svc.Authenticate(context.Background(), "ghost", "password")

	start := time.Now()
	_, err := svc.Authenticate(context.Background(), "ghost", "password")
	unknown := time.Since(start)
	require.Equal(t, failure.InvalidCredentials, err)

	start = time.Now()
	_, err = svc.Authenticate(context.Background(), "john", "nope")
	wrong := time.Since(start)
	require.Equal(t, failure.InvalidCredentials, err)

	assert.Greater(t, unknown, wrong/4)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
		{
			name:      "missing refresh token",
			req:       dto.RefreshTokenRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	mockUserRepo.EXPECT().Find(gomock.Any(), "john").Return(validUser, nil)
	mockUserRepo.EXPECT().Find(gomock.Any(), "gone").Return(userModel.User{}, gRepo.ErrNotFound)

	me, err := svc.Me(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", me.Name)
	assert.Equal(t, "EMP001", me.RCNo)

	_, err = svc.Me(context.Background(), "gone")
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_Staff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	mockUserRepo.EXPECT().List(gomock.Any()).Return([]userModel.User{digestUser, validUser}, nil)
	mockUserRepo.EXPECT().Find(gomock.Any(), "JOHN").Return(validUser, nil)

	staff, err := svc.Staff(context.Background(), "JOHN")
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.Equal(t, "admin", staff[0].Username)
	assert.Equal(t, constant.RoleAdmin, staff[0].Level)
}

func TestAuthService_StaffListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	svc := service.New(mockUserRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	mockUserRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := svc.Staff(context.Background(), "john")
	assert.Error(t, err)
}
