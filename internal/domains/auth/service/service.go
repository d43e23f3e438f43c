package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	userModel "frontdesk/internal/domains/user/model"
	userDto "frontdesk/internal/domains/user/model/dto"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Authenticate(ctx context.Context, username, secret string) (userModel.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Me(ctx context.Context, username string) (userDto.UserResponse, error)
	Staff(ctx context.Context, username string) (userDto.UsersResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

// Authenticate verifies a username and secret against the roster. Unknown users and wrong secrets
// produce the same failure.
func (s *serviceImpl) Authenticate(ctx context.Context, username, secret string) (res userModel.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Find(ctx, username)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			_ = password.Decoy(secret)

			log.Warn().Str("username", username).Msg("login attempt with unknown username")

			return res, failure.InvalidCredentials
		}

		log.Error().Err(err).Msg("failed to look up user")

		return res, fmt.Errorf("failed to look up user: %w", err)
	}

	if err = password.Verify(secret, user.PasswordHash); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Str("username", user.Username).Msg("failed to verify password")
		} else {
			log.Warn().Str("username", user.Username).Msg("login attempt with wrong password")
		}

		return res, failure.InvalidCredentials
	}

	return user, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(jwt.Identity{
		Username: user.Username,
		Name:     user.Name,
		Level:    user.Level,
		RCNo:     user.RCNo,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Me(ctx context.Context, username string) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.Find(ctx, username)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return res, failure.Unauthorized("session user no longer exists")
		}

		log.Error().Err(err).Msg("failed to look up user")

		return res, fmt.Errorf("failed to look up user: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

// Staff lists roster members other than username.
func (s *serviceImpl) Staff(ctx context.Context, username string) (res userDto.UsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff")
	defer scope.End()
	defer scope.TraceIfError(err)

	users, err := s.userRepo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return res, fmt.Errorf("failed to list users: %w", err)
	}

	self, err := s.userRepo.Find(ctx, username)
	if err != nil && !errors.Is(err, gRepo.ErrNotFound) {
		log.Error().Err(err).Msg("failed to look up user")

		return res, fmt.Errorf("failed to look up user: %w", err)
	}

	others := make([]userModel.User, 0, len(users))

	for _, user := range users {
		if user.Username == self.Username {
			continue
		}

		others = append(others, user)
	}

	res.FromModels(others)

	return res, nil
}
