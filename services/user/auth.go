package user

import (
	"context"
	"fmt"

	"mediconnect/models"
	"mediconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an account with a bcrypt-hashed password and issues a
// token. Self-service registration only creates patient or doctor accounts;
// admins are seeded out of band (cmd/seedadmin).
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string, role models.Role) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if role == models.RoleAdmin {
		return nil, fmt.Errorf("admin accounts cannot be self-registered")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("Register: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(ctx, usr)
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(ctx, usr)
}

// issueToken signs a JWT for the account and caches its hash so the auth
// middleware can validate tokens without a database round trip.
func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, string(usr.Role), utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	cache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := cache.Set(ctx, cacheKey, utils.HashToken(token), utils.AuthCacheTTL).Err(); err != nil {
		// The middleware falls back to a database lookup on cache miss.
		utils.GetLogger().Warn("failed to cache auth token", zap.String("userID", usr.ID), zap.Error(err))
	}

	return &AuthResponse{
		Token: token,
		User: PublicUser{
			ID:    usr.ID,
			Name:  usr.Name,
			Email: usr.Email,
			Role:  usr.Role,
		},
	}, nil
}
