package user

import (
	"context"
	"fmt"

	"mediconnect/models"
	"mediconnect/utils"

	"go.uber.org/zap"
)

// GetProfile returns the public view of an account.
func (s *DefaultUserService) GetProfile(ctx context.Context, id string) (*PublicUser, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	return publicView(usr), nil
}

// ListUsers returns all accounts.
func (s *DefaultUserService) ListUsers(ctx context.Context) ([]PublicUser, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]PublicUser, 0, len(users))
	for i := range users {
		out = append(out, *publicView(&users[i]))
	}
	return out, nil
}

// DeleteUser removes an account and revokes its cached auth entry.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	cache := utils.GetAuthCacheClient()
	if err := cache.Del(ctx, utils.AuthCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("failed to evict auth cache entry", zap.String("userID", id), zap.Error(err))
	}
	return nil
}

func publicView(usr *models.User) *PublicUser {
	return &PublicUser{
		ID:    usr.ID,
		Name:  usr.Name,
		Email: usr.Email,
		Role:  usr.Role,
	}
}
