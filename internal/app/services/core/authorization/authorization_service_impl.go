package authorization

import (
	"context"
	"strings"
	"sync"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type authorizationService struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

var (
	authorizationServiceInstance contracts.Authorizer
	onceAuthorizationService     sync.Once
)

func NewAuthorizationService(userRepository contracts.UserRepository, logger *zap.Logger) contracts.Authorizer {
	onceAuthorizationService.Do(func() {
		authorizationServiceInstance = &authorizationService{
			UserRepository: userRepository,
			Log:            logger,
		}
	})
	return authorizationServiceInstance
}

func (s *authorizationService) CanCreate(ctx context.Context, caller models.Caller) error {
	user, err := s.UserRepository.FindByEmail(ctx, caller.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.Enabled {
		return exceptions.ErrAccountDisabled(caller.Email)
	}
	return nil
}

func (s *authorizationService) CanMutate(ctx context.Context, caller models.Caller, referto *models.Referto, operation string) error {
	user, err := s.UserRepository.FindByEmail(ctx, caller.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.Enabled {
		return exceptions.ErrAccountDisabled(caller.Email)
	}

	if s.isAdmin(user, caller) {
		s.Log.Info("admin authorized for referto mutation",
			zap.String("caller", caller.Email),
			zap.String("operation", operation),
			zap.Int("referto_id", referto.ID),
		)
		return nil
	}

	if strings.EqualFold(referto.AutoreEmail, caller.Email) {
		s.Log.Info("author authorized for referto mutation",
			zap.String("caller", caller.Email),
			zap.String("operation", operation),
			zap.Int("referto_id", referto.ID),
		)
		return nil
	}

	s.Log.Warn("referto mutation denied",
		zap.String("caller", caller.Email),
		zap.String("operation", operation),
		zap.Int("referto_id", referto.ID),
		zap.String("owner", referto.AutoreEmail),
	)
	return exceptions.ErrRefertoForbidden(operation, caller.Email, referto.AutoreEmail)
}

func (s *authorizationService) CanAdminister(ctx context.Context, caller models.Caller) error {
	user, err := s.UserRepository.FindByEmail(ctx, caller.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.Enabled {
		return exceptions.ErrAccountDisabled(caller.Email)
	}

	if s.isAdmin(user, caller) {
		return nil
	}

	s.Log.Warn("admin operation denied", zap.String("caller", caller.Email))
	return exceptions.ErrAdminOnly(caller.Email)
}

// isAdmin checks the users table first, then falls back to the roles the
// identity provider put in the token.
func (s *authorizationService) isAdmin(user *models.User, caller models.Caller) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	return caller.HasRole(string(models.RoleAdmin))
}
