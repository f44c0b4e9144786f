package users

import (
	"context"
	"sync"
	"time"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/dto/requests"
	"medsafe-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	Authorizer     contracts.Authorizer
	Log            *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(userRepository contracts.UserRepository, authorizer contracts.Authorizer, logger *zap.Logger) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			Authorizer:     authorizer,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetAllUsers(ctx context.Context) ([]responses.User, error) {
	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewUsers(users), nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, caller models.Caller) (*responses.User, error) {
	user, err := uc.syncFromClaims(ctx, caller)
	if err != nil {
		return nil, err
	}
	return responses.NewUser(user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, caller models.Caller, request *requests.UpdateUserProfile) (*responses.User, error) {
	user, err := uc.syncFromClaims(ctx, caller)
	if err != nil {
		return nil, err
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.Genere != "" {
		user.Genere = request.Genere
	}
	if request.Specializzazione != "" {
		user.Specializzazione = request.Specializzazione
	}
	if err := uc.UserRepository.Update(ctx, user); err != nil {
		return nil, err
	}
	return responses.NewUser(user), nil
}

// SetUserEnabled flips an account flag on behalf of an administrator.
// Reports false when no user has the given id.
func (uc *userUsecase) SetUserEnabled(ctx context.Context, caller models.Caller, userID int, enabled bool) (bool, error) {
	if err := uc.Authorizer.CanAdminister(ctx, caller); err != nil {
		return false, err
	}

	changed, err := uc.UserRepository.SetEnabled(ctx, userID, enabled)
	if err != nil {
		return false, err
	}
	if changed {
		uc.Log.Info("user enabled flag changed",
			zap.Int("user_id", userID),
			zap.Bool("enabled", enabled),
			zap.String("caller", caller.Email),
		)
	}
	return changed, nil
}

// syncFromClaims provisions the caller's user row the first time the
// identity provider hands us their token.
func (uc *userUsecase) syncFromClaims(ctx context.Context, caller models.Caller) (*models.User, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, caller.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	role := models.RoleMedico
	if caller.HasRole(string(models.RoleAdmin)) {
		role = models.RoleAdmin
	}

	newUser := &models.User{
		Email:     caller.Email,
		FullName:  caller.Email,
		Role:      role,
		Enabled:   true,
		CreatedAt: time.Now(),
	}
	uc.Log.Info("provisioning user from identity claims", zap.String("email", caller.Email), zap.String("role", string(role)))
	return uc.UserRepository.Save(ctx, newUser)
}
