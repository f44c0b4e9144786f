package contracts

import (
	"context"

	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/dto/requests"
	"medsafe-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Save(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// SetEnabled flips the account flag, reporting false when no user has
	// the given id.
	SetEnabled(ctx context.Context, id int, enabled bool) (bool, error)
}

type UserUsecase interface {
	GetAllUsers(ctx context.Context) ([]responses.User, error)
	// GetProfile returns the caller's user row, provisioning it from the
	// identity-provider claims on first sight.
	GetProfile(ctx context.Context, caller models.Caller) (*responses.User, error)
	UpdateProfile(ctx context.Context, caller models.Caller, request *requests.UpdateUserProfile) (*responses.User, error)
	// SetUserEnabled disables or re-enables an account. Administrators only;
	// reports false when no user has the given id.
	SetUserEnabled(ctx context.Context, caller models.Caller, userID int, enabled bool) (bool, error)
}
