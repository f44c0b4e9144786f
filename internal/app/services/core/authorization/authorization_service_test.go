package authorization

import (
	"context"
	"testing"

	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/constvars"
	"medsafe-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) SetEnabled(ctx context.Context, id int, enabled bool) (bool, error) {
	args := m.Called(ctx, id, enabled)
	return args.Bool(0), args.Error(1)
}

func newService(repo *mockUserRepository) *authorizationService {
	return &authorizationService{
		UserRepository: repo,
		Log:            zap.NewNop(),
	}
}

func enabledMedico(email string) *models.User {
	return &models.User{ID: 1, Email: email, FullName: "Dott. Rossi", Role: models.RoleMedico, Enabled: true}
}

func TestCanCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Enabled account may create", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "medico@example.com").Return(enabledMedico("medico@example.com"), nil)

		err := newService(repo).CanCreate(ctx, models.Caller{Email: "medico@example.com"})
		assert.NoError(t, err)
	})

	t.Run("Unknown account is denied", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		err := newService(repo).CanCreate(ctx, models.Caller{Email: "ghost@example.com"})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Disabled account is denied", func(t *testing.T) {
		repo := new(mockUserRepository)
		user := enabledMedico("off@example.com")
		user.Enabled = false
		repo.On("FindByEmail", ctx, "off@example.com").Return(user, nil)

		err := newService(repo).CanCreate(ctx, models.Caller{Email: "off@example.com"})
		assert.Error(t, err)
	})
}

func TestCanMutate(t *testing.T) {
	ctx := context.Background()
	referto := &models.Referto{ID: 7, AutoreEmail: "owner@example.com"}

	t.Run("Author may mutate", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "owner@example.com").Return(enabledMedico("owner@example.com"), nil)

		err := newService(repo).CanMutate(ctx, models.Caller{Email: "owner@example.com"}, referto, "edit")
		assert.NoError(t, err)
	})

	t.Run("Author match is case insensitive", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "OWNER@Example.COM").Return(enabledMedico("owner@example.com"), nil)

		err := newService(repo).CanMutate(ctx, models.Caller{Email: "OWNER@Example.COM"}, referto, "edit")
		assert.NoError(t, err)
	})

	t.Run("Admin role from database may mutate", func(t *testing.T) {
		repo := new(mockUserRepository)
		admin := enabledMedico("admin@example.com")
		admin.Role = models.RoleAdmin
		repo.On("FindByEmail", ctx, "admin@example.com").Return(admin, nil)

		err := newService(repo).CanMutate(ctx, models.Caller{Email: "admin@example.com"}, referto, "delete")
		assert.NoError(t, err)
	})

	t.Run("Admin role from token claims may mutate", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "other@example.com").Return(enabledMedico("other@example.com"), nil)

		caller := models.Caller{Email: "other@example.com", Roles: []string{"ADMIN"}}
		err := newService(repo).CanMutate(ctx, caller, referto, "delete")
		assert.NoError(t, err)
	})

	t.Run("Non author without admin role is denied", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "other@example.com").Return(enabledMedico("other@example.com"), nil)

		err := newService(repo).CanMutate(ctx, models.Caller{Email: "other@example.com"}, referto, "edit")
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "owner@example.com")
	})

	t.Run("Disabled account is denied before ownership check", func(t *testing.T) {
		repo := new(mockUserRepository)
		user := enabledMedico("owner@example.com")
		user.Enabled = false
		repo.On("FindByEmail", ctx, "owner@example.com").Return(user, nil)

		err := newService(repo).CanMutate(ctx, models.Caller{Email: "owner@example.com"}, referto, "edit")
		assert.Error(t, err)
	})
}

func TestCanAdminister(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin role from database is allowed", func(t *testing.T) {
		repo := new(mockUserRepository)
		admin := enabledMedico("admin@example.com")
		admin.Role = models.RoleAdmin
		repo.On("FindByEmail", ctx, "admin@example.com").Return(admin, nil)

		err := newService(repo).CanAdminister(ctx, models.Caller{Email: "admin@example.com"})
		assert.NoError(t, err)
	})

	t.Run("Admin role from token claims is allowed", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "other@example.com").Return(enabledMedico("other@example.com"), nil)

		caller := models.Caller{Email: "other@example.com", Roles: []string{"ADMIN"}}
		err := newService(repo).CanAdminister(ctx, caller)
		assert.NoError(t, err)
	})

	t.Run("Plain medico is denied", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "medico@example.com").Return(enabledMedico("medico@example.com"), nil)

		err := newService(repo).CanAdminister(ctx, models.Caller{Email: "medico@example.com"})
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("Disabled admin is denied", func(t *testing.T) {
		repo := new(mockUserRepository)
		admin := enabledMedico("admin@example.com")
		admin.Role = models.RoleAdmin
		admin.Enabled = false
		repo.On("FindByEmail", ctx, "admin@example.com").Return(admin, nil)

		err := newService(repo).CanAdminister(ctx, models.Caller{Email: "admin@example.com"})
		assert.Error(t, err)
	})

	t.Run("Unknown account is denied", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

		err := newService(repo).CanAdminister(ctx, models.Caller{Email: "ghost@example.com"})
		assert.Error(t, err)
	})
}
