package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medsafe-service/internal/app/delivery/http/middlewares"
	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/dto/requests"
	"medsafe-service/internal/pkg/dto/responses"
	"medsafe-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) GetAllUsers(ctx context.Context) ([]responses.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.User), args.Error(1)
}

func (m *mockUserUsecase) GetProfile(ctx context.Context, caller models.Caller) (*responses.User, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.User), args.Error(1)
}

func (m *mockUserUsecase) UpdateProfile(ctx context.Context, caller models.Caller, request *requests.UpdateUserProfile) (*responses.User, error) {
	args := m.Called(ctx, caller, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.User), args.Error(1)
}

func (m *mockUserUsecase) SetUserEnabled(ctx context.Context, caller models.Caller, userID int, enabled bool) (bool, error) {
	args := m.Called(ctx, caller, userID, enabled)
	return args.Bool(0), args.Error(1)
}

func newUserTestRouter(usecase *mockUserUsecase) *chi.Mux {
	controller := NewUserController(zap.NewNop(), usecase)
	router := chi.NewRouter()
	router.Put("/users/{userID}/disable", controller.DisableUser)
	router.Put("/users/{userID}/enable", controller.EnableUser)
	return router
}

func authenticatedRequest(method, target string, caller models.Caller) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(middlewares.ContextWithCaller(req.Context(), caller))
}

func TestSetUserEnabledHandlers(t *testing.T) {
	admin := models.Caller{Email: "admin@example.com", Roles: []string{"ADMIN"}}

	t.Run("Disable succeeds for an existing user", func(t *testing.T) {
		usecase := new(mockUserUsecase)
		usecase.On("SetUserEnabled", mock.Anything, admin, 5, false).Return(true, nil)

		rr := httptest.NewRecorder()
		newUserTestRouter(usecase).ServeHTTP(rr, authenticatedRequest("PUT", "/users/5/disable", admin))

		assert.Equal(t, http.StatusOK, rr.Code)
		usecase.AssertExpectations(t)
	})

	t.Run("Enable succeeds for an existing user", func(t *testing.T) {
		usecase := new(mockUserUsecase)
		usecase.On("SetUserEnabled", mock.Anything, admin, 5, true).Return(true, nil)

		rr := httptest.NewRecorder()
		newUserTestRouter(usecase).ServeHTTP(rr, authenticatedRequest("PUT", "/users/5/enable", admin))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Unknown user id is a 404", func(t *testing.T) {
		usecase := new(mockUserUsecase)
		usecase.On("SetUserEnabled", mock.Anything, admin, 99, false).Return(false, nil)

		rr := httptest.NewRecorder()
		newUserTestRouter(usecase).ServeHTTP(rr, authenticatedRequest("PUT", "/users/99/disable", admin))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Non numeric id is a bad request", func(t *testing.T) {
		usecase := new(mockUserUsecase)

		rr := httptest.NewRecorder()
		newUserTestRouter(usecase).ServeHTTP(rr, authenticatedRequest("PUT", "/users/abc/disable", admin))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		usecase.AssertNotCalled(t, "SetUserEnabled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing caller is unauthorized", func(t *testing.T) {
		usecase := new(mockUserUsecase)

		req := httptest.NewRequest("PUT", "/users/5/disable", nil)
		rr := httptest.NewRecorder()
		newUserTestRouter(usecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Denied caller gets the gate error", func(t *testing.T) {
		usecase := new(mockUserUsecase)
		caller := models.Caller{Email: "medico@example.com"}
		usecase.On("SetUserEnabled", mock.Anything, caller, 5, false).
			Return(false, exceptions.ErrAdminOnly(caller.Email))

		rr := httptest.NewRecorder()
		newUserTestRouter(usecase).ServeHTTP(rr, authenticatedRequest("PUT", "/users/5/disable", caller))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
