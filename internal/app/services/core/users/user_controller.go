package users

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/app/delivery/http/middlewares"
	"medsafe-service/internal/pkg/constvars"
	"medsafe-service/internal/pkg/dto/requests"
	"medsafe-service/internal/pkg/exceptions"
	"medsafe-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.GetAllUsers(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, response)
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.GetProfile(ctx, caller)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUserProfileSuccessMessage, response)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	request := new(requests.UpdateUserProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.UpdateProfile(ctx, caller, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserProfileSuccessMsg, response)
}

func (ctrl *UserController) DisableUser(w http.ResponseWriter, r *http.Request) {
	ctrl.setUserEnabled(w, r, false, constvars.DisableUserSuccessMessage)
}

func (ctrl *UserController) EnableUser(w http.ResponseWriter, r *http.Request) {
	ctrl.setUserEnabled(w, r, true, constvars.EnableUserSuccessMessage)
}

func (ctrl *UserController) setUserEnabled(w http.ResponseWriter, r *http.Request, enabled bool, successMessage string) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	raw := chi.URLParam(r, constvars.URLParamUserID)
	userID, err := strconv.Atoi(raw)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamUserID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	changed, err := ctrl.UserUsecase.SetUserEnabled(ctx, caller, userID, enabled)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !changed {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUserNotExist(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, nil)
}
