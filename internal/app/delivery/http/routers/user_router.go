package routers

import (
	"medsafe-service/internal/app/delivery/http/middlewares"
	"medsafe-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.With(middlewares.Authentication).Get("/", userController.GetAllUsers)
	router.With(middlewares.Authentication).Get("/profile", userController.GetProfile)
	router.With(middlewares.Authentication).Put("/profile", userController.UpdateProfile)
	router.With(middlewares.Authentication).Put("/{userID}/disable", userController.DisableUser)
	router.With(middlewares.Authentication).Put("/{userID}/enable", userController.EnableUser)
}
