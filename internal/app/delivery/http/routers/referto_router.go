package routers

import (
	"medsafe-service/internal/app/delivery/http/middlewares"
	"medsafe-service/internal/app/services/core/referti"

	"github.com/go-chi/chi/v5"
)

func attachRefertoRoutes(router chi.Router, middlewares *middlewares.Middlewares, refertoController *referti.RefertoController) {
	router.With(middlewares.Authentication).Post("/", refertoController.CreateReferto)
	router.With(middlewares.Authentication).Put("/{refertoID}", refertoController.EditReferto)
	router.With(middlewares.Authentication).Delete("/{refertoID}", refertoController.DeleteReferto)

	router.With(middlewares.Authentication).Get("/", refertoController.GetAllReferti)
	router.With(middlewares.Authentication).Get("/{refertoID}", refertoController.GetRefertoByID)
	router.With(middlewares.Authentication).Get("/codice-fiscale", refertoController.GetRefertiByCodiceFiscale)
	router.With(middlewares.Authentication).Get("/nome-file", refertoController.GetRefertoByNomeFile)
	router.With(middlewares.Authentication).Get("/tipo-esame", refertoController.GetRefertiByTipoEsame)
	router.With(middlewares.Authentication).Get("/autore", refertoController.GetRefertiByAutoreEmail)

	router.With(middlewares.Authentication).Get("/{refertoID}/pdf", refertoController.DownloadPdf)
	router.With(middlewares.Authentication).Get("/{refertoID}/immagine", refertoController.DownloadImmagine)
}
