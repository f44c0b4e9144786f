package referti

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/app/delivery/http/middlewares"
	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/constvars"
	"medsafe-service/internal/pkg/dto/requests"
	"medsafe-service/internal/pkg/exceptions"
	"medsafe-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Multipart parts above this stay on disk instead of memory.
const maxMultipartMemory = 32 << 20

type RefertoController struct {
	Log            *zap.Logger
	RefertoUsecase contracts.RefertoUsecase
}

func NewRefertoController(logger *zap.Logger, refertoUsecase contracts.RefertoUsecase) *RefertoController {
	return &RefertoController{
		Log:            logger,
		RefertoUsecase: refertoUsecase,
	}
}

func (ctrl *RefertoController) CreateReferto(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := refertoFormFields(r)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	image, err := readUploadedFile(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if image == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(http.ErrMissingFile))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.RefertoUsecase.CreateReferto(ctx, caller, request, image)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRefertoSuccessMessage, response)
}

func (ctrl *RefertoController) EditReferto(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	refertoID, err := refertoIDFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	fields := refertoFormFields(r)
	request := &requests.UpdateReferto{
		NomePaziente:  fields.NomePaziente,
		CodiceFiscale: fields.CodiceFiscale,
		TipoEsame:     fields.TipoEsame,
		TestoReferto:  fields.TestoReferto,
		Conclusioni:   fields.Conclusioni,
		NomeFile:      fields.NomeFile,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	image, err := readUploadedFile(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	updated, err := ctrl.RefertoUsecase.EditReferto(ctx, caller, refertoID, request, image)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !updated {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRefertoNotFoundByID(refertoID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateRefertoSuccessMessage, nil)
}

func (ctrl *RefertoController) DeleteReferto(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	refertoID, err := refertoIDFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := ctrl.RefertoUsecase.RemoveReferto(ctx, caller, refertoID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !deleted {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRefertoNotFoundByID(refertoID))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteRefertoSuccessMessage, nil)
}

func (ctrl *RefertoController) GetRefertoByID(w http.ResponseWriter, r *http.Request) {
	refertoID, err := refertoIDFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RefertoUsecase.GetRefertoByID(ctx, refertoID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRefertoSuccessMessage, response)
}

func (ctrl *RefertoController) GetAllReferti(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RefertoUsecase.GetAllReferti(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRefertiSuccessMessage, response)
}

func (ctrl *RefertoController) GetRefertiByCodiceFiscale(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get(constvars.QueryParamValue)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RefertoUsecase.GetRefertiByCodiceFiscale(ctx, value)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRefertiSuccessMessage, response)
}

func (ctrl *RefertoController) GetRefertoByNomeFile(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get(constvars.QueryParamValue)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RefertoUsecase.GetRefertoByNomeFile(ctx, value)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRefertoSuccessMessage, response)
}

func (ctrl *RefertoController) GetRefertiByTipoEsame(w http.ResponseWriter, r *http.Request) {
	tipoEsame, err := models.ParseTipoEsame(r.URL.Query().Get(constvars.QueryParamValue))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RefertoUsecase.GetRefertiByTipoEsame(ctx, tipoEsame)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRefertiSuccessMessage, response)
}

func (ctrl *RefertoController) GetRefertiByAutoreEmail(w http.ResponseWriter, r *http.Request) {
	value := r.URL.Query().Get(constvars.QueryParamValue)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.RefertoUsecase.GetRefertiByAutoreEmail(ctx, value)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRefertiSuccessMessage, response)
}

func (ctrl *RefertoController) DownloadPdf(w http.ResponseWriter, r *http.Request) {
	refertoID, err := refertoIDFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	file, err := ctrl.RefertoUsecase.DownloadPdf(ctx, refertoID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, file)
}

func (ctrl *RefertoController) DownloadImmagine(w http.ResponseWriter, r *http.Request) {
	refertoID, err := refertoIDFromURL(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	file, err := ctrl.RefertoUsecase.DownloadImmagine(ctx, refertoID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildFileResponse(w, file)
}

func refertoIDFromURL(r *http.Request) (int, error) {
	raw := chi.URLParam(r, constvars.URLParamRefertoID)
	refertoID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, constvars.URLParamRefertoID)
	}
	return refertoID, nil
}

func refertoFormFields(r *http.Request) *requests.CreateReferto {
	return &requests.CreateReferto{
		NomePaziente:  r.FormValue(constvars.FormFieldNomePaziente),
		CodiceFiscale: r.FormValue(constvars.FormFieldCodiceFiscale),
		TipoEsame:     r.FormValue(constvars.FormFieldTipoEsame),
		TestoReferto:  r.FormValue(constvars.FormFieldTestoReferto),
		Conclusioni:   r.FormValue(constvars.FormFieldConclusioni),
		NomeFile:      r.FormValue(constvars.FormFieldNomeFile),
	}
}

// readUploadedFile returns nil when the request carries no file part.
func readUploadedFile(r *http.Request) (*requests.UploadedFile, error) {
	file, header, err := r.FormFile(constvars.FormFieldFile)
	if err == http.ErrMissingFile {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	contentType, err := utils.ValidateImageFileName(header.Filename)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	return &requests.UploadedFile{
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
