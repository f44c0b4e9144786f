package referti

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/constvars"
	"medsafe-service/internal/pkg/dto/requests"
	"medsafe-service/internal/pkg/dto/responses"
	"medsafe-service/internal/pkg/exceptions"
	"medsafe-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	operationEdit   = "edit"
	operationDelete = "delete"
)

type refertoUsecase struct {
	RefertoRepository contracts.RefertoRepository
	Authorizer        contracts.Authorizer
	PdfService        contracts.PdfService
	ObjectStorage     contracts.ObjectStorage
	Log               *zap.Logger
}

var (
	refertoUsecaseInstance contracts.RefertoUsecase
	onceRefertoUsecase     sync.Once
)

func NewRefertoUsecase(
	refertoRepository contracts.RefertoRepository,
	authorizer contracts.Authorizer,
	pdfService contracts.PdfService,
	objectStorage contracts.ObjectStorage,
	logger *zap.Logger,
) contracts.RefertoUsecase {
	onceRefertoUsecase.Do(func() {
		refertoUsecaseInstance = &refertoUsecase{
			RefertoRepository: refertoRepository,
			Authorizer:        authorizer,
			PdfService:        pdfService,
			ObjectStorage:     objectStorage,
			Log:               logger,
		}
	})
	return refertoUsecaseInstance
}

// CreateReferto uploads the diagnostic artifact, renders the referto PDF and
// only then persists the record. A failure before persistence leaves no record
// behind; uploaded blobs without a record are tolerated and garbage.
func (uc *refertoUsecase) CreateReferto(ctx context.Context, caller models.Caller, request *requests.CreateReferto, image *requests.UploadedFile) (*responses.Referto, error) {
	if err := uc.Authorizer.CanCreate(ctx, caller); err != nil {
		return nil, err
	}

	tipoEsame, err := models.ParseTipoEsame(request.TipoEsame)
	if err != nil {
		return nil, err
	}

	referto := &models.Referto{
		NomePaziente:    request.NomePaziente,
		CodiceFiscale:   request.CodiceFiscale,
		TipoEsame:       tipoEsame,
		TestoReferto:    request.TestoReferto,
		Conclusioni:     request.Conclusioni,
		NomeFile:        request.NomeFile,
		AutoreEmail:     caller.Email,
		DataCaricamento: time.Now(),
	}

	imageURL, err := uc.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}
	referto.FileUrlImmagine = imageURL

	pdfURL, err := uc.renderAndUploadPdf(ctx, referto)
	if err != nil {
		return nil, err
	}
	referto.UrlPdfGenerato = pdfURL

	saved, err := uc.RefertoRepository.Save(ctx, referto)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("referto created",
		zap.Int("referto_id", saved.ID),
		zap.String("autore_email", saved.AutoreEmail),
		zap.String("nome_file", saved.NomeFile),
	)
	return responses.NewReferto(saved), nil
}

// EditReferto reports false when no referto has the given id. The stored
// artifact is replaced only when a new one is uploaded, but the PDF is always
// regenerated because any patched field may appear in it.
func (uc *refertoUsecase) EditReferto(ctx context.Context, caller models.Caller, refertoID int, request *requests.UpdateReferto, image *requests.UploadedFile) (bool, error) {
	referto, err := uc.RefertoRepository.FindByID(ctx, refertoID)
	if err != nil {
		return false, err
	}
	if referto == nil {
		return false, nil
	}

	if err := uc.Authorizer.CanMutate(ctx, caller, referto, operationEdit); err != nil {
		return false, err
	}

	oldImageURL := referto.FileUrlImmagine
	oldPdfURL := referto.UrlPdfGenerato

	if err := applyPatch(referto, request); err != nil {
		return false, err
	}

	if image != nil {
		imageURL, err := uc.uploadImage(ctx, image)
		if err != nil {
			return false, err
		}
		referto.FileUrlImmagine = imageURL
		uc.cleanupObject(ctx, oldImageURL)
	}

	pdfURL, err := uc.renderAndUploadPdf(ctx, referto)
	if err != nil {
		return false, err
	}
	referto.UrlPdfGenerato = pdfURL
	uc.cleanupObject(ctx, oldPdfURL)

	if err := uc.RefertoRepository.Update(ctx, referto); err != nil {
		return false, err
	}

	uc.Log.Info("referto updated",
		zap.Int("referto_id", referto.ID),
		zap.String("caller", caller.Email),
		zap.Bool("image_replaced", image != nil),
	)
	return true, nil
}

// RemoveReferto reports false when no referto has the given id. Blob removal
// is best effort, the record delete is what decides the outcome.
func (uc *refertoUsecase) RemoveReferto(ctx context.Context, caller models.Caller, refertoID int) (bool, error) {
	referto, err := uc.RefertoRepository.FindByID(ctx, refertoID)
	if err != nil {
		return false, err
	}
	if referto == nil {
		return false, nil
	}

	if err := uc.Authorizer.CanMutate(ctx, caller, referto, operationDelete); err != nil {
		return false, err
	}

	uc.cleanupObject(ctx, referto.FileUrlImmagine)
	uc.cleanupObject(ctx, referto.UrlPdfGenerato)

	if err := uc.RefertoRepository.DeleteByID(ctx, refertoID); err != nil {
		return false, err
	}

	uc.Log.Info("referto deleted",
		zap.Int("referto_id", refertoID),
		zap.String("caller", caller.Email),
	)
	return true, nil
}

func (uc *refertoUsecase) GetRefertoByID(ctx context.Context, refertoID int) (*responses.Referto, error) {
	referto, err := uc.RefertoRepository.FindByID(ctx, refertoID)
	if err != nil {
		return nil, err
	}
	if referto == nil {
		return nil, exceptions.ErrRefertoNotFoundByID(refertoID)
	}
	return responses.NewReferto(referto), nil
}

func (uc *refertoUsecase) GetRefertiByCodiceFiscale(ctx context.Context, codiceFiscale string) ([]responses.Referto, error) {
	referti, err := uc.RefertoRepository.FindByCodiceFiscale(ctx, codiceFiscale)
	if err != nil {
		return nil, err
	}
	if len(referti) == 0 {
		return nil, exceptions.ErrRefertoNotFoundBy("codice fiscale", codiceFiscale)
	}
	return responses.NewReferti(referti), nil
}

func (uc *refertoUsecase) GetRefertoByNomeFile(ctx context.Context, nomeFile string) (*responses.Referto, error) {
	referto, err := uc.RefertoRepository.FindByNomeFile(ctx, nomeFile)
	if err != nil {
		return nil, err
	}
	if referto == nil {
		return nil, exceptions.ErrRefertoNotFoundBy("nome file", nomeFile)
	}
	return responses.NewReferto(referto), nil
}

func (uc *refertoUsecase) GetRefertiByTipoEsame(ctx context.Context, tipoEsame models.TipoEsame) ([]responses.Referto, error) {
	referti, err := uc.RefertoRepository.FindByTipoEsame(ctx, tipoEsame)
	if err != nil {
		return nil, err
	}
	if len(referti) == 0 {
		return nil, exceptions.ErrRefertoNotFoundBy("tipo esame", string(tipoEsame))
	}
	return responses.NewReferti(referti), nil
}

func (uc *refertoUsecase) GetRefertiByAutoreEmail(ctx context.Context, autoreEmail string) ([]responses.Referto, error) {
	referti, err := uc.RefertoRepository.FindByAutoreEmail(ctx, autoreEmail)
	if err != nil {
		return nil, err
	}
	if len(referti) == 0 {
		return nil, exceptions.ErrRefertoNotFoundBy("autore", autoreEmail)
	}
	return responses.NewReferti(referti), nil
}

func (uc *refertoUsecase) GetAllReferti(ctx context.Context) ([]responses.Referto, error) {
	referti, err := uc.RefertoRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewReferti(referti), nil
}

func (uc *refertoUsecase) DownloadPdf(ctx context.Context, refertoID int) (*responses.DownloadFile, error) {
	referto, err := uc.RefertoRepository.FindByID(ctx, refertoID)
	if err != nil {
		return nil, err
	}
	if referto == nil {
		return nil, exceptions.ErrRefertoNotFoundByID(refertoID)
	}

	content, err := uc.downloadObject(ctx, referto.UrlPdfGenerato)
	if err != nil {
		return nil, err
	}

	return &responses.DownloadFile{
		FileName:    utils.StripExtension(referto.NomeFile) + ".pdf",
		ContentType: constvars.MIMEApplicationPDF,
		Content:     content,
	}, nil
}

func (uc *refertoUsecase) DownloadImmagine(ctx context.Context, refertoID int) (*responses.DownloadFile, error) {
	referto, err := uc.RefertoRepository.FindByID(ctx, refertoID)
	if err != nil {
		return nil, err
	}
	if referto == nil {
		return nil, exceptions.ErrRefertoNotFoundByID(refertoID)
	}

	objectPath := uc.ObjectStorage.ObjectPath(referto.FileUrlImmagine)
	content, err := uc.downloadObject(ctx, referto.FileUrlImmagine)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(objectPath)
	return &responses.DownloadFile{
		FileName:    utils.StripExtension(referto.NomeFile) + ext,
		ContentType: utils.ContentTypeForExtension(ext),
		Content:     content,
	}, nil
}

func (uc *refertoUsecase) uploadImage(ctx context.Context, image *requests.UploadedFile) (string, error) {
	objectName := fmt.Sprintf("%s/%s", constvars.ObjectPrefixImages, utils.GenerateUniqueObjectName(image.FileName))
	return uc.ObjectStorage.Upload(ctx, objectName, image.Data, image.ContentType)
}

func (uc *refertoUsecase) renderAndUploadPdf(ctx context.Context, referto *models.Referto) (string, error) {
	document, err := uc.PdfService.GeneratePdf(ctx, referto)
	if err != nil {
		return "", err
	}

	pdfName := utils.StripExtension(referto.NomeFile) + ".pdf"
	objectName := fmt.Sprintf("%s/%s", constvars.ObjectPrefixDocuments, utils.GenerateUniqueObjectName(pdfName))
	return uc.ObjectStorage.Upload(ctx, objectName, document, constvars.MIMEApplicationPDF)
}

func (uc *refertoUsecase) downloadObject(ctx context.Context, objectURL string) ([]byte, error) {
	objectPath := uc.ObjectStorage.ObjectPath(objectURL)
	if objectPath == "" {
		return nil, exceptions.ErrMinioObjectEmpty(objectURL)
	}

	content, err := uc.ObjectStorage.Download(ctx, objectPath)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, exceptions.ErrMinioObjectEmpty(objectPath)
	}
	return content, nil
}

// cleanupObject removes a superseded blob. Deletion failures are logged and
// swallowed, the record stays the source of truth.
func (uc *refertoUsecase) cleanupObject(ctx context.Context, objectURL string) {
	if objectURL == "" {
		return
	}
	objectPath := uc.ObjectStorage.ObjectPath(objectURL)
	if err := uc.ObjectStorage.Delete(ctx, objectPath); err != nil {
		uc.Log.Warn("could not remove superseded object",
			zap.String("object_path", objectPath),
			zap.Error(err),
		)
	}
}

// applyPatch copies the non-empty patch fields onto the stored referto.
// Identifier, author and upload timestamp are never touched.
func applyPatch(referto *models.Referto, request *requests.UpdateReferto) error {
	if request.TipoEsame != "" {
		tipoEsame, err := models.ParseTipoEsame(request.TipoEsame)
		if err != nil {
			return err
		}
		referto.TipoEsame = tipoEsame
	}
	if request.NomePaziente != "" {
		referto.NomePaziente = request.NomePaziente
	}
	if request.CodiceFiscale != "" {
		referto.CodiceFiscale = request.CodiceFiscale
	}
	if request.TestoReferto != "" {
		referto.TestoReferto = request.TestoReferto
	}
	if request.Conclusioni != "" {
		referto.Conclusioni = request.Conclusioni
	}
	if request.NomeFile != "" {
		referto.NomeFile = request.NomeFile
	}
	return nil
}
