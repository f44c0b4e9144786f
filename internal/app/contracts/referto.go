package contracts

import (
	"context"

	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/dto/requests"
	"medsafe-service/internal/pkg/dto/responses"
)

type RefertoRepository interface {
	FindByID(ctx context.Context, id int) (*models.Referto, error)
	Save(ctx context.Context, referto *models.Referto) (*models.Referto, error)
	Update(ctx context.Context, referto *models.Referto) error
	DeleteByID(ctx context.Context, id int) error
	FindByCodiceFiscale(ctx context.Context, codiceFiscale string) ([]models.Referto, error)
	FindByNomeFile(ctx context.Context, nomeFile string) (*models.Referto, error)
	FindByTipoEsame(ctx context.Context, tipoEsame models.TipoEsame) ([]models.Referto, error)
	FindByAutoreEmail(ctx context.Context, autoreEmail string) ([]models.Referto, error)
	FindAll(ctx context.Context) ([]models.Referto, error)
}

// RefertoUsecase orchestrates authorization, artifact uploads, PDF
// generation and persistence for the referto lifecycle.
type RefertoUsecase interface {
	CreateReferto(ctx context.Context, caller models.Caller, request *requests.CreateReferto, image *requests.UploadedFile) (*responses.Referto, error)
	EditReferto(ctx context.Context, caller models.Caller, refertoID int, request *requests.UpdateReferto, image *requests.UploadedFile) (bool, error)
	RemoveReferto(ctx context.Context, caller models.Caller, refertoID int) (bool, error)

	GetRefertoByID(ctx context.Context, refertoID int) (*responses.Referto, error)
	GetRefertiByCodiceFiscale(ctx context.Context, codiceFiscale string) ([]responses.Referto, error)
	GetRefertoByNomeFile(ctx context.Context, nomeFile string) (*responses.Referto, error)
	GetRefertiByTipoEsame(ctx context.Context, tipoEsame models.TipoEsame) ([]responses.Referto, error)
	GetRefertiByAutoreEmail(ctx context.Context, autoreEmail string) ([]responses.Referto, error)
	GetAllReferti(ctx context.Context) ([]responses.Referto, error)

	DownloadPdf(ctx context.Context, refertoID int) (*responses.DownloadFile, error)
	DownloadImmagine(ctx context.Context, refertoID int) (*responses.DownloadFile, error)
}
