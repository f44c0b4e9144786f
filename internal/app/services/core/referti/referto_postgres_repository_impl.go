package referti

import (
	"context"
	"database/sql"
	"sync"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/app/models"
	"medsafe-service/internal/pkg/exceptions"
	"medsafe-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type refertoPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	refertoPostgresRepositoryInstance contracts.RefertoRepository
	onceRefertoPostgresRepository     sync.Once
)

func NewRefertoPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.RefertoRepository {
	onceRefertoPostgresRepository.Do(func() {
		refertoPostgresRepositoryInstance = &refertoPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return refertoPostgresRepositoryInstance
}

func (r *refertoPostgresRepository) FindByID(ctx context.Context, id int) (*models.Referto, error) {
	referto, err := r.scanOne(r.DB.QueryRowContext(ctx, queries.RefertoFindByID, id))
	if err != nil {
		return nil, err
	}
	return referto, nil
}

func (r *refertoPostgresRepository) Save(ctx context.Context, referto *models.Referto) (*models.Referto, error) {
	err := r.DB.QueryRowContext(ctx, queries.RefertoInsert,
		referto.NomePaziente,
		referto.CodiceFiscale,
		referto.TipoEsame,
		referto.TestoReferto,
		referto.Conclusioni,
		referto.FileUrlImmagine,
		referto.UrlPdfGenerato,
		referto.NomeFile,
		referto.AutoreEmail,
		referto.DataCaricamento,
	).Scan(&referto.ID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return referto, nil
}

func (r *refertoPostgresRepository) Update(ctx context.Context, referto *models.Referto) error {
	_, err := r.DB.ExecContext(ctx, queries.RefertoUpdate,
		referto.ID,
		referto.NomePaziente,
		referto.CodiceFiscale,
		referto.TipoEsame,
		referto.TestoReferto,
		referto.Conclusioni,
		referto.FileUrlImmagine,
		referto.UrlPdfGenerato,
		referto.NomeFile,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *refertoPostgresRepository) DeleteByID(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, queries.RefertoDeleteByID, id)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

func (r *refertoPostgresRepository) FindByCodiceFiscale(ctx context.Context, codiceFiscale string) ([]models.Referto, error) {
	return r.queryMany(ctx, queries.RefertoFindByCodiceFiscale, codiceFiscale)
}

func (r *refertoPostgresRepository) FindByNomeFile(ctx context.Context, nomeFile string) (*models.Referto, error) {
	referto, err := r.scanOne(r.DB.QueryRowContext(ctx, queries.RefertoFindByNomeFile, nomeFile))
	if err != nil {
		return nil, err
	}
	return referto, nil
}

func (r *refertoPostgresRepository) FindByTipoEsame(ctx context.Context, tipoEsame models.TipoEsame) ([]models.Referto, error) {
	return r.queryMany(ctx, queries.RefertoFindByTipoEsame, string(tipoEsame))
}

func (r *refertoPostgresRepository) FindByAutoreEmail(ctx context.Context, autoreEmail string) ([]models.Referto, error) {
	return r.queryMany(ctx, queries.RefertoFindByAutoreEmail, autoreEmail)
}

func (r *refertoPostgresRepository) FindAll(ctx context.Context) ([]models.Referto, error) {
	return r.queryMany(ctx, queries.RefertoFindAll)
}

func (r *refertoPostgresRepository) scanOne(row *sql.Row) (*models.Referto, error) {
	var referto models.Referto
	err := row.Scan(
		&referto.ID,
		&referto.NomePaziente,
		&referto.CodiceFiscale,
		&referto.TipoEsame,
		&referto.TestoReferto,
		&referto.Conclusioni,
		&referto.FileUrlImmagine,
		&referto.UrlPdfGenerato,
		&referto.NomeFile,
		&referto.AutoreEmail,
		&referto.DataCaricamento,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &referto, nil
}

func (r *refertoPostgresRepository) queryMany(ctx context.Context, query string, args ...any) ([]models.Referto, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var referti []models.Referto
	for rows.Next() {
		var referto models.Referto
		if err := rows.Scan(
			&referto.ID,
			&referto.NomePaziente,
			&referto.CodiceFiscale,
			&referto.TipoEsame,
			&referto.TestoReferto,
			&referto.Conclusioni,
			&referto.FileUrlImmagine,
			&referto.UrlPdfGenerato,
			&referto.NomeFile,
			&referto.AutoreEmail,
			&referto.DataCaricamento,
		); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		referti = append(referti, referto)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return referti, nil
}
