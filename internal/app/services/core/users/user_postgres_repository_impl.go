package users

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

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		userPostgresRepositoryInstance = &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return userPostgresRepositoryInstance
}

func (r *userPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, queries.UserFindByEmail, email).
		Scan(&user.ID, &user.Email, &user.FullName, &user.Genere, &user.Specializzazione, &user.Role, &user.Enabled, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &user, nil
}

func (r *userPostgresRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, queries.UserFindAll)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var model models.User
		if err := rows.Scan(&model.ID, &model.Email, &model.FullName, &model.Genere, &model.Specializzazione, &model.Role, &model.Enabled, &model.CreatedAt); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		users = append(users, model)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return users, nil
}

func (r *userPostgresRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.DB.QueryRowContext(ctx, queries.UserInsert,
		user.Email, user.FullName, user.Genere, user.Specializzazione, user.Role, user.Enabled, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return user, nil
}

func (r *userPostgresRepository) Update(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, queries.UserUpdate,
		user.ID, user.FullName, user.Genere, user.Specializzazione, user.Role, user.Enabled)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) SetEnabled(ctx context.Context, id int, enabled bool) (bool, error) {
	result, err := r.DB.ExecContext(ctx, queries.UserSetEnabled, id, enabled)
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, exceptions.ErrPostgresDBUpdateData(err)
	}
	return affected > 0, nil
}
