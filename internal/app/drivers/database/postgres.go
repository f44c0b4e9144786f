package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log"

	"medsafe-service/internal/app/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func NewPostgresDB(driverConfig *config.DriverConfig) *sql.DB {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DBName,
		driverConfig.PostgresDB.SSLMode)

	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		log.Fatalf("Failed to open postgres database connection: %s", err.Error())
	}

	err = db.Ping()
	if err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")

	return db
}

// RunMigrations applies the embedded SQL migrations.
func RunMigrations(driverConfig *config.DriverConfig) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		log.Fatalf("Failed to load embedded migrations: %s", err.Error())
	}

	databaseURL := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.DBName,
		driverConfig.PostgresDB.SSLMode)

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrations: %s", err.Error())
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Failed to apply migrations: %s", err.Error())
	}

	log.Println("Database migrations applied")
}
