package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medsafe-service/internal/app/config"
	"medsafe-service/internal/app/delivery/http/middlewares"
	"medsafe-service/internal/app/delivery/http/routers"
	"medsafe-service/internal/app/drivers/database"
	"medsafe-service/internal/app/drivers/logger"
	minioDriver "medsafe-service/internal/app/drivers/storage"
	"medsafe-service/internal/app/services/core/authorization"
	"medsafe-service/internal/app/services/core/referti"
	"medsafe-service/internal/app/services/core/users"
	"medsafe-service/internal/app/services/shared/pdf"
	"medsafe-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	database.RunMigrations(driverConfig)
	minioClient := minioDriver.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(chiRouter, postgresDB, minioClient, log, driverConfig, internalConfig)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("addr", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(
	router *chi.Mux,
	postgresDB *sql.DB,
	minioClient *minio.Client,
	log *zap.Logger,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
) {
	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(log, internalConfig)

	// Shared services
	objectStorage := storage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName, log)

	// User
	userRepository := users.NewUserPostgresRepository(postgresDB, log)

	// Authorization
	authorizer := authorization.NewAuthorizationService(userRepository, log)

	userUsecase := users.NewUserUsecase(userRepository, authorizer, log)
	userController := users.NewUserController(log, userUsecase)

	// PDF
	pdfService := pdf.NewPdfService(userRepository, objectStorage, log)

	// Referto
	refertoRepository := referti.NewRefertoPostgresRepository(postgresDB, log)
	refertoUsecase := referti.NewRefertoUsecase(refertoRepository, authorizer, pdfService, objectStorage, log)
	refertoController := referti.NewRefertoController(log, refertoUsecase)

	routers.SetupRoutes(router, internalConfig, appMiddlewares, refertoController, userController)
}
