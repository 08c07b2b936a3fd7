package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"doctor_app/internal/adapter/http/handlers"
	"doctor_app/internal/adapter/http/routes"
	"doctor_app/internal/adapter/persistence/repository"
	"doctor_app/internal/adapter/persistence/table"
	"doctor_app/internal/infrastructure/config"
	"doctor_app/internal/infrastructure/database"
	"doctor_app/internal/infrastructure/logger"
	"doctor_app/internal/usecase"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 10 * time.Second

type app struct {
	cfg    *config.Config
	router *routes.Router
	signup *handlers.SignupHandler
}

func bootstrap(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Pretty)

	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("dynamodb client: %w", err)
	}

	a := wire(cfg, ddb)
	log.Info().Str("component", "app").Int("routes", len(a.router.Routes())).Msg("application wired")
	return a, nil
}

func wire(cfg *config.Config, ddb table.DynamoAPI) *app {
	patientRepo := repository.NewPatientDynamoRepository(ddb, cfg.Tables.Patients)
	reportRepo := repository.NewReportDynamoRepository(ddb, cfg.Tables.Reports)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.Tables.Users)
	templateRepo := repository.NewTemplateDynamoRepository(ddb, cfg.Tables.Templates)

	patientUseCase := usecase.NewPatientUseCase(patientRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, patientRepo, cfg.Reports.DefaultPageSize)
	userUseCase := usecase.NewUserUseCase(userRepo, cfg.Users.DefaultTemplate)
	templateUseCase := usecase.NewTemplateUseCase(templateRepo)

	router := routes.NewRouter(routes.Table(routes.Handlers{
		Users:     handlers.NewUserHandler(userUseCase),
		Patients:  handlers.NewPatientHandler(patientUseCase),
		Reports:   handlers.NewReportHandler(reportUseCase),
		Templates: handlers.NewTemplateHandler(templateUseCase),
	}))

	return &app{
		cfg:    cfg,
		router: router,
		signup: handlers.NewSignupHandler(userUseCase),
	}
}

func runServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	if a.cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(a.cfg.Server.Port),
		Handler:           routes.NewEngine(a.router, a.cfg.Server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("component", "http.server").Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info().Str("component", "http.server").Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Str("component", "http.server").Msg("server stopped")
	return nil
}

func runLambda(ctx context.Context) error {
	a, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	lambda.Start(newLambdaHandler(a.router, a.signup))
	return nil
}
