package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/kroawen/nest-auth-example/internal/config"
	"github.com/kroawen/nest-auth-example/internal/handler"
	"github.com/kroawen/nest-auth-example/internal/repository"
	"github.com/kroawen/nest-auth-example/internal/server"
	"github.com/kroawen/nest-auth-example/internal/usecase"
	"github.com/kroawen/nest-auth-example/shared/auth"
	"github.com/kroawen/nest-auth-example/shared/logger"
	"github.com/kroawen/nest-auth-example/shared/middleware"
	"github.com/kroawen/nest-auth-example/shared/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", false)
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to ping mongodb")
	}

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &log, db)
	todoRepo := repository.NewTodoMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Issuer, cfg.Token.Issuer)

	validate, err := validator.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build validator")
	}

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth, cfg, &log)
	profileUsecase := usecase.NewProfileUsecase(userRepo)
	todoUsecase := usecase.NewTodoUsecase(todoRepo)

	authHandler := handler.NewAuthHandler(authUsecase, validate, &log)
	profileHandler := handler.NewProfileHandler(profileUsecase, validate, &log)
	todoHandler := handler.NewTodoHandler(todoUsecase, validate, &log)

	guard := middleware.RequireAuth(jwtAuth, cfg.Token.Secret, userRepo, &log)
	router := server.NewRouter(log, guard, authHandler, profileHandler, todoHandler)

	srv := server.New(cfg, &log, router)
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
