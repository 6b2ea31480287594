package app

import (
	"net/http"

	"gorm.io/gorm"
	"vet-registry-go/internal/config"
	"vet-registry-go/internal/db"
	chipsdomain "vet-registry-go/internal/domain/chips"
	ownersdomain "vet-registry-go/internal/domain/owners"
	petsdomain "vet-registry-go/internal/domain/pets"
	chipsrepo "vet-registry-go/internal/repository/postgres/chips"
	ownersrepo "vet-registry-go/internal/repository/postgres/owners"
	petsrepo "vet-registry-go/internal/repository/postgres/pets"
	"vet-registry-go/internal/transport/httpserver"
	"vet-registry-go/internal/transport/httpserver/handler"
	"vet-registry-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	ownerRepo := ownersrepo.NewPostgres(dbConn)
	petRepo := petsrepo.NewPostgres(dbConn)
	chipRepo := chipsrepo.NewPostgres(dbConn)

	ownerService := ownersdomain.NewService(ownerRepo, petRepo)
	petService := petsdomain.NewService(petRepo, chipRepo, ownerRepo)
	chipService := chipsdomain.NewService(chipRepo)

	log.Info("app: initializing http server")
	handlers := handler.New(ownerService, petService, chipService, log)
	router := httpserver.NewRouter(handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
