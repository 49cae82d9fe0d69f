package bootstrap

import (
	"database/sql"
	"net/http"

	"github.com/croftbar/authd/internal/application/auth"
	"github.com/croftbar/authd/internal/config"
	"github.com/croftbar/authd/internal/infrastructure/db/postgres"
	"github.com/croftbar/authd/internal/infrastructure/messaging/rabbitmq"
	"github.com/croftbar/authd/internal/infrastructure/security"
	"github.com/croftbar/authd/internal/logger"
	"github.com/croftbar/authd/internal/transport/http/handlers"
	"github.com/croftbar/authd/internal/transport/http/middleware"
	"github.com/croftbar/authd/internal/transport/http/response"
	"github.com/croftbar/authd/internal/transport/http/router"
)

/*
========================
 Public entry (prod)
========================
*/

func NewServer() (*http.Server, func(), error) {
	return newServer(defaultDeps())
}

// NewServerWithDeps allows injecting dependencies for testing.
func NewServerWithDeps(deps Deps) (*http.Server, func(), error) {
	return newServer(deps)
}

/*
========================
 Dependency injection
========================
*/

type Deps struct {
	LoadConfig func() (*config.Config, error)

	NewDB func(dsn string) (*sql.DB, error)

	NewPublisher func(url string) (Publisher, error)
}

// Publisher is the broker-backed event publisher plus its lifecycle.
type Publisher interface {
	auth.EventPublisher
	Close() error
}

func defaultDeps() Deps {
	return Deps{
		LoadConfig: config.Load,
		NewDB:      config.NewDB,
		NewPublisher: func(url string) (Publisher, error) {
			return rabbitmq.NewPublisher(url)
		},
	}
}

/*
========================
 Core bootstrap logic
========================
*/

func newServer(deps Deps) (*http.Server, func(), error) {
	// 0) config
	cfg, err := deps.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	// 1) db
	db, err := deps.NewDB(cfg.DBAddr)
	if err != nil {
		return nil, nil, err
	}

	cleanupFns := []func(){
		func() { _ = db.Close() },
	}

	userRepo := postgres.NewUserRepo(db)

	// 2) security
	hasher := security.NewArgon2Hasher(security.DefaultArgon2Params())
	issuer := security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)

	// 3) event publisher (best-effort; the service runs without it)
	var pub auth.EventPublisher
	if cfg.RabbitURL != "" && deps.NewPublisher != nil {
		p, err := deps.NewPublisher(cfg.RabbitURL)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("rabbitmq unavailable; events disabled")
		} else {
			logger.Logger.Info().Msg("rabbitmq connected")
			pub = p
			cleanupFns = append(cleanupFns, func() { _ = p.Close() })
		}
	}

	// 4) application service + transport
	svc := auth.NewService(userRepo, hasher, issuer, pub)

	mux, err := router.New(router.Deps{
		Health: handlers.NewHealthHandler(),
		Auth:   handlers.NewAuthHandler(svc),
		AuthMW: middleware.Auth(issuer, svc, response.WriteError),
	})
	if err != nil {
		runCleanup(cleanupFns)
		return nil, nil, err
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return srv, func() { runCleanup(cleanupFns) }, nil
}

func runCleanup(fns []func()) {
	// reverse order: last opened, first closed
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
