package setup

import (
	"github.com/pattarin-dev/webboard/internal/config"
	"github.com/pattarin-dev/webboard/internal/handler"
	"github.com/pattarin-dev/webboard/internal/jwt"
	"github.com/pattarin-dev/webboard/internal/middleware"
	"github.com/pattarin-dev/webboard/internal/service"
	"github.com/pattarin-dev/webboard/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService)
	thread := service.NewThread(storage)

	h := handler.New(auth, thread, storage)
	authMw := middleware.NewAuth(jwtService)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		Jwt:            jwtService,
		AuthMiddleware: authMw,
	}, nil
}
