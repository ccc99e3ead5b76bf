// Package server exposes the skill gap analysis over HTTP.
package server

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/skillscope/skillscope/internal/intake"
	"github.com/skillscope/skillscope/internal/session"
)

// Deps carries everything the HTTP layer needs to serve requests.
type Deps struct {
	Logger *zap.Logger
	Intake *intake.Adapter
	Store  *session.Store

	// BodyLimit caps the accepted request body size in bytes. Zero keeps
	// fiber's default.
	BodyLimit int
}

type Server struct {
	app    *fiber.App
	logger *zap.Logger
}

func New(deps Deps) *Server {
	cfg := fiber.Config{
		AppName: "skillscope",
	}
	if deps.BodyLimit > 0 {
		cfg.BodyLimit = deps.BodyLimit
	}

	app := fiber.New(cfg)
	app.Use(recoverPanics(deps.Logger))
	app.Use(accessLog(deps.Logger))

	newHandlers(deps.Intake, deps.Store, deps.Logger).registerRoutes(app)

	return &Server{app: app, logger: deps.Logger}
}

func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App returns the underlying fiber application, used by tests to drive
// requests without a listener.
func (s *Server) App() *fiber.App {
	return s.app
}
