package server

import (
	"portal/internal/config"
	"portal/internal/handler"
	"portal/internal/middleware"
	"portal/internal/repository"
	"portal/internal/service"
	"portal/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	codec  *token.Codec
	logger *zap.Logger
	log    *logrus.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, codec *token.Codec, logger *zap.Logger, log *logrus.Logger) *Server {
	router := gin.Default()
	router.LoadHTMLGlob(cfg.Server.Templates)

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		codec:  codec,
		logger: logger,
		log:    log,
	}

	// Setup routes
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	userRepo := repository.NewUserRepository(s.db, s.log)
	authService := service.NewAuthService(userRepo, s.codec, s.logger)
	gate := service.NewGate(s.codec, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.cfg.Session.CookieName, s.cfg.Session.LifetimeSeconds, s.log)
	pageHandler := handler.NewPageHandler(gate, userRepo, s.cfg.Session.CookieName, s.log)

	s.router.Use(middleware.RequestID(s.logger))

	// Unknown routes and denied admin pages must be indistinguishable.
	s.router.NoRoute(handler.NotFound)

	s.router.GET("/", pageHandler.Index)
	s.router.GET("/login", authHandler.LoginPage)
	s.router.POST("/login", authHandler.Login)
	s.router.POST("/logout", authHandler.Logout)
	s.router.GET("/admin/:page", pageHandler.Admin)
}

func (s *Server) Run(addr string) {
	s.log.Infof("Server starting on port %s...", addr)
	if err := s.router.Run(addr); err != nil {
		s.log.Fatalf("Server failed to start: %v", err)
	}
}
