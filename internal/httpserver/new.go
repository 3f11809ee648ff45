package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-assistant/config"
	"campus-assistant/pkg/gemini"
	"campus-assistant/pkg/log"
	"campus-assistant/pkg/supabase"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Shared clients
	supabaseClient *supabase.Client
	geminiClient   gemini.IGemini
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	SupabaseClient *supabase.Client
	GeminiClient   gemini.IGemini
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		cfg:            cfg.AppConfig,
		supabaseClient: cfg.SupabaseClient,
		geminiClient:   cfg.GeminiClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.supabaseClient == nil {
		return errors.New("supabase client is required")
	}
	if srv.geminiClient == nil {
		return errors.New("gemini client is required")
	}
	return nil
}
