package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-seller-bootstrap/bootstrap"
	"github.com/jrsteele09/go-seller-bootstrap/internal/config"
	"github.com/jrsteele09/go-seller-bootstrap/platform/identity"
	"github.com/rs/zerolog"
)

// StatusSource provides the result of the startup bootstrap.
type StatusSource interface {
	LastResult() (bootstrap.Result, bool)
}

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.EnvConfig
	status StatusSource
	auth   identity.Service
	bucket string // Storage bucket name, empty when storage is disabled
	logger zerolog.Logger
}

func New(config config.EnvConfig, status StatusSource, auth identity.Service, bucket string, logger zerolog.Logger) *Server {
	s := &Server{
		env:    config.GetEnv(),
		mux:    http.NewServeMux(),
		config: config,
		status: status,
		auth:   auth,
		bucket: bucket,
		logger: logger,
	}
	s.initRoutes()
	s.logRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			s.logRoute(parts[0], parts[1])
		} else {
			s.logRoute("", parts[0])
		}
	}
}

func (s *Server) logRoute(method, path string) {
	paddedMethod := fmt.Sprintf(" %-7s", method)
	color, ok := methodColors[method]
	if !ok {
		color = Gray
	}
	s.logger.Info().Msgf("[%s] %s", color+paddedMethod+ResetColor, path)
}
