package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mperezcarrasco/wildfires/internal/config"
	"github.com/mperezcarrasco/wildfires/internal/feed"
	"github.com/mperezcarrasco/wildfires/internal/logger"
)

// Server is the thin HTTP layer over the feed pipeline.
type Server struct {
	cfg  *config.Config
	feed *feed.Service
	log  *logger.Logger
}

// New creates a server around a feed service.
func New(cfg *config.Config, feedService *feed.Service, log *logger.Logger) *Server {
	return &Server{
		cfg:  cfg,
		feed: feedService,
		log:  log.WithComponent("server"),
	}
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/fires", s.HandleFires)
	mux.HandleFunc("/healthz", s.HandleHealth)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}
