package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/mperezcarrasco/wildfires/internal/config"
	"github.com/mperezcarrasco/wildfires/internal/feed"
	"github.com/mperezcarrasco/wildfires/internal/models"
)

var jsonEnc = jsoniter.ConfigCompatibleWithStandardLibrary

// HandleFires serves the fire detection feed. The days query parameter
// defaults to the configured window and is clamped inside the service.
func (s *Server) HandleFires(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	days := 0
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil {
			days = parsed
		}
	}

	result, err := s.feed.GetFireFeed(r.Context(), days)
	if err != nil {
		if errors.Is(err, feed.ErrMapKeyMissing) {
			s.log.Error("Feed request rejected", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":     err.Error(),
				"fires":     []models.FireDetection{},
				"count":     0,
				"timestamp": models.FormatTimestamp(time.Now()),
			})
			return
		}
		s.log.Error("Feed cycle failed", err)
		http.Error(w, "Feed cycle failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleHealth provides the health check endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	cached, generated := s.feed.Cache().Snapshot()
	health := map[string]any{
		"status":    "healthy",
		"version":   config.Version(),
		"region":    s.cfg.RegionName,
		"timestamp": models.FormatTimestamp(time.Now()),
		"cache": map[string]any{
			"detections": len(cached),
			"generated":  models.FormatTimestamp(generated),
		},
	}

	writeJSON(w, http.StatusOK, health)
}

// HandleRoot serves the embedded visualization page.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	jsonEnc.NewEncoder(w).Encode(payload)
}
