// Package server exposes the yield simulator over HTTP for the web UI.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/abritton/policy-yield/internal/config"
	"github.com/abritton/policy-yield/internal/simulation"
	"github.com/abritton/policy-yield/pkg/constants"
	"github.com/abritton/policy-yield/pkg/histogram"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and the
// simulation API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Simulation API endpoint
	mux.HandleFunc("/api/simulate", h.handleSimulate)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

// simulateRequest carries optional parameter overrides; absent fields keep
// their defaults. Pointers distinguish "not sent" from a literal zero,
// which matters for the hazard bounds.
type simulateRequest struct {
	Policies    *int     `json:"policies"`
	Premium     *float64 `json:"premium"`
	ClaimAmount *float64 `json:"claimAmount"`
	Trials      *int     `json:"trials"`
	HazardMin   *float64 `json:"hazardMin"`
	HazardMax   *float64 `json:"hazardMax"`
	Seed        *int64   `json:"seed"`
}

type simulateResponse struct {
	Params    config.Simulation  `json:"params"`
	Summary   simulation.Summary `json:"summary"`
	Histogram []histogram.Bin    `json:"histogram"`
	Trials    int                `json:"trials"`
	Duration  string             `json:"duration"`
}

func (h *handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var payload simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode parameters: %v", err))
		return
	}

	cfg := config.DefaultConfiguration().Simulation
	applyOverrides(&cfg, payload)

	if err := cfg.Validate(); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	samples, err := simulation.Run(h.logger, cfg, nil)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("simulation failed: %v", err))
		return
	}

	summary, err := simulation.Summarize(samples)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("summarization failed: %v", err))
		return
	}

	h.logger.Info("simulation complete",
		zap.String("op", "server.handleSimulate"),
		zap.Int("trials", cfg.Trials),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, simulateResponse{
		Params:    cfg,
		Summary:   summary,
		Histogram: histogram.Compute(samples, constants.HistogramBins),
		Trials:    len(samples),
		Duration:  time.Since(start).String(),
	})
}

func applyOverrides(cfg *config.Simulation, payload simulateRequest) {
	if payload.Policies != nil {
		cfg.Policies = *payload.Policies
	}
	if payload.Premium != nil {
		cfg.Premium = *payload.Premium
	}
	if payload.ClaimAmount != nil {
		cfg.ClaimAmount = *payload.ClaimAmount
	}
	if payload.Trials != nil {
		cfg.Trials = *payload.Trials
	}
	if payload.HazardMin != nil {
		cfg.HazardMin = *payload.HazardMin
	}
	if payload.HazardMax != nil {
		cfg.HazardMax = *payload.HazardMax
	}
	if payload.Seed != nil {
		cfg.Seed = *payload.Seed
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	if h.logger != nil {
		h.logger.Warn(msg,
			zap.String("op", "server.handleSimulate"),
			zap.Int("status", status),
		)
	}
	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
