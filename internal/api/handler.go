package api

import (
	"net/http"
	"runtime"

	"github.com/RyuKangIn/GPT-Killer-Killer/internal/config"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/detector"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils/httputils"
)

type Handler struct {
	logger   *utils.Logger
	detector *detector.Detector
	cfg      *config.Config
	metrics  *ServerMetrics
}

func NewHandler(
	logger *utils.Logger,
	det *detector.Detector,
	cfg *config.Config,
	metrics *ServerMetrics,
) *Handler {
	return &Handler{
		logger:   logger,
		detector: det,
		cfg:      cfg,
		metrics:  metrics,
	}
}

// HandleAnalyze scores one Korean text. Validation failures are user input
// errors; once the gate passes the pipeline cannot fail.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	var payload AnalyzeRequest
	if err := httputils.DecodeJSON(r, &payload, h.cfg.App.MaxBodyBytes); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		httputils.HandleError(w, err)
		return
	}

	text, err := ValidateText(payload.Text, h.cfg.Gate)
	if err != nil {
		h.logger.Info("[%s] input rejected: %v", reqID, err)
		httputils.HandleError(w, err)
		return
	}

	result := h.detector.Analyze(text)

	h.logger.Info("[%s] analyzed: tokens=%.0f sentences_avg_len=%.2f ai_score=%.4f label=%s",
		reqID, result.Meta.LengthTokens, result.Meta.AvgSentenceLen, result.AIScore, result.Label)

	if err := httputils.JSONResponse(w, http.StatusOK, result); err != nil {
		h.logger.Error("[%s] error sending response: %v", reqID, err)
	}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	_, active := h.metrics.Get()
	status := "healthy"
	code := http.StatusOK

	if active >= h.cfg.App.MaxConcurrent {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	_ = httputils.JSONResponse(w, code, HealthResponse{
		Status: status,
		Active: active,
	})
}

func (h *Handler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	total, active := h.metrics.Get()

	_ = httputils.JSONResponse(w, http.StatusOK, MetricsResponse{
		ActiveRequests: active,
		TotalRequests:  total,
		Goroutines:     runtime.NumGoroutine(),
		MemAllocMB:     m.Alloc / (1 << 20),
	})
}
