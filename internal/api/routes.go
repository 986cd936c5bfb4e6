package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler, mw *Middleware) {
	mux.HandleFunc("GET /health", handler.HandleHealth)
	mux.HandleFunc("GET /metrics", handler.HandleMetrics)
	mux.HandleFunc("POST /ai/gpt_killer",
		mw.WithRateLimit(mw.WithConcurrencyLimit(handler.HandleAnalyze)))
}
