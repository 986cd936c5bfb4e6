package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/RyuKangIn/GPT-Killer-Killer/internal/config"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/detector"
	"github.com/RyuKangIn/GPT-Killer-Killer/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Env:            config.Development,
			LogLevel:       "error",
			ServerPort:     "0",
			MaxBodyBytes:   1 << 20,
			MaxConcurrent:  8,
			RateLimitEvery: time.Millisecond,
			RateLimitBurst: 100,
		},
		Gate: config.GateConfig{MinRunes: 300, MinHangulRatio: 0.8},
	}
}

func testMux(t *testing.T) *http.ServeMux {
	t.Helper()
	cfg := testConfig()
	logger := utils.NewDiscardLogger()
	metrics := &ServerMetrics{}
	handler := NewHandler(logger, detector.New(detector.DefaultLexicon()), cfg, metrics)
	mw := NewMiddleware(logger, cfg, metrics)

	mux := http.NewServeMux()
	RegisterRoutes(mux, handler, mw)
	return mux
}

func postAnalyze(t *testing.T, mux *http.ServeMux, body string, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ai/gpt_killer", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyzeSuccess(t *testing.T) {
	mux := testMux(t)

	payload, _ := json.Marshal(AnalyzeRequest{Text: koreanText()})
	rec := postAnalyze(t, mux, string(payload), "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result detector.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.AIScore < 0 || result.AIScore > 1 {
		t.Fatalf("ai_score out of range: %f", result.AIScore)
	}
	switch result.Label {
	case detector.LabelAILikely, detector.LabelUncertain, detector.LabelHumanLikely:
	default:
		t.Fatalf("unexpected label %q", result.Label)
	}
	if result.Meta.LengthTokens == 0 {
		t.Fatalf("expected tokens to be counted")
	}
	if result.AIScore != result.FeatureScores.AIScore {
		t.Fatalf("ai_score must mirror feature_scores.ai_score")
	}
}

func TestHandleAnalyzeResponseKeys(t *testing.T) {
	mux := testMux(t)

	payload, _ := json.Marshal(AnalyzeRequest{Text: koreanText()})
	rec := postAnalyze(t, mux, string(payload), "application/json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, key := range []string{"ai_score", "label", "feature_scores", "meta"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing top-level key %q", key)
		}
	}

	var meta map[string]float64
	if err := json.Unmarshal(raw["meta"], &meta); err != nil {
		t.Fatalf("decode meta: %v", err)
	}
	for _, key := range []string{
		"length_tokens", "type_token_ratio", "avg_sentence_len",
		"sentence_burstiness", "repetition_ratio", "formal_ending_ratio",
		"connectives_per_sentence",
	} {
		if _, ok := meta[key]; !ok {
			t.Fatalf("missing meta key %q", key)
		}
	}

	var scores map[string]float64
	if err := json.Unmarshal(raw["feature_scores"], &scores); err != nil {
		t.Fatalf("decode feature_scores: %v", err)
	}
	for _, key := range []string{
		"ttr_score", "burstiness_score", "formal_score",
		"connectives_score", "repetition_score", "ai_score_raw", "ai_score",
	} {
		if _, ok := scores[key]; !ok {
			t.Fatalf("missing feature_scores key %q", key)
		}
	}
}

func TestHandleAnalyzeRejectsShortText(t *testing.T) {
	mux := testMux(t)

	payload, _ := json.Marshal(AnalyzeRequest{Text: "너무 짧습니다."})
	rec := postAnalyze(t, mux, string(payload), "application/json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Fatalf("expected error body, got %s", rec.Body.String())
	}
}

func TestHandleAnalyzeRejectsBadJSON(t *testing.T) {
	mux := testMux(t)

	rec := postAnalyze(t, mux, "{not json", "application/json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleAnalyzeRejectsWrongContentType(t *testing.T) {
	mux := testMux(t)

	rec := postAnalyze(t, mux, `{"text":"안녕"}`, "text/plain")
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	mux := testMux(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var health HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "healthy" {
		t.Fatalf("expected healthy, got %s", health.Status)
	}
}

func TestHandleMetricsCountsRequests(t *testing.T) {
	mux := testMux(t)

	payload, _ := json.Marshal(AnalyzeRequest{Text: koreanText()})
	for i := 0; i < 3; i++ {
		postAnalyze(t, mux, string(payload), "application/json")
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var metrics MetricsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &metrics); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if metrics.TotalRequests != 3 {
		t.Fatalf("expected 3 total requests, got %d", metrics.TotalRequests)
	}
	if metrics.ActiveRequests != 0 {
		t.Fatalf("expected no active requests, got %d", metrics.ActiveRequests)
	}
}
