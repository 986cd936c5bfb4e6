package api

// AnalyzeRequest is the body of POST /ai/gpt_killer.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
	Active int64  `json:"active"`
}

// MetricsResponse is returned by GET /metrics.
type MetricsResponse struct {
	ActiveRequests int64  `json:"active_requests"`
	TotalRequests  int64  `json:"total_requests"`
	Goroutines     int    `json:"goroutines"`
	MemAllocMB     uint64 `json:"mem_alloc_mb"`
}
