package model

import "time"

// AnalyticsDashboard aggregates request statistics across every index.
type AnalyticsDashboard struct {
	TotalIndexes     int          `json:"total_indexes"`
	TotalDocuments   int          `json:"total_documents"`
	TrackedRequests  int          `json:"tracked_requests"`
	NoResultRequests int          `json:"no_result_requests"`
	NoResultRate     float64      `json:"no_result_rate"` // NoResultRequests / TrackedRequests, 0 without requests
	IndexUsage       []IndexStats `json:"index_usage"`    // most empty-result requests first
	SystemHealth     SystemHealth `json:"system_health"`
	GeneratedAt      time.Time    `json:"generated_at"`
}

// SystemHealth is a snapshot of the process runtime.
type SystemHealth struct {
	HeapAllocMB float64 `json:"heap_alloc_mb"`
	Goroutines  int     `json:"goroutines"`
}
