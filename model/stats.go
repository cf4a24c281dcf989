package model

// RequestRecord is one tracked search call inside the request window.
type RequestRecord struct {
	Timestamp   int `json:"timestamp"`    // logical tick, not wall-clock time
	ResultCount int `json:"result_count"` // number of documents the search returned
}

// IndexStats represents statistics for a specific index
type IndexStats struct {
	IndexName        string `json:"index_name"`
	DocumentCount    int    `json:"document_count"`
	NoResultRequests int    `json:"no_result_requests"` // empty-result searches currently inside the window
	TrackedRequests  int    `json:"tracked_requests"`   // searches currently inside the window
	Window           int    `json:"window"`             // window depth in ticks
}
