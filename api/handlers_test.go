package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/internal/engine"
	"github.com/gcbaptista/search-server/internal/metrics"
	"github.com/gcbaptista/search-server/model"
)

func setupTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	eng := engine.NewEngine(nil)
	require.NoError(t, eng.CreateIndex(config.ServerSettings{Name: "pets", StopWords: []string{"и", "в", "на"}}))
	return eng
}

func setupTestRouter(eng *engine.Engine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(eng, RouterOptions{MaxBodyBytes: 1 << 20})
}

func doRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

func addRussianDocuments(t *testing.T, router http.Handler) {
	t.Helper()
	w := doRequest(t, router, http.MethodPut, "/indexes/pets/documents", []map[string]interface{}{
		{"id": 1, "text": "пушистый кот пушистый хвост", "status": "ACTUAL", "ratings": []int{7, 2, 7}},
		{"id": 2, "text": "пушистый пёс и модный ошейник", "ratings": []int{1, 2}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestHealthCheckHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decode(t, w, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(1), body["indexes"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestCreateIndexHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedCode   ErrorCode
	}{
		{
			name:           "valid index creation",
			requestBody:    config.ServerSettings{Name: "books", StopWords: []string{"the", "a"}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeInvalidJSON,
		},
		{
			name:           "missing index name",
			requestBody:    config.ServerSettings{StopWords: []string{"the"}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidationFailed,
		},
		{
			name:           "already exists",
			requestBody:    config.ServerSettings{Name: "pets"},
			expectedStatus: http.StatusConflict,
			expectedCode:   ErrorCodeIndexExists,
		},
		{
			name:           "stop word with control character",
			requestBody:    config.ServerSettings{Name: "broken", StopWords: []string{"bad\x01"}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/indexes", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedCode != "" {
				var apiErr APIError
				decode(t, w, &apiErr)
				assert.Equal(t, tt.expectedCode, apiErr.Code)
			}
		})
	}
}

func TestIndexLifecycleHandlers(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doRequest(t, router, http.MethodPost, "/indexes", config.ServerSettings{Name: "books"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, router, http.MethodGet, "/indexes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Indexes []string `json:"indexes"`
		Count   int      `json:"count"`
	}
	decode(t, w, &list)
	assert.Equal(t, []string{"books", "pets"}, list.Indexes)
	assert.Equal(t, 2, list.Count)

	w = doRequest(t, router, http.MethodGet, "/indexes/pets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var details struct {
		Name     string                `json:"name"`
		Settings config.ServerSettings `json:"settings"`
	}
	decode(t, w, &details)
	assert.Equal(t, "pets", details.Name)
	assert.Equal(t, 5, details.Settings.MaxResultDocumentCount)
	assert.Len(t, details.Settings.StopWords, 3)

	w = doRequest(t, router, http.MethodDelete, "/indexes/books", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodDelete, "/indexes/books", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, router, http.MethodGet, "/indexes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var apiErr APIError
	decode(t, w, &apiErr)
	assert.Equal(t, ErrorCodeIndexNotFound, apiErr.Code)
	assert.NotEmpty(t, apiErr.RequestID)
}

func TestAddDocumentsHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedAdded  int
		expectedFailed int
	}{
		{
			name:           "valid single document",
			requestBody:    map[string]interface{}{"id": 10, "text": "белый кот", "ratings": []int{8, -3}},
			expectedStatus: http.StatusOK,
			expectedAdded:  1,
		},
		{
			name: "batch with one duplicate",
			requestBody: []map[string]interface{}{
				{"id": 11, "text": "ухоженный пёс", "status": "banned"},
				{"id": 10, "text": "дубликат"},
			},
			expectedStatus: http.StatusMultiStatus,
			expectedAdded:  1,
			expectedFailed: 1,
		},
		{
			name:           "control character",
			requestBody:    map[string]interface{}{"id": 3, "text": "word\x12word", "ratings": []int{1}},
			expectedStatus: http.StatusBadRequest,
			expectedFailed: 1,
		},
		{
			name:           "unknown status",
			requestBody:    map[string]interface{}{"id": 4, "text": "word", "status": "archived"},
			expectedStatus: http.StatusBadRequest,
			expectedFailed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPut, "/indexes/pets/documents", tt.requestBody)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			var result struct {
				Added  int `json:"added"`
				Failed []struct {
					DocumentID int    `json:"document_id"`
					Error      string `json:"error"`
				} `json:"failed"`
			}
			decode(t, w, &result)
			assert.Equal(t, tt.expectedAdded, result.Added)
			assert.Len(t, result.Failed, tt.expectedFailed)
		})
	}

	t.Run("missing id", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/indexes/pets/documents", map[string]interface{}{"text": "no id"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var apiErr APIError
		decode(t, w, &apiErr)
		assert.Equal(t, ErrorCodeValidationFailed, apiErr.Code)
	})

	t.Run("neither object nor array", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/indexes/pets/documents", "42")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown index", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPut, "/indexes/missing/documents", map[string]interface{}{"id": 1, "text": "cat"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	w := doRequest(t, router, http.MethodGet, "/indexes/pets/documents/count", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"document_count":2}`, w.Body.String())
}

func TestGetDocumentIDHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))
	addRussianDocuments(t, router)

	w := doRequest(t, router, http.MethodGet, "/indexes/pets/documents/at/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"position":1,"document_id":2}`, w.Body.String())

	w = doRequest(t, router, http.MethodGet, "/indexes/pets/documents/at/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	var apiErr APIError
	decode(t, w, &apiErr)
	assert.Equal(t, ErrorCodeOutOfRange, apiErr.Code)

	w = doRequest(t, router, http.MethodGet, "/indexes/pets/documents/at/first", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))
	addRussianDocuments(t, router)

	t.Run("minus word excludes document", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/indexes/pets/_search", SearchRequest{Query: "пушистый -пёс"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var result struct {
			QueryID string           `json:"query_id"`
			Hits    []model.Document `json:"hits"`
			Total   int              `json:"total"`
		}
		decode(t, w, &result)
		assert.NotEmpty(t, result.QueryID)
		require.Len(t, result.Hits, 1)
		assert.Equal(t, 1, result.Hits[0].ID)
		assert.Equal(t, 5, result.Hits[0].Rating)
		assert.Equal(t, 1, result.Total)
	})

	t.Run("status filter", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/indexes/pets/_search", SearchRequest{Query: "пушистый", Status: "banned"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":0`)
	})

	t.Run("minimum rating", func(t *testing.T) {
		minRating := 2
		w := doRequest(t, router, http.MethodPost, "/indexes/pets/_search", SearchRequest{Query: "пушистый", MinRating: &minRating})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("double minus", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/indexes/pets/_search", SearchRequest{Query: "--fluffy"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var apiErr APIError
		decode(t, w, &apiErr)
		assert.Equal(t, ErrorCodeInvalidQuery, apiErr.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		w := doRequest(t, router, http.MethodPost, "/indexes/pets/_search", SearchRequest{Query: "кот", Status: "archived"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	w := doRequest(t, router, http.MethodGet, "/indexes/pets/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats model.IndexStats
	decode(t, w, &stats)
	assert.Equal(t, 2, stats.DocumentCount)
	assert.Equal(t, 3, stats.TrackedRequests)
	assert.Equal(t, 1, stats.NoResultRequests)
	assert.Equal(t, 1440, stats.Window)
}

func TestMatchHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))
	addRussianDocuments(t, router)

	w := doRequest(t, router, http.MethodPost, "/indexes/pets/_match", map[string]interface{}{"query": "пушистый -пёс", "document_id": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"document_id":1,"words":["пушистый"],"status":"ACTUAL"}`, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/indexes/pets/_match", map[string]interface{}{"query": "пушистый -пёс", "document_id": 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"document_id":2,"words":[],"status":"ACTUAL"}`, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/indexes/pets/_match", map[string]interface{}{"query": "fluffy -", "document_id": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodPost, "/indexes/pets/_match", map[string]interface{}{"query": "кот", "document_id": 99})
	assert.Equal(t, http.StatusNotFound, w.Code)
	var apiErr APIError
	decode(t, w, &apiErr)
	assert.Equal(t, ErrorCodeDocumentNotFound, apiErr.Code)

	w = doRequest(t, router, http.MethodPost, "/indexes/pets/_match", map[string]interface{}{"query": "кот"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()
	eng := engine.NewEngine(m)
	require.NoError(t, eng.CreateIndex(config.ServerSettings{Name: "pets"}))
	router := NewRouter(eng, RouterOptions{Metrics: m})

	doRequest(t, router, http.MethodGet, "/indexes/pets", nil)
	doRequest(t, router, http.MethodGet, "/indexes/missing", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/indexes/:indexName", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/indexes/:indexName", "404")))
}

func TestGetAnalyticsHandler(t *testing.T) {
	eng := setupTestEngine(t)
	router := setupTestRouter(eng)
	addRussianDocuments(t, router)

	for _, query := range []string{"пушистый", "попугай"} {
		w := doRequest(t, router, http.MethodPost, "/indexes/pets/_search", map[string]interface{}{"query": query})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doRequest(t, router, http.MethodGet, "/analytics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard model.AnalyticsDashboard
	decode(t, w, &dashboard)
	assert.Equal(t, 1, dashboard.TotalIndexes)
	assert.Equal(t, 2, dashboard.TotalDocuments)
	assert.Equal(t, 2, dashboard.TrackedRequests)
	assert.Equal(t, 1, dashboard.NoResultRequests)
	assert.InDelta(t, 0.5, dashboard.NoResultRate, 1e-9)
	require.Len(t, dashboard.IndexUsage, 1)
	assert.Equal(t, "pets", dashboard.IndexUsage[0].IndexName)
}
