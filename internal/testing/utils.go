// Package testing provides utilities and helpers for testing the search server.
package testing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/internal/engine"
	"github.com/gcbaptista/search-server/internal/metrics"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

// RussianStopWords are the stop words of the reference corpus.
var RussianStopWords = []string{"и", "в", "на"}

// CreateTestEngine creates a new engine; m may be nil.
func CreateTestEngine(t *testing.T, m *metrics.Metrics) *engine.Engine {
	t.Helper()
	return engine.NewEngine(m)
}

// CreateTestIndex creates an index with default settings and the given stop words.
func CreateTestIndex(t *testing.T, eng *engine.Engine, indexName string, stopWords ...string) services.IndexAccessor {
	t.Helper()
	err := eng.CreateIndex(config.ServerSettings{Name: indexName, StopWords: stopWords})
	require.NoError(t, err, "Failed to create test index")

	accessor, err := eng.GetIndex(indexName)
	require.NoError(t, err, "Failed to get index accessor")
	return accessor
}

// RussianCorpus returns the reference documents.
func RussianCorpus() []model.DocumentInput {
	return []model.DocumentInput{
		{ID: 0, Text: "белый кот и модный ошейник", Status: model.DocumentStatusActual, Ratings: []int{8, -3}},
		{ID: 1, Text: "пушистый кот пушистый хвост", Status: model.DocumentStatusActual, Ratings: []int{7, 2, 7}},
		{ID: 2, Text: "ухоженный пёс выразительные глаза", Status: model.DocumentStatusActual, Ratings: []int{5, -12, 2, 1}},
		{ID: 3, Text: "ухоженный скворец евгений", Status: model.DocumentStatusBanned, Ratings: []int{9}},
	}
}

// AddTestDocuments adds docs to an index and fails the test if any is rejected.
func AddTestDocuments(t *testing.T, accessor services.IndexAccessor, docs []model.DocumentInput) {
	t.Helper()
	result := accessor.AddDocuments(docs)
	require.Empty(t, result.Failed, "Failed to add test documents")
	require.Equal(t, len(docs), result.Added)
}

// RunSearches issues each query once through the index request queue.
func RunSearches(t *testing.T, accessor services.IndexAccessor, queries ...string) {
	t.Helper()
	for _, query := range queries {
		_, err := accessor.Search(services.SearchQuery{QueryString: query})
		require.NoError(t, err, "search %q failed", query)
	}
}

// AssertDocumentIDs checks the IDs of docs in order.
func AssertDocumentIDs(t *testing.T, expected []int, docs []model.Document) {
	t.Helper()
	actual := make([]int, 0, len(docs))
	for _, doc := range docs {
		actual = append(actual, doc.ID)
	}
	assert.Equal(t, expected, actual, "document IDs should match")
}
