package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/gcbaptista/search-server/internal/testing"
)

func TestAnalyticsService_EmptyEngine(t *testing.T) {
	service := NewService(testutil.CreateTestEngine(t, nil))

	dashboard := service.GetDashboardData()
	assert.Equal(t, 0, dashboard.TotalIndexes)
	assert.Equal(t, 0.0, dashboard.NoResultRate)
	assert.NotNil(t, dashboard.IndexUsage)
	assert.Greater(t, dashboard.SystemHealth.Goroutines, 0)
}

func TestAnalyticsService_GetDashboardData(t *testing.T) {
	eng := testutil.CreateTestEngine(t, nil)

	pets := testutil.CreateTestIndex(t, eng, "pets", testutil.RussianStopWords...)
	testutil.AddTestDocuments(t, pets, testutil.RussianCorpus())
	testutil.RunSearches(t, pets, "пушистый кот", "попугай", "скворец")

	books := testutil.CreateTestIndex(t, eng, "books")
	testutil.RunSearches(t, books, "war", "peace")

	archive := testutil.CreateTestIndex(t, eng, "archive")
	testutil.RunSearches(t, archive, "anything")

	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	service := NewService(eng)
	service.now = func() time.Time { return fixed }

	dashboard := service.GetDashboardData()

	assert.Equal(t, 3, dashboard.TotalIndexes)
	assert.Equal(t, 4, dashboard.TotalDocuments)
	assert.Equal(t, 6, dashboard.TrackedRequests)
	// "скворец" only matches a banned document
	assert.Equal(t, 5, dashboard.NoResultRequests)
	assert.InDelta(t, 5.0/6.0, dashboard.NoResultRate, 1e-9)
	assert.Equal(t, fixed, dashboard.GeneratedAt)

	require.Len(t, dashboard.IndexUsage, 3)
	// books and pets tie on two empty results and are ordered by name
	assert.Equal(t, "books", dashboard.IndexUsage[0].IndexName)
	assert.Equal(t, "pets", dashboard.IndexUsage[1].IndexName)
	assert.Equal(t, "archive", dashboard.IndexUsage[2].IndexName)
	assert.Equal(t, 4, dashboard.IndexUsage[1].DocumentCount)
	assert.Equal(t, 3, dashboard.IndexUsage[1].TrackedRequests)
}
