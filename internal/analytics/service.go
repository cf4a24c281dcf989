// Package analytics summarizes request statistics across all indexes.
package analytics

import (
	"runtime"
	"sort"
	"time"

	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

// Service builds the analytics dashboard from the live indexes.
// It keeps no state of its own: every figure comes from the request queues.
type Service struct {
	indexManager services.IndexManager
	now          func() time.Time
}

// NewService creates a new analytics service
func NewService(indexManager services.IndexManager) *Service {
	return &Service{
		indexManager: indexManager,
		now:          time.Now,
	}
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	usage := s.getIndexUsage()

	dashboard := model.AnalyticsDashboard{
		TotalIndexes: len(usage),
		IndexUsage:   usage,
		SystemHealth: s.getSystemHealth(),
		GeneratedAt:  s.now(),
	}
	for _, stats := range usage {
		dashboard.TotalDocuments += stats.DocumentCount
		dashboard.TrackedRequests += stats.TrackedRequests
		dashboard.NoResultRequests += stats.NoResultRequests
	}
	if dashboard.TrackedRequests > 0 {
		dashboard.NoResultRate = float64(dashboard.NoResultRequests) / float64(dashboard.TrackedRequests)
	}
	return dashboard
}

// getIndexUsage returns usage statistics for each index, most empty-result
// requests first and by name within equal counts.
func (s *Service) getIndexUsage() []model.IndexStats {
	indexes := s.indexManager.ListIndexes()

	usage := make([]model.IndexStats, 0, len(indexes))
	for _, indexName := range indexes {
		accessor, err := s.indexManager.GetIndex(indexName)
		if err != nil {
			// deleted between ListIndexes and GetIndex
			continue
		}
		usage = append(usage, accessor.Stats())
	}

	sort.SliceStable(usage, func(i, j int) bool {
		if usage[i].NoResultRequests != usage[j].NoResultRequests {
			return usage[i].NoResultRequests > usage[j].NoResultRequests
		}
		return usage[i].IndexName < usage[j].IndexName
	})
	return usage
}

// getSystemHealth returns current runtime metrics
func (s *Service) getSystemHealth() model.SystemHealth {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return model.SystemHealth{
		HeapAllocMB: float64(m.HeapAlloc) / (1 << 20),
		Goroutines:  runtime.NumGoroutine(),
	}
}
