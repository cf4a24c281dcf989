package engine

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/gcbaptista/search-server/config"
	internalErrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/logger"
	"github.com/gcbaptista/search-server/internal/metrics"
	"github.com/gcbaptista/search-server/services"
)

// Engine manages multiple search indexes.
// It implements the services.IndexManager interface.
type Engine struct {
	mu      sync.RWMutex
	indexes map[string]*IndexInstance
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewEngine creates a new search engine orchestrator. m may be nil.
func NewEngine(m *metrics.Metrics) *Engine {
	return &Engine{
		indexes: make(map[string]*IndexInstance),
		metrics: m,
		logger:  logger.WithComponent("engine"),
	}
}

// CreateIndex creates a new, empty index with the given settings.
func (e *Engine) CreateIndex(settings config.ServerSettings) error {
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		return internalErrors.NewValidationError("settings", strings.Join(problems, "; "))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[settings.Name]; exists {
		return internalErrors.NewIndexAlreadyExistsError(settings.Name)
	}

	instance, err := NewIndexInstance(settings, e.metrics)
	if err != nil {
		return fmt.Errorf("failed to create new index instance for '%s': %w", settings.Name, err)
	}

	e.indexes[settings.Name] = instance
	e.logger.Info("index created",
		"index", settings.Name,
		"stop_words", len(instance.server.Settings().StopWords),
		"request_window", settings.RequestWindow)
	return nil
}

// GetIndex retrieves an index by its name.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	instance, err := e.getInstance(name)
	if err != nil {
		return nil, err
	}
	return instance, nil
}

// GetIndexInstance is GetIndex returning the concrete instance.
func (e *Engine) GetIndexInstance(name string) (*IndexInstance, error) {
	return e.getInstance(name)
}

func (e *Engine) getInstance(name string) (*IndexInstance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, internalErrors.NewIndexNotFoundError(name)
	}
	return instance, nil
}

// DeleteIndex removes an index and its metrics series.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[name]; !exists {
		return internalErrors.NewIndexNotFoundError(name)
	}
	delete(e.indexes, name)
	e.metrics.ForgetIndex(name)

	e.logger.Info("index deleted", "index", name)
	return nil
}

// ListIndexes returns the names of all indexes in ascending order.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.indexes))
	for name := range e.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
