// Package requests tracks the outcome of recent search requests against one server.
package requests

import (
	"sync"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

// Observer is notified after every tracked request.
// *metrics.Metrics satisfies it.
type Observer interface {
	ObserveSearch(indexName string, resultCount int, noResultRequests int)
}

// RequestQueue wraps a Searcher and remembers the result count of the last
// Window tracked requests. Time is a logical tick advanced once per tracked
// request, never wall-clock time. The searcher is borrowed: the caller keeps
// it alive for as long as the queue is used.
type RequestQueue struct {
	mu               sync.Mutex
	searcher         services.Searcher
	window           int
	currentTime      int
	records          []model.RequestRecord
	noResultRequests int

	indexName string
	observer  Observer
}

// Option configures a RequestQueue.
type Option func(*RequestQueue)

// WithWindow sets the window depth in ticks. Non-positive values keep the default.
func WithWindow(window int) Option {
	return func(rq *RequestQueue) {
		if window > 0 {
			rq.window = window
		}
	}
}

// WithObserver reports every tracked request to observer, labelled with indexName.
func WithObserver(indexName string, observer Observer) Option {
	return func(rq *RequestQueue) {
		rq.indexName = indexName
		rq.observer = observer
	}
}

// NewRequestQueue creates a queue tracking requests made through searcher.
func NewRequestQueue(searcher services.Searcher, opts ...Option) *RequestQueue {
	rq := &RequestQueue{
		searcher: searcher,
		window:   config.DefaultRequestWindow,
	}
	for _, opt := range opts {
		opt(rq)
	}
	rq.records = make([]model.RequestRecord, 0, rq.window)
	return rq
}

// AddFindRequest runs FindTopDocuments and records the outcome.
func (rq *RequestQueue) AddFindRequest(rawQuery string) ([]model.Document, error) {
	return rq.track(rq.searcher.FindTopDocuments(rawQuery))
}

// AddFindRequestByStatus runs FindTopDocumentsByStatus and records the outcome.
func (rq *RequestQueue) AddFindRequestByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return rq.track(rq.searcher.FindTopDocumentsByStatus(rawQuery, status))
}

// AddFindRequestWithPredicate runs FindTopDocumentsWithPredicate and records the outcome.
func (rq *RequestQueue) AddFindRequestWithPredicate(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error) {
	return rq.track(rq.searcher.FindTopDocumentsWithPredicate(rawQuery, predicate))
}

// GetNoResultRequests returns how many requests inside the window returned nothing.
func (rq *RequestQueue) GetNoResultRequests() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return rq.noResultRequests
}

// Len returns the number of requests inside the window.
func (rq *RequestQueue) Len() int {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return len(rq.records)
}

// Window returns the window depth in ticks.
func (rq *RequestQueue) Window() int {
	return rq.window
}

// Records returns a copy of the in-window records, oldest first.
func (rq *RequestQueue) Records() []model.RequestRecord {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return append([]model.RequestRecord(nil), rq.records...)
}

// Failed searches are not recorded and do not advance the clock.
func (rq *RequestQueue) track(documents []model.Document, err error) ([]model.Document, error) {
	if err != nil {
		return nil, err
	}

	rq.mu.Lock()
	rq.currentTime++
	evict := 0
	for evict < len(rq.records) && rq.window <= rq.currentTime-rq.records[evict].Timestamp {
		if rq.records[evict].ResultCount == 0 {
			rq.noResultRequests--
		}
		evict++
	}
	if evict > 0 {
		rq.records = append(rq.records[:0], rq.records[evict:]...)
	}

	rq.records = append(rq.records, model.RequestRecord{Timestamp: rq.currentTime, ResultCount: len(documents)})
	if len(documents) == 0 {
		rq.noResultRequests++
	}
	noResult := rq.noResultRequests
	rq.mu.Unlock()

	if rq.observer != nil {
		rq.observer.ObserveSearch(rq.indexName, len(documents), noResult)
	}
	return documents, nil
}
