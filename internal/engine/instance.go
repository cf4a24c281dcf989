package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/internal/metrics"
	"github.com/gcbaptista/search-server/internal/requests"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

// IndexInstance is one named index: a SearchServer and the RequestQueue
// tracking searches made through it.
// It implements the services.IndexAccessor interface.
type IndexInstance struct {
	server   *SearchServer
	requests *requests.RequestQueue
	metrics  *metrics.Metrics
}

// NewIndexInstance creates and initializes a new IndexInstance. m may be nil.
func NewIndexInstance(settings config.ServerSettings, m *metrics.Metrics) (*IndexInstance, error) {
	server, err := NewSearchServer(settings)
	if err != nil {
		return nil, err
	}

	opts := []requests.Option{requests.WithWindow(server.settings.RequestWindow)}
	if m != nil {
		opts = append(opts, requests.WithObserver(settings.Name, m))
	}

	return &IndexInstance{
		server:   server,
		requests: requests.NewRequestQueue(server, opts...),
		metrics:  m,
	}, nil
}

// Server returns the underlying SearchServer.
func (i *IndexInstance) Server() *SearchServer {
	return i.server
}

// Requests returns the queue tracking searches on this index.
func (i *IndexInstance) Requests() *requests.RequestQueue {
	return i.requests
}

// AddDocument indexes one document.
func (i *IndexInstance) AddDocument(documentID int, text string, status model.DocumentStatus, ratings []int) error {
	err := i.server.AddDocument(documentID, text, status, ratings)
	i.metrics.ObserveIndexing(i.server.settings.Name, err, i.server.GetDocumentCount())
	return err
}

// AddDocuments indexes docs in order. A rejected document is reported and the
// rest of the batch continues.
func (i *IndexInstance) AddDocuments(docs []model.DocumentInput) services.AddDocumentsResult {
	result := services.AddDocumentsResult{Failed: []services.DocumentFailure{}}
	for _, doc := range docs {
		if err := i.AddDocument(doc.ID, doc.Text, doc.Status, doc.Ratings); err != nil {
			result.Failed = append(result.Failed, services.DocumentFailure{DocumentID: doc.ID, Error: err.Error()})
			continue
		}
		result.Added++
	}
	return result
}

// Search runs a tracked search.
func (i *IndexInstance) Search(query services.SearchQuery) (services.SearchResult, error) {
	start := time.Now()

	var (
		hits []model.Document
		err  error
	)
	switch {
	case query.MinRating == nil && query.Status == nil:
		hits, err = i.requests.AddFindRequest(query.QueryString)
	case query.MinRating == nil:
		hits, err = i.requests.AddFindRequestByStatus(query.QueryString, *query.Status)
	default:
		hits, err = i.requests.AddFindRequestWithPredicate(query.QueryString, searchPredicate(query))
	}
	if err != nil {
		i.metrics.ObserveSearchError(i.server.settings.Name)
		return services.SearchResult{}, err
	}

	return services.SearchResult{
		QueryId: uuid.New().String(),
		Hits:    hits,
		Total:   len(hits),
		Took:    time.Since(start).Milliseconds(),
	}, nil
}

// searchPredicate keeps documents with at least MinRating and, when given,
// the requested status; without a status only Actual documents pass.
func searchPredicate(query services.SearchQuery) model.DocumentPredicate {
	status := model.DocumentStatusActual
	if query.Status != nil {
		status = *query.Status
	}
	minRating := *query.MinRating
	return func(_ int, documentStatus model.DocumentStatus, rating int) bool {
		return documentStatus == status && rating >= minRating
	}
}

// MatchDocument delegates to the SearchServer.
func (i *IndexInstance) MatchDocument(rawQuery string, documentID int) ([]string, model.DocumentStatus, error) {
	return i.server.MatchDocument(rawQuery, documentID)
}

// GetDocumentCount delegates to the SearchServer.
func (i *IndexInstance) GetDocumentCount() int {
	return i.server.GetDocumentCount()
}

// GetDocumentID delegates to the SearchServer.
func (i *IndexInstance) GetDocumentID(position int) (int, error) {
	return i.server.GetDocumentID(position)
}

// Stats returns the document count and request statistics of this index.
func (i *IndexInstance) Stats() model.IndexStats {
	return model.IndexStats{
		IndexName:        i.server.settings.Name,
		DocumentCount:    i.server.GetDocumentCount(),
		NoResultRequests: i.requests.GetNoResultRequests(),
		TrackedRequests:  i.requests.Len(),
		Window:           i.requests.Window(),
	}
}

// Settings returns the configuration settings for this index.
func (i *IndexInstance) Settings() config.ServerSettings {
	return i.server.Settings()
}
