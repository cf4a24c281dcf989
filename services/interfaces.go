package services

import (
	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/model"
)

// SearchQuery is one tracked search against an index.
// Status and MinRating narrow the accepted documents; with neither set only
// documents with status Actual are returned.
type SearchQuery struct {
	QueryString string                `json:"query"`
	Status      *model.DocumentStatus `json:"status,omitempty"`
	MinRating   *int                  `json:"min_rating,omitempty"`
}

// SearchResult is the response body of a tracked search.
type SearchResult struct {
	QueryId string           `json:"query_id"` // unique UUID for this search query
	Hits    []model.Document `json:"hits"`
	Total   int              `json:"total"`
	Took    int64            `json:"took"` // milliseconds
}

// MatchResult is the response body of MatchDocument.
type MatchResult struct {
	DocumentID int                  `json:"document_id"`
	Words      []string             `json:"words"`
	Status     model.DocumentStatus `json:"status"`
}

// DocumentFailure reports one document rejected during a batch add.
type DocumentFailure struct {
	DocumentID int    `json:"document_id"`
	Error      string `json:"error"`
}

// AddDocumentsResult summarizes a batch add; rejected documents do not stop the batch.
type AddDocumentsResult struct {
	Added  int               `json:"added"`
	Failed []DocumentFailure `json:"failed"`
}

// Indexer defines operations for adding data to an index
type Indexer interface {
	AddDocument(documentID int, text string, status model.DocumentStatus, ratings []int) error
}

// Searcher defines the three ranking entry points of an index.
type Searcher interface {
	FindTopDocuments(rawQuery string) ([]model.Document, error)
	FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error)
	FindTopDocumentsWithPredicate(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error)
}

// Matcher reports which query words a single document contains.
type Matcher interface {
	MatchDocument(rawQuery string, documentID int) ([]string, model.DocumentStatus, error)
}

// DocumentCounter exposes the document count and insertion-ordered IDs.
type DocumentCounter interface {
	GetDocumentCount() int
	GetDocumentID(position int) (int, error)
}

// IndexManager manages the lifecycle of indices
type IndexManager interface {
	CreateIndex(settings config.ServerSettings) error
	GetIndex(name string) (IndexAccessor, error)
	DeleteIndex(name string) error
	ListIndexes() []string
}

// IndexAccessor is everything the HTTP layer needs from one index.
type IndexAccessor interface {
	Matcher
	DocumentCounter
	AddDocuments(docs []model.DocumentInput) AddDocumentsResult
	Search(query SearchQuery) (SearchResult, error)
	Stats() model.IndexStats
	Settings() config.ServerSettings
}
