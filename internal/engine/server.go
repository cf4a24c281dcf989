package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gcbaptista/search-server/config"
	internalErrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/indexing"
	"github.com/gcbaptista/search-server/internal/search"
	"github.com/gcbaptista/search-server/internal/tokenizer"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

// SearchServer owns one inverted index and one document store.
// It implements services.Indexer, services.Searcher, services.Matcher and
// services.DocumentCounter. AddDocument takes the write lock; every other
// method takes the read lock. Predicates run under the read lock and must not
// call back into the server.
type SearchServer struct {
	mu            sync.RWMutex
	settings      config.ServerSettings
	stopWords     *tokenizer.StopWords
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	indexer       *indexing.Service
	searcher      *search.Service
}

// NewSearchServer creates an empty server. It fails if any stop word contains
// a control character.
func NewSearchServer(settings config.ServerSettings) (*SearchServer, error) {
	settings.ApplyDefaults()

	stopWords, err := tokenizer.NewStopWords(settings.StopWords)
	if err != nil {
		return nil, err
	}

	invIndex := index.NewInvertedIndex()
	docStore := store.NewDocumentStore()

	indexerService, err := indexing.NewService(invIndex, docStore, stopWords)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer service: %w", err)
	}
	searchService, err := search.NewService(invIndex, docStore, stopWords, &settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	settings.StopWords = stopWords.Words()

	return &SearchServer{
		settings:      settings,
		stopWords:     stopWords,
		invertedIndex: invIndex,
		documentStore: docStore,
		indexer:       indexerService,
		searcher:      searchService,
	}, nil
}

// NewSearchServerFromText creates a server whose stop words are the
// space-separated words of stopWordsText.
func NewSearchServerFromText(stopWordsText string) (*SearchServer, error) {
	return NewSearchServer(config.ServerSettings{StopWords: tokenizer.Tokenize(stopWordsText)})
}

// AddDocument validates and indexes one document. A rejected document leaves
// the server unchanged.
func (s *SearchServer) AddDocument(documentID int, text string, status model.DocumentStatus, ratings []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexer.AddDocument(documentID, text, status, ratings)
}

// FindTopDocuments returns the best documents with status Actual.
func (s *SearchServer) FindTopDocuments(rawQuery string) ([]model.Document, error) {
	return s.FindTopDocumentsByStatus(rawQuery, model.DocumentStatusActual)
}

// FindTopDocumentsByStatus returns the best documents with the given status.
func (s *SearchServer) FindTopDocumentsByStatus(rawQuery string, status model.DocumentStatus) ([]model.Document, error) {
	return s.FindTopDocumentsWithPredicate(rawQuery, model.StatusPredicate(status))
}

// FindTopDocumentsWithPredicate returns the best documents accepted by predicate.
func (s *SearchServer) FindTopDocumentsWithPredicate(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searcher.FindTopDocuments(rawQuery, predicate)
}

// MatchDocument returns the plus words of rawQuery found in documentID and its status.
func (s *SearchServer) MatchDocument(rawQuery string, documentID int) ([]string, model.DocumentStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, status, err := s.searcher.MatchDocument(rawQuery, documentID)
	if err != nil {
		var notFound *internalErrors.DocumentNotFoundError
		if errors.As(err, &notFound) && s.settings.Name != "" {
			notFound.IndexName = s.settings.Name
		}
		return nil, "", err
	}
	return words, status, nil
}

// GetDocumentCount returns the number of indexed documents.
func (s *SearchServer) GetDocumentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentStore.Count()
}

// GetDocumentID returns the ID of the document added at the given position.
func (s *SearchServer) GetDocumentID(position int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.documentStore.IDAt(position)
	if !ok {
		return 0, internalErrors.NewDocumentIndexOutOfRangeError(position, s.documentStore.Count())
	}
	return id, nil
}

// Settings returns a copy of the server settings with the effective stop words.
func (s *SearchServer) Settings() config.ServerSettings {
	settings := s.settings
	settings.StopWords = append([]string(nil), s.settings.StopWords...)
	return settings
}
