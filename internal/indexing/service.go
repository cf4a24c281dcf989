package indexing

import (
	"fmt"
	"log/slog"

	internalErrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/logger"
	"github.com/gcbaptista/search-server/internal/tokenizer"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

// Service implements the indexing logic for a single index.
// It fulfills the services.Indexer interface.
// Callers hold the owning server's write lock.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	stopWords     *tokenizer.StopWords
	logger        *slog.Logger
}

// NewService creates a new indexing Service.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore, stopWords *tokenizer.StopWords) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if invertedIndex.Index == nil {
		// Initialize the map if it's nil to prevent panics later
		invertedIndex.Index = index.NewInvertedIndex().Index
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[int]model.DocumentData)
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		stopWords:     stopWords,
		logger:        logger.WithComponent("indexing"),
	}, nil
}

// AddDocument validates and ingests one document.
// Every check runs before the first mutation, so a rejected document leaves
// the index and the store untouched.
func (s *Service) AddDocument(documentID int, text string, status model.DocumentStatus, ratings []int) error {
	if documentID < 0 {
		return internalErrors.NewValidationError("document_id", fmt.Sprintf("document ID %d is negative", documentID))
	}
	if s.documentStore.Exists(documentID) {
		return internalErrors.NewValidationError("document_id", fmt.Sprintf("document ID %d already exists", documentID))
	}
	if !tokenizer.IsValidWord(text) {
		return internalErrors.NewValidationError("text", fmt.Sprintf("text of document %d contains a control character", documentID))
	}
	if !status.IsValid() {
		return internalErrors.NewValidationError("status", fmt.Sprintf("unknown document status '%s'", string(status)))
	}

	words := s.stopWords.Filter(tokenizer.Tokenize(text))

	s.invertedIndex.AddDocument(documentID, words)
	s.documentStore.Add(documentID, model.DocumentData{
		Rating: model.ComputeAverageRating(ratings),
		Status: status,
	})

	s.logger.Debug("document indexed", "document_id", documentID, "words", len(words))
	return nil
}

// AddDocumentInput is AddDocument for a DocumentInput value.
func (s *Service) AddDocumentInput(doc model.DocumentInput) error {
	return s.AddDocument(doc.ID, doc.Text, doc.Status, doc.Ratings)
}
