package search

import (
	"fmt"
	"log/slog"

	"github.com/gcbaptista/search-server/config"
	internalErrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/logger"
	"github.com/gcbaptista/search-server/internal/query"
	"github.com/gcbaptista/search-server/internal/tokenizer"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

// Service implements the search logic for a single index.
// It fulfills the services.Searcher and services.Matcher interfaces.
// Callers hold the owning server's read lock.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	stopWords     *tokenizer.StopWords
	ranker        *Ranker
	logger        *slog.Logger
}

// NewService creates a new search Service.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, stopWords *tokenizer.StopWords, settings *config.ServerSettings) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}

	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		stopWords:     stopWords,
		ranker:        NewRanker(invIndex, docStore, settings.MaxResultDocumentCount, settings.RelevanceEpsilon),
		logger:        logger.WithComponent("search").With("index", settings.Name),
	}, nil
}

// FindTopDocuments parses rawQuery and returns the best documents accepted by predicate.
// A nil predicate accepts every document.
func (s *Service) FindTopDocuments(rawQuery string, predicate model.DocumentPredicate) ([]model.Document, error) {
	q, err := query.Parse(rawQuery, s.stopWords)
	if err != nil {
		return nil, err
	}
	results := s.ranker.Rank(q, predicate)
	s.logger.Debug("query ranked",
		"plus_words", len(q.PlusWords),
		"minus_words", len(q.MinusWords),
		"results", len(results))
	return results, nil
}

// MatchDocument returns the plus words of rawQuery that documentID contains,
// in ascending order, together with the document's status. Any minus word
// present in the document empties the list.
func (s *Service) MatchDocument(rawQuery string, documentID int) ([]string, model.DocumentStatus, error) {
	q, err := query.Parse(rawQuery, s.stopWords)
	if err != nil {
		return nil, "", err
	}

	data, exists := s.documentStore.Get(documentID)
	if !exists {
		return nil, "", internalErrors.NewDocumentNotFoundError(documentID)
	}

	matchedWords := make([]string, 0, len(q.PlusWords))
	for _, word := range q.MinusWords {
		if s.invertedIndex.Contains(word, documentID) {
			return matchedWords, data.Status, nil
		}
	}
	for _, word := range q.PlusWords {
		if s.invertedIndex.Contains(word, documentID) {
			matchedWords = append(matchedWords, word)
		}
	}
	return matchedWords, data.Status, nil
}
