package search

import (
	"math"
	"sort"

	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/internal/query"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/store"
)

// Ranker scores documents against a parsed query.
type Ranker struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	tfidf         *TFIDFCalculator
	maxResults    int
	epsilon       float64
}

// NewRanker creates a ranker returning at most maxResults documents and treating
// relevances closer than epsilon as tied.
func NewRanker(invIndex *index.InvertedIndex, docStore *store.DocumentStore, maxResults int, epsilon float64) *Ranker {
	return &Ranker{
		invertedIndex: invIndex,
		documentStore: docStore,
		tfidf:         NewTFIDFCalculator(invIndex, docStore),
		maxResults:    maxResults,
		epsilon:       epsilon,
	}
}

// Rank returns the top documents for q accepted by predicate, best first.
func (r *Ranker) Rank(q query.Query, predicate model.DocumentPredicate) []model.Document {
	matched := r.FindAllDocuments(q, predicate)
	SortDocuments(matched, r.epsilon)
	if r.maxResults > 0 && len(matched) > r.maxResults {
		matched = matched[:r.maxResults]
	}
	return matched
}

// FindAllDocuments accumulates tf*idf over the plus words for every document
// the predicate accepts, then drops every document containing a minus word.
// The minus veto ignores the predicate and wins over any plus-word score.
// Results are in ascending document ID order.
func (r *Ranker) FindAllDocuments(q query.Query, predicate model.DocumentPredicate) []model.Document {
	documentToRelevance := make(map[int]float64)

	for _, word := range q.PlusWords {
		if !r.invertedIndex.HasWord(word) {
			continue
		}
		idf := r.tfidf.CalculateIDF(word)
		r.invertedIndex.ForEachPosting(word, func(documentID int, termFrequency float64) {
			data, _ := r.documentStore.Get(documentID)
			if predicate == nil || predicate(documentID, data.Status, data.Rating) {
				documentToRelevance[documentID] += termFrequency * idf
			}
		})
	}

	for _, word := range q.MinusWords {
		r.invertedIndex.ForEachPosting(word, func(documentID int, _ float64) {
			delete(documentToRelevance, documentID)
		})
	}

	ids := make([]int, 0, len(documentToRelevance))
	for documentID := range documentToRelevance {
		ids = append(ids, documentID)
	}
	sort.Ints(ids)

	matched := make([]model.Document, 0, len(ids))
	for _, documentID := range ids {
		data, _ := r.documentStore.Get(documentID)
		matched = append(matched, model.Document{
			ID:        documentID,
			Relevance: documentToRelevance[documentID],
			Rating:    data.Rating,
		})
	}
	return matched
}

// SortDocuments orders documents by descending relevance; relevances closer
// than epsilon fall back to descending rating. The sort is stable, so equal
// documents keep their incoming order.
func SortDocuments(docs []model.Document, epsilon float64) {
	sort.SliceStable(docs, func(i, j int) bool {
		if math.Abs(docs[i].Relevance-docs[j].Relevance) < epsilon {
			return docs[i].Rating > docs[j].Rating
		}
		return docs[i].Relevance > docs[j].Relevance
	})
}
