package search

import (
	"math"

	"github.com/gcbaptista/search-server/index"
	"github.com/gcbaptista/search-server/store"
)

// TFIDFCalculator handles TF-IDF score calculations
type TFIDFCalculator struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
}

// NewTFIDFCalculator creates a new TF-IDF calculator
func NewTFIDFCalculator(invIndex *index.InvertedIndex, docStore *store.DocumentStore) *TFIDFCalculator {
	return &TFIDFCalculator{
		invertedIndex: invIndex,
		documentStore: docStore,
	}
}

// CalculateIDF calculates the inverse document frequency
// IDF = ln(N / df) where N = total documents, df = documents containing word.
// Callers check that the word is indexed first; an unindexed word returns 0.
func (calc *TFIDFCalculator) CalculateIDF(word string) float64 {
	totalDocs := float64(calc.documentStore.Count())
	docFreq := calc.invertedIndex.DocumentFrequency(word)
	if totalDocs == 0 || docFreq == 0 {
		return 0.0
	}
	return math.Log(totalDocs / float64(docFreq))
}

// CalculateTFIDF returns tf * idf for word in documentID, or 0 when the
// document does not contain the word.
func (calc *TFIDFCalculator) CalculateTFIDF(word string, documentID int) float64 {
	tf, ok := calc.invertedIndex.TermFrequency(word, documentID)
	if !ok {
		return 0.0
	}
	return tf * calc.CalculateIDF(word)
}
