package index

import (
	"github.com/huandu/skiplist"
)

// InvertedIndex maps a word to the documents containing it, together with the
// word's term frequency in each document.
//
// Posting lists are skip lists keyed by document ID, so iteration is always in
// ascending ID order. Entries are only ever added. The index is not safe for
// concurrent use; its owner serializes access.
type InvertedIndex struct {
	Index map[string]*skiplist.SkipList
}

// NewInvertedIndex creates an empty index.
func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{Index: make(map[string]*skiplist.SkipList)}
}

// Add accumulates termFrequency into the (word, documentID) posting.
func (ii *InvertedIndex) Add(word string, documentID int, termFrequency float64) {
	list, exists := ii.Index[word]
	if !exists {
		list = skiplist.New(skiplist.Int)
		ii.Index[word] = list
	}
	if elem := list.Get(documentID); elem != nil {
		termFrequency += elem.Value.(float64)
	}
	list.Set(documentID, termFrequency)
}

// AddDocument writes the term frequencies of one document's words.
// words must already be stop-word filtered; an empty slice writes nothing.
func (ii *InvertedIndex) AddDocument(documentID int, words []string) {
	if len(words) == 0 {
		return
	}
	invWordCount := 1.0 / float64(len(words))
	for _, word := range words {
		ii.Add(word, documentID, invWordCount)
	}
}

// HasWord reports whether any document contains word.
func (ii *InvertedIndex) HasWord(word string) bool {
	_, exists := ii.Index[word]
	return exists
}

// Contains reports whether documentID contains word.
func (ii *InvertedIndex) Contains(word string, documentID int) bool {
	list, exists := ii.Index[word]
	if !exists {
		return false
	}
	return list.Get(documentID) != nil
}

// DocumentFrequency returns the number of documents containing word.
func (ii *InvertedIndex) DocumentFrequency(word string) int {
	list, exists := ii.Index[word]
	if !exists {
		return 0
	}
	return list.Len()
}

// TermFrequency returns the stored frequency of word in documentID.
func (ii *InvertedIndex) TermFrequency(word string, documentID int) (float64, bool) {
	list, exists := ii.Index[word]
	if !exists {
		return 0, false
	}
	elem := list.Get(documentID)
	if elem == nil {
		return 0, false
	}
	return elem.Value.(float64), true
}

// ForEachPosting calls fn for every document containing word, in ascending document ID order.
func (ii *InvertedIndex) ForEachPosting(word string, fn func(documentID int, termFrequency float64)) {
	list, exists := ii.Index[word]
	if !exists {
		return
	}
	for elem := list.Front(); elem != nil; elem = elem.Next() {
		fn(elem.Key().(int), elem.Value.(float64))
	}
}

// WordCount returns the number of distinct indexed words.
func (ii *InvertedIndex) WordCount() int {
	return len(ii.Index)
}
