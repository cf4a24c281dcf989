package tokenizer

import (
	"sort"

	internalErrors "github.com/gcbaptista/search-server/internal/errors"
)

// StopWords is an immutable, case-sensitive set of words ignored everywhere.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a stop-word set from a collection.
// Empty entries are skipped; any entry containing a control character fails the
// whole construction and no set is returned.
func NewStopWords(words []string) (*StopWords, error) {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		if !IsValidWord(word) {
			return nil, internalErrors.NewValidationError("stop_words", "stop word '"+word+"' contains a control character")
		}
		set[word] = struct{}{}
	}
	return &StopWords{words: set}, nil
}

// NewStopWordsFromText tokenizes a space-delimited line and delegates to NewStopWords.
func NewStopWordsFromText(text string) (*StopWords, error) {
	return NewStopWords(Tokenize(text))
}

// Contains reports whether word is a stop word.
func (s *StopWords) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[word]
	return ok
}

// Filter returns tokens with stop words removed, preserving order.
func (s *StopWords) Filter(tokens []string) []string {
	result := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !s.Contains(token) {
			result = append(result, token)
		}
	}
	return result
}

// Len returns the number of stop words.
func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words returns the stop words in ascending order.
func (s *StopWords) Words() []string {
	words := make([]string, 0, s.Len())
	if s == nil {
		return words
	}
	for word := range s.words {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
