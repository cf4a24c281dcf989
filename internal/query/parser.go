// Package query turns raw query text into plus and minus word sets.
package query

import (
	"sort"
	"strings"

	internalErrors "github.com/gcbaptista/search-server/internal/errors"
	"github.com/gcbaptista/search-server/internal/tokenizer"
)

// Word is one parsed query token.
type Word struct {
	Text    string // the token with any single leading '-' removed
	IsMinus bool
	IsStop  bool
}

// Query holds deduplicated plus and minus words, each sorted ascending.
// A word may appear in both sets; the ranker treats minus membership as a veto.
type Query struct {
	PlusWords  []string
	MinusWords []string
}

// IsEmpty reports whether the query has neither plus nor minus words.
func (q Query) IsEmpty() bool {
	return len(q.PlusWords) == 0 && len(q.MinusWords) == 0
}

// ParseWord classifies a single token. Checks run in a fixed order: strip one
// leading '-', reject control characters, reject a second leading '-', reject
// an empty remainder.
func ParseWord(token string, stopWords *tokenizer.StopWords) (Word, error) {
	text := token
	isMinus := false
	if strings.HasPrefix(text, "-") {
		isMinus = true
		text = text[1:]
	}
	if !tokenizer.IsValidWord(text) {
		return Word{}, internalErrors.NewValidationError("query", "word '"+token+"' contains a control character")
	}
	if strings.HasPrefix(text, "-") {
		return Word{}, internalErrors.NewDoubleMinusError(token)
	}
	if text == "" {
		return Word{}, internalErrors.NewEmptyMinusWordError(token)
	}
	return Word{Text: text, IsMinus: isMinus, IsStop: stopWords.Contains(text)}, nil
}

// Parse tokenizes text and builds the plus/minus sets. Stop words are dropped
// from both sets. The first malformed token aborts parsing.
func Parse(text string, stopWords *tokenizer.StopWords) (Query, error) {
	plus := make(map[string]struct{})
	minus := make(map[string]struct{})

	for _, token := range tokenizer.Tokenize(text) {
		word, err := ParseWord(token, stopWords)
		if err != nil {
			return Query{}, err
		}
		if word.IsStop {
			continue
		}
		if word.IsMinus {
			minus[word.Text] = struct{}{}
		} else {
			plus[word.Text] = struct{}{}
		}
	}

	return Query{
		PlusWords:  sortedKeys(plus),
		MinusWords: sortedKeys(minus),
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
