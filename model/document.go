package model

import (
	"fmt"
	"strings"
)

// DocumentStatus is an opaque tag stored with every document.
// The ranker attaches no meaning to it; it only reaches caller-supplied predicates.
type DocumentStatus string

const (
	DocumentStatusActual     DocumentStatus = "actual"
	DocumentStatusIrrelevant DocumentStatus = "irrelevant"
	DocumentStatusBanned     DocumentStatus = "banned"
	DocumentStatusRemoved    DocumentStatus = "removed"
)

// DocumentStatuses lists every known status in declaration order.
var DocumentStatuses = []DocumentStatus{
	DocumentStatusActual,
	DocumentStatusIrrelevant,
	DocumentStatusBanned,
	DocumentStatusRemoved,
}

// IsValid reports whether s is one of the declared statuses.
func (s DocumentStatus) IsValid() bool {
	for _, known := range DocumentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s DocumentStatus) String() string {
	return strings.ToUpper(string(s))
}

// ParseDocumentStatus accepts a status name in any letter case ("Actual", "BANNED", ...).
func ParseDocumentStatus(value string) (DocumentStatus, error) {
	status := DocumentStatus(strings.ToLower(strings.TrimSpace(value)))
	if !status.IsValid() {
		return "", fmt.Errorf("unknown document status '%s'", value)
	}
	return status, nil
}

// MarshalText renders the upper-case form, e.g. "ACTUAL".
func (s DocumentStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts a status name in any letter case.
func (s *DocumentStatus) UnmarshalText(text []byte) error {
	status, err := ParseDocumentStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Document is a single ranked search hit.
// Relevance is computed per query and never stored.
type Document struct {
	ID        int     `json:"document_id"`
	Relevance float64 `json:"relevance"`
	Rating    int     `json:"rating"`
}

// String renders the document the way the console harness prints it,
// with relevance rounded to six significant digits.
func (d Document) String() string {
	return fmt.Sprintf("{ document_id = %d, relevance = %.6g, rating = %d }", d.ID, d.Relevance, d.Rating)
}

// DocumentData is what the document store keeps per document ID.
type DocumentData struct {
	Rating int            `json:"rating"`
	Status DocumentStatus `json:"status"`
}

// DocumentPredicate decides whether a document may appear in search results.
type DocumentPredicate func(documentID int, status DocumentStatus, rating int) bool

// StatusPredicate returns a predicate accepting only documents with the given status.
func StatusPredicate(status DocumentStatus) DocumentPredicate {
	return func(_ int, documentStatus DocumentStatus, _ int) bool {
		return documentStatus == status
	}
}

// ComputeAverageRating returns the integer mean of ratings, truncated toward zero.
// An empty slice yields 0.
func ComputeAverageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating
	}
	return sum / len(ratings)
}

// DocumentInput is everything AddDocument needs to ingest one document.
type DocumentInput struct {
	ID      int            `json:"id" yaml:"id"`
	Text    string         `json:"text" yaml:"text"`
	Status  DocumentStatus `json:"status" yaml:"status"`
	Ratings []int          `json:"ratings" yaml:"ratings"`
}
