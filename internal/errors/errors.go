package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrInvalidInput is returned when input validation fails: control characters,
	// negative or duplicate document IDs, malformed query tokens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange is returned when a document position or document ID does not exist
	ErrOutOfRange = errors.New("out of range")

	// ErrIndexNotFound is returned when an index is not found
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexAlreadyExists is returned when trying to create an index that already exists
	ErrIndexAlreadyExists = errors.New("index already exists")
)

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// EmptyMinusWordError is returned for a query token consisting of a lone '-'
type EmptyMinusWordError struct {
	Token string
}

func (e *EmptyMinusWordError) Error() string {
	return fmt.Sprintf("query token '%s' has no word after '-'", e.Token)
}

func (e *EmptyMinusWordError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewEmptyMinusWordError creates a new EmptyMinusWordError
func NewEmptyMinusWordError(token string) *EmptyMinusWordError {
	return &EmptyMinusWordError{Token: token}
}

// DoubleMinusError is returned for a query token starting with "--"
type DoubleMinusError struct {
	Token string
}

func (e *DoubleMinusError) Error() string {
	return fmt.Sprintf("query token '%s' starts with more than one '-'", e.Token)
}

func (e *DoubleMinusError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewDoubleMinusError creates a new DoubleMinusError
func NewDoubleMinusError(token string) *DoubleMinusError {
	return &DoubleMinusError{Token: token}
}

// DocumentIndexOutOfRangeError is returned when a positional lookup falls outside [0, Count)
type DocumentIndexOutOfRangeError struct {
	Index int
	Count int
}

func (e *DocumentIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("document index %d out of range [0, %d)", e.Index, e.Count)
}

func (e *DocumentIndexOutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewDocumentIndexOutOfRangeError creates a new DocumentIndexOutOfRangeError
func NewDocumentIndexOutOfRangeError(index, count int) *DocumentIndexOutOfRangeError {
	return &DocumentIndexOutOfRangeError{Index: index, Count: count}
}

// DocumentNotFoundError represents an unknown document ID
type DocumentNotFoundError struct {
	DocumentID int
	IndexName  string
}

func (e *DocumentNotFoundError) Error() string {
	if e.IndexName != "" {
		return fmt.Sprintf("document with ID %d not found in index '%s'", e.DocumentID, e.IndexName)
	}
	return fmt.Sprintf("document with ID %d not found", e.DocumentID)
}

func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrOutOfRange
}

// NewDocumentNotFoundError creates a new DocumentNotFoundError
func NewDocumentNotFoundError(documentID int, indexName ...string) *DocumentNotFoundError {
	err := &DocumentNotFoundError{DocumentID: documentID}
	if len(indexName) > 0 {
		err.IndexName = indexName[0]
	}
	return err
}

// IndexNotFoundError represents an index not found error with context
type IndexNotFoundError struct {
	IndexName string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("index named '%s' not found", e.IndexName)
}

func (e *IndexNotFoundError) Is(target error) bool {
	return target == ErrIndexNotFound
}

// NewIndexNotFoundError creates a new IndexNotFoundError
func NewIndexNotFoundError(indexName string) *IndexNotFoundError {
	return &IndexNotFoundError{IndexName: indexName}
}

// IndexAlreadyExistsError represents an index already exists error with context
type IndexAlreadyExistsError struct {
	IndexName string
}

func (e *IndexAlreadyExistsError) Error() string {
	return fmt.Sprintf("index named '%s' already exists", e.IndexName)
}

func (e *IndexAlreadyExistsError) Is(target error) bool {
	return target == ErrIndexAlreadyExists
}

// NewIndexAlreadyExistsError creates a new IndexAlreadyExistsError
func NewIndexAlreadyExistsError(indexName string) *IndexAlreadyExistsError {
	return &IndexAlreadyExistsError{IndexName: indexName}
}
