// Package api provides validation utilities for API request handling.
package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateIndexName validates an index name parameter
func ValidateIndexName(indexName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if indexName == "" {
		result.AddError("indexName", "Index name is required")
		return result
	}
	if err := config.ValidateIndexName(indexName); err != nil {
		result.AddError("indexName", err.Error())
	}

	return result
}

// ValidateIndexSettings applies defaults to settings and validates them for creation
func ValidateIndexSettings(settings *config.ServerSettings) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if settings == nil {
		result.AddError("settings", "Index settings are required")
		return result
	}

	settings.ApplyDefaults()
	for _, problem := range settings.Validate() {
		result.AddError("settings", problem)
	}

	return result
}

// ValidateDocumentRequests checks the shape of a batch; content is validated by the index.
func ValidateDocumentRequests(docs []DocumentRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(docs) == 0 {
		result.AddError("documents", "No documents provided")
		return result
	}

	for i, doc := range docs {
		if doc.ID == nil {
			result.AddError(fmt.Sprintf("documents[%d].id", i), "Document must have an 'id' field")
		}
	}

	return result
}

// ValidateSearchRequest checks the optional status and returns it parsed.
func ValidateSearchRequest(req *SearchRequest) (*model.DocumentStatus, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	if strings.TrimSpace(req.Status) == "" {
		return nil, result
	}
	status, err := model.ParseDocumentStatus(req.Status)
	if err != nil {
		result.AddError("status", err.Error())
		return nil, result
	}
	return &status, result
}

// ValidateMatchRequest checks that a document ID was supplied.
func ValidateMatchRequest(req *MatchRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.DocumentID == nil {
		result.AddError("document_id", "Document ID is required")
	}

	return result
}

// ValidatePosition parses a document position path parameter.
func ValidatePosition(raw string) (int, *ValidationResult) {
	result := &ValidationResult{Valid: true}

	position, err := strconv.Atoi(raw)
	if err != nil {
		result.AddError("position", "Position must be an integer")
	}
	return position, result
}

// SendValidationError sends a standardized validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}
