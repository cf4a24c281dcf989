package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/search-server/model"
)

// DocumentRequest is one document in the body of AddDocumentsHandler.
// Status defaults to ACTUAL and is matched case-insensitively.
type DocumentRequest struct {
	ID      *int   `json:"id"`
	Text    string `json:"text"`
	Status  string `json:"status,omitempty"`
	Ratings []int  `json:"ratings,omitempty"`
}

// ToInput converts the request into the indexing input.
// An unknown status is passed through and rejected by the index.
func (r DocumentRequest) ToInput() model.DocumentInput {
	status := model.DocumentStatusActual
	if trimmed := strings.TrimSpace(r.Status); trimmed != "" {
		status = model.DocumentStatus(strings.ToLower(trimmed))
	}
	input := model.DocumentInput{Text: r.Text, Status: status, Ratings: r.Ratings}
	if r.ID != nil {
		input.ID = *r.ID
	}
	return input
}

// AddDocumentsHandler adds one document or an array of documents to an index.
// Rejected documents are reported individually and do not stop the batch.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	accessor, ok := api.indexFromPath(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		SendBindError(c, err)
		return
	}

	var docs []DocumentRequest
	trimmed := bytes.TrimSpace(body)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		err = json.Unmarshal(trimmed, &docs)
	case bytes.HasPrefix(trimmed, []byte("{")):
		var doc DocumentRequest
		err = json.Unmarshal(trimmed, &doc)
		docs = []DocumentRequest{doc}
	default:
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest,
			"Invalid request body. Expecting a document object or an array of documents")
		return
	}
	if err != nil {
		SendBindError(c, err)
		return
	}

	if result := ValidateDocumentRequests(docs); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	inputs := make([]model.DocumentInput, len(docs))
	for i, doc := range docs {
		inputs[i] = doc.ToInput()
	}

	result := accessor.AddDocuments(inputs)

	status := http.StatusOK
	switch {
	case result.Added == 0:
		status = http.StatusBadRequest
	case len(result.Failed) > 0:
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// GetDocumentCountHandler returns the number of documents in an index.
func (api *API) GetDocumentCountHandler(c *gin.Context) {
	accessor, ok := api.indexFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"document_count": accessor.GetDocumentCount()})
}

// GetDocumentIDHandler returns the ID of the document added at :position.
func (api *API) GetDocumentIDHandler(c *gin.Context) {
	accessor, ok := api.indexFromPath(c)
	if !ok {
		return
	}

	position, result := ValidatePosition(c.Param("position"))
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	documentID, err := accessor.GetDocumentID(position)
	if err != nil {
		SendServiceError(c, "get document id", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"position":    position,
		"document_id": documentID,
	})
}
