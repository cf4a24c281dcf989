package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/search-server/services"
)

// SearchRequest defines the structure for search queries.
// Without status and min_rating only ACTUAL documents are searched.
type SearchRequest struct {
	Query     string `json:"query"`
	Status    string `json:"status,omitempty"`
	MinRating *int   `json:"min_rating,omitempty"`
}

// MatchRequest asks which words of Query a single document contains.
type MatchRequest struct {
	Query      string `json:"query"`
	DocumentID *int   `json:"document_id"`
}

// SearchHandler handles search requests to an index.
// Every successful search is recorded in the index request statistics.
func (api *API) SearchHandler(c *gin.Context) {
	accessor, ok := api.indexFromPath(c)
	if !ok {
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendBindError(c, err)
		return
	}

	status, result := ValidateSearchRequest(&req)
	if result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	searchResult, err := accessor.Search(services.SearchQuery{
		QueryString: req.Query,
		Status:      status,
		MinRating:   req.MinRating,
	})
	if err != nil {
		SendServiceError(c, "search", err)
		return
	}

	c.JSON(http.StatusOK, searchResult)
}

// MatchHandler returns the query words found in one document and its status.
func (api *API) MatchHandler(c *gin.Context) {
	accessor, ok := api.indexFromPath(c)
	if !ok {
		return
	}

	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendBindError(c, err)
		return
	}
	if result := ValidateMatchRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	words, status, err := accessor.MatchDocument(req.Query, *req.DocumentID)
	if err != nil {
		SendServiceError(c, "match document", err)
		return
	}

	c.JSON(http.StatusOK, services.MatchResult{
		DocumentID: *req.DocumentID,
		Words:      words,
		Status:     status,
	})
}
