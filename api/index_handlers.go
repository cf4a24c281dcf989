package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/internal/logger"
)

// CreateIndexHandler handles the request to create a new index.
// Request Body: config.ServerSettings
func (api *API) CreateIndexHandler(c *gin.Context) {
	var settings config.ServerSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		SendBindError(c, err)
		return
	}

	if result := ValidateIndexSettings(&settings); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.CreateIndex(settings); err != nil {
		SendServiceError(c, "create index", err)
		return
	}

	logger.FromContext(c.Request.Context()).Info("index created via API", "index", settings.Name)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Index '" + settings.Name + "' created successfully",
		"name":    settings.Name,
	})
}

// ListIndexesHandler lists all index names in ascending order.
func (api *API) ListIndexesHandler(c *gin.Context) {
	names := api.engine.ListIndexes()
	c.JSON(http.StatusOK, gin.H{
		"indexes": names,
		"count":   len(names),
	})
}

// GetIndexHandler returns the settings and document count of one index.
func (api *API) GetIndexHandler(c *gin.Context) {
	accessor, ok := api.indexFromPath(c)
	if !ok {
		return
	}

	settings := accessor.Settings()
	c.JSON(http.StatusOK, gin.H{
		"name":           settings.Name,
		"settings":       settings,
		"document_count": accessor.GetDocumentCount(),
	})
}

// DeleteIndexHandler removes an index.
func (api *API) DeleteIndexHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.DeleteIndex(indexName); err != nil {
		SendServiceError(c, "delete index", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Index '" + indexName + "' deleted successfully"})
}

// GetIndexStatsHandler returns statistics for a specific index
func (api *API) GetIndexStatsHandler(c *gin.Context) {
	accessor, ok := api.indexFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, accessor.Stats())
}
