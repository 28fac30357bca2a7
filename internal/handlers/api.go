package handlers

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/emilythestrangee/news-api/backend/internal/apperr"
)

//go:embed endpoints.yaml
var endpointsYAML []byte

var loadEndpoints = sync.OnceValues(func() (map[string]any, error) {
	doc := map[string]any{}
	if err := yaml.Unmarshal(endpointsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing endpoints document: %w", err)
	}
	return doc, nil
})

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// GetAPI describes every endpoint.
func (h *APIHandler) GetAPI(c *gin.Context) {
	endpoints, err := loadEndpoints()
	if err != nil {
		_ = c.Error(apperr.Internal(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
}
