// Package config provides configuration structures for the search server.
// It defines per-index settings and the application configuration loaded from YAML.
package config

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxResultDocumentCount is the fixed top-K cutoff applied to every search.
	DefaultMaxResultDocumentCount = 5
	// DefaultRelevanceEpsilon is the distance below which two relevances are considered tied.
	DefaultRelevanceEpsilon = 1e-6
	// DefaultRequestWindow is the depth, in ticks, of the request statistics window.
	DefaultRequestWindow = 1440
)

// ServerSettings contains all configuration options for one search server instance.
type ServerSettings struct {
	Name                   string   `json:"name" yaml:"name"`                                           // Unique name for the index
	StopWords              []string `json:"stop_words" yaml:"stopWords"`                                // Case-sensitive words ignored everywhere
	MaxResultDocumentCount int      `json:"max_result_document_count" yaml:"maxResultDocumentCount"` // Top-K cutoff (e.g., 5)
	RelevanceEpsilon       float64  `json:"relevance_epsilon" yaml:"relevanceEpsilon"`               // Relevance tie threshold (e.g., 1e-6)
	RequestWindow          int      `json:"request_window" yaml:"requestWindow"`                     // Request statistics window in ticks (e.g., 1440)
}

// ApplyDefaults applies default values to the settings
func (settings *ServerSettings) ApplyDefaults() {
	if settings.MaxResultDocumentCount == 0 {
		settings.MaxResultDocumentCount = DefaultMaxResultDocumentCount
	}
	if settings.RelevanceEpsilon == 0 {
		settings.RelevanceEpsilon = DefaultRelevanceEpsilon
	}
	if settings.RequestWindow == 0 {
		settings.RequestWindow = DefaultRequestWindow
	}
	if settings.StopWords == nil {
		settings.StopWords = []string{}
	}
}

// Validate returns a list of problems with the settings; an empty list means valid.
// Stop-word content is validated by the server constructor, not here.
func (settings *ServerSettings) Validate() []string {
	var problems []string

	if err := ValidateIndexName(settings.Name); err != nil {
		problems = append(problems, err.Error())
	}
	if settings.MaxResultDocumentCount < 0 {
		problems = append(problems, "max_result_document_count must be positive")
	}
	if settings.RelevanceEpsilon < 0 {
		problems = append(problems, "relevance_epsilon must not be negative")
	}
	if settings.RequestWindow < 0 {
		problems = append(problems, "request_window must be positive")
	}

	return problems
}

// ValidateIndexName checks that name is non-empty and made of letters, digits, '_' or '-'.
func ValidateIndexName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("index name cannot be empty")
	}
	for _, r := range name {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		if !isLetter && !isDigit && r != '_' && r != '-' {
			return fmt.Errorf("index name '%s' contains invalid character '%c'", name, r)
		}
	}
	return nil
}
