package output

import (
	"encoding/json"

	"github.com/hcgo/housing-calculator/internal/domain"
)

// JSONFormatter renders the full analysis result, record series included,
// as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
