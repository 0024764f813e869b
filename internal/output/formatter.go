package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hcgo/housing-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that renders a completed
// analysis to bytes. Implementations should be pure (no side effects
// besides deterministic formatting).
type Formatter interface {
	Format(result *domain.AnalysisResult) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores the available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil when unknown.
func GetFormatterByName(name string) Formatter {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// GenerateReport renders the analysis with the named formatter and writes
// it to stdout.
func GenerateReport(result *domain.AnalysisResult, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unknown output format %q", format)
	}
	data, err := f.Format(result)
	if err != nil {
		return fmt.Errorf("formatter %s failed: %w", f.Name(), err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// WriteFormatted renders the analysis with a formatter and writes it to a
// file in dir, returning the path written.
func WriteFormatted(f Formatter, result *domain.AnalysisResult, dir, filename string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
