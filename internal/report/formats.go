// Package report renders document risk assessments into exportable formats.
package report

import (
	"fmt"
	"os"
	"sync"

	"github.com/caveat-dev/caveat/internal/models"
	"github.com/caveat-dev/caveat/pkg/logger"
)

// Format represents a report rendering strategy.
type Format interface {
	// Render produces the report bytes for a document assessment.
	Render(doc *models.DocumentRisk) ([]byte, error)
	// Name returns the format identifier (e.g., "markdown", "json").
	Name() string
	// Description returns a human-readable description of the format.
	Description() string
}

// FormatFactory creates instances of report formats.
type FormatFactory func(log logger.Logger) (Format, error)

var (
	formatRegistry = make(map[string]FormatFactory)
	registryMutex  sync.RWMutex
)

// RegisterFormat registers a new report format factory.
func RegisterFormat(name string, factory FormatFactory) {
	registryMutex.Lock()
	defer registryMutex.Unlock()

	if factory == nil {
		panic(fmt.Sprintf("report: RegisterFormat factory is nil for format %q", name))
	}
	if _, dup := formatRegistry[name]; dup {
		panic(fmt.Sprintf("report: RegisterFormat called twice for format %q", name))
	}
	formatRegistry[name] = factory
}

// GetFormat creates an instance of the specified report format.
func GetFormat(name string, log logger.Logger) (Format, error) {
	registryMutex.RLock()
	factory, exists := formatRegistry[name]
	registryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown report format: %s", name)
	}

	return factory(log)
}

// ListFormats returns a list of all registered format names.
func ListFormats() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	formats := make([]string, 0, len(formatRegistry))
	for name := range formatRegistry {
		formats = append(formats, name)
	}
	return formats
}

// WriteFile renders the document with the named format and writes the result
// to outputPath.
func WriteFile(name string, doc *models.DocumentRisk, outputPath string, log logger.Logger) error {
	format, err := GetFormat(name, log)
	if err != nil {
		return err
	}

	data, err := format.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering %s report: %w", name, err)
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("writing %s report: %w", name, err)
	}

	log.Info("report written", "format", name, "path", outputPath, "bytes", len(data))
	return nil
}

func init() {
	RegisterFormat("markdown", func(log logger.Logger) (Format, error) {
		return &markdownFormat{logger: log}, nil
	})

	RegisterFormat("json", func(log logger.Logger) (Format, error) {
		return &jsonFormat{logger: log}, nil
	})
}
