package ifr

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/setupvar/builder/internal/logging"
)

// Parse reads an IFRExtractor verbose report and builds its settings
// model. The pass is a bounded, single-threaded scan: reassemble physical
// lines into logical records, classify each record, and fold the sequence
// into the model.
//
// On InvalidFormat or NotVerboseExtraction the whole parse is aborted and
// no model is returned. Lesser malformations (orphan option records,
// questions referencing undeclared stores) are absorbed into a best-effort
// model, see the package documentation.
func Parse(r io.Reader) (*Model, error) {
	records, err := Reassemble(r)
	if err != nil {
		return nil, err
	}

	model := buildModel(records, NewClassifier())

	logging.Debug("parsed report",
		zap.Int("records", len(records)),
		zap.Int("stores", len(model.Stores())),
		zap.Int("settings", model.Len()),
	)

	return model, nil
}

// ParseFile parses the report at the given path.
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	model, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return model, nil
}
