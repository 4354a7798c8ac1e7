package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/p0llard/vericert/internal/models"
)

// Write writes the statistics report to path as indented JSON, overwriting
// any previous report.
func Write(path string, r models.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("encode report %s: %w", path, err)
	}
	return nil
}
