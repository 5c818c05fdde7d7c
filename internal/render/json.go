package render

import (
	"encoding/json"
	"io"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

// JSON writes the report as indented JSON for programmatic consumers.
// Map keys marshal in sorted order, so identical reports serialize
// byte-identically.
func JSON(w io.Writer, rep models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rep)
}
