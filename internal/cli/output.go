package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ironsheep/postcard-grid/internal/grid"
)

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// parseBoundaryFlag normalizes repeated or comma-separated boundary flag
// values. Any unparsable value is an error so typos are not silently turned
// into an empty grid.
func parseBoundaryFlag(name string, values []string) ([]int, error) {
	items := make([]any, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			items = append(items, v)
		}
	}
	parsed := grid.ParseBoundaryList(items)
	if len(items) > 0 && len(parsed) == 0 {
		return nil, fmt.Errorf("invalid --%s value %q", name, strings.Join(values, ","))
	}
	return parsed, nil
}
