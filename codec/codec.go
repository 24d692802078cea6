// Package codec reads and writes trees as JSON or YAML, keeping object keys
// in document order in both directions.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/authcorp/optics/tree"
)

// Codec converts between bytes and trees.
type Codec interface {
	Name() string
	Encode(v tree.Value) ([]byte, error)
	Decode(data []byte) (tree.Value, error)
}

// ForFormat returns the codec registered for a format name.
func ForFormat(format string) (Codec, error) {
	switch strings.ToLower(format) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// FormatOf guesses the format from a file extension, defaulting to json.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
