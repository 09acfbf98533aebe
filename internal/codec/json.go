package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/assignment/matrix"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return FormatJSON
}

// Parse reads {"costs": [[...], ...]}
func (c *JSONCodec) Parse(r io.Reader) (*matrix.Dense[int64], error) {
	var doc costDocument
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	m, err := matrix.NewDenseFromRows(doc.Costs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: costs: %w", err)
	}

	return m, nil
}

// Export writes rep as indented JSON
func (c *JSONCodec) Export(rep *Report, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
