package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/assignment/matrix"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return FormatYAML
}

// Parse reads a document of the form
//
//	costs:
//	  - [4, 1, 3]
//	  - [2, 0, 5]
func (c *YAMLCodec) Parse(r io.Reader) (*matrix.Dense[int64], error) {
	var doc costDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	m, err := matrix.NewDenseFromRows(doc.Costs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: costs: %w", err)
	}

	return m, nil
}

// Export writes rep as YAML
func (c *YAMLCodec) Export(rep *Report, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}
