// Package codec reads cost matrices and writes solved assignments in the
// formats the hungarian command understands: text, yaml and json.
package codec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/assignment/hungarian"
	"github.com/katalvlaran/assignment/matrix"
)

// ErrUnknownFormat is returned by ForFormat for an unsupported format name.
var ErrUnknownFormat = errors.New("codec: unknown format")

// Format names accepted by ForFormat.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Importer reads a cost matrix.
type Importer interface {
	Parse(r io.Reader) (*matrix.Dense[int64], error)
	Format() string
}

// Exporter writes a solved assignment.
type Exporter interface {
	Export(rep *Report, w io.Writer) error
	Format() string
}

// Codec is an Importer and an Exporter for the same format.
type Codec interface {
	Importer
	Exporter
}

// Report is the serialized form of a solved assignment.
type Report struct {
	Assignment [][]int `json:"assignment" yaml:"assignment,flow"`
	Columns    []int   `json:"columns" yaml:"columns,flow"`
	Cost       int64   `json:"cost" yaml:"cost"`
}

// NewReport converts a solver result into a Report.
func NewReport(res hungarian.Result[int64]) *Report {
	return &Report{
		Assignment: res.Assignment.ToRows(),
		Columns:    append([]int(nil), res.Columns...),
		Cost:       res.Cost,
	}
}

// costDocument is the structured (yaml/json) input shape.
type costDocument struct {
	Costs [][]int64 `json:"costs" yaml:"costs"`
}

// ForFormat returns the codec registered under name (case-insensitive).
func ForFormat(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case FormatText:
		return NewTextCodec(), nil
	case FormatYAML, "yml":
		return NewYAMLCodec(), nil
	case FormatJSON:
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Formats lists the canonical format names.
func Formats() []string {
	return []string{FormatText, FormatYAML, FormatJSON}
}
