package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/assignment/matrix"
)

// MaxTextLineBytes bounds a single input line of the text format.
const MaxTextLineBytes = 64 << 20

// TextCodec handles the plain whitespace-separated format: one matrix row
// per line, blank lines and '#' comments ignored.
type TextCodec struct{}

// NewTextCodec creates a new text codec
func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

// Format returns the codec format identifier
func (c *TextCodec) Format() string {
	return FormatText
}

// Parse reads one row per non-blank line. Rows of unequal length or an
// empty input fail with matrix.ErrInvalidDimensions.
func (c *TextCodec) Parse(r io.Reader) (*matrix.Dense[int64], error) {
	var (
		rows    [][]int64
		scanner = bufio.NewScanner(r)
		line    int
	)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxTextLineBytes)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		row := make([]int64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse text: line %d: %w", line, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text: %w", err)
	}

	return m, nil
}

// Export prints the 0/1 matrix, one space-separated row per line, then
// "cost: N".
func (c *TextCodec) Export(rep *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range rep.Assignment {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(v))
		}
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "cost: %d\n", rep.Cost)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}

	return nil
}
