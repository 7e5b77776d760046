package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseGrid reads a delimited numeric table: one grid row per line, values
// separated by commas or whitespace (the two layouts found in the field
// data). Blank lines are skipped. Every row must have the same width.
func ParseGrid(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var rows [][]float64
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := splitDelimited(text)
		vals := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing %q: %w", line, f, err)
			}
			vals = append(vals, v)
		}
		rows = append(rows, vals)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewGridFromRows(rows)
}

// splitDelimited tokenizes a table row, treating commas and runs of
// whitespace interchangeably as separators.
func splitDelimited(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// WriteDelimited writes the grid as comma-separated rows, one line per grid
// row, at full float64 round-trip precision. ParseGrid reads the output
// back bit-for-bit.
func (g *Grid) WriteDelimited(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				if err := bw.WriteByte(','); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(g.At(r, c), 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
