// Package ingest loads tabular point data for clustering. Input is CSV with
// a header row naming the attribute columns; every cell below the header
// must be numeric. Points receive stable 1-based ids in row order. Malformed
// input fails the whole load: the clustering core assumes a validated,
// static point set, so partial ingests are never returned.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/banshee-data/cash.report/internal/cash"
)

// Dataset is a parsed point set plus its attribute column names.
type Dataset struct {
	Names  []string
	Points []cash.Point
}

// ReadFile parses the CSV file at path.
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

// Read parses CSV point data from r.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("header row has no columns")
	}

	ds := &Dataset{Names: header}
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// encoding/csv reports ragged rows here with line context.
			return nil, err
		}

		attrs := make([]float64, len(record))
		for col, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: not a number: %q", row, header[col], cell)
			}
			attrs[col] = v
		}
		ds.Points = append(ds.Points, cash.Point{
			ID:    int64(len(ds.Points) + 1),
			Attrs: attrs,
		})
	}

	return ds, nil
}
