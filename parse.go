package main

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
)

// parseXY reads a two-column CSV of (x, y) pairs. The first row is treated
// as a header — and skipped — iff at least one of its two cells fails to
// parse as a float; otherwise every row is data (adapted from the
// equivalent heuristic in the teacher's parseHeader/parseCSV).
func parseXY(r io.Reader) (xs, ys []float64, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	row, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.New("parse: no data")
	}
	if err != nil {
		return nil, nil, err
	}

	if !isHeaderRow(row) {
		x, y, perr := parseRow(row)
		if perr != nil {
			return nil, nil, perr
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return xs, ys, err
		}

		x, y, perr := parseRow(row)
		if perr != nil {
			return xs, ys, perr
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}

	return xs, ys, nil
}

func parseRow(row []string) (x, y float64, err error) {
	x, err = strconv.ParseFloat(row[0], 64)
	if err != nil {
		return 0, 0, err
	}
	y, err = strconv.ParseFloat(row[1], 64)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// isHeaderRow reports whether row looks like a header: we only accept
// numeric input, so a row is a header iff at least one of its cells isn't
// a number.
func isHeaderRow(row []string) bool {
	for _, val := range row {
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			return true
		}
	}
	return false
}
