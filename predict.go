package main

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/wlattner/segreg"
)

// predictFromFile reads a single column of x values from fName and writes
// "x,predicted" pairs to standard output (adapted from the teacher's
// writePred, which wrote one prediction per line).
func predictFromFile(tree *segreg.Tree, fName string) error {
	f, err := os.Open(fName)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			continue // skip a header row, if present
		}

		pred := tree.Predict(x)
		if _, err := w.WriteString(strconv.FormatFloat(x, 'f', -1, 64)); err != nil {
			return err
		}
		if _, err := w.WriteString(","); err != nil {
			return err
		}
		if _, err := w.WriteString(strconv.FormatFloat(pred, 'f', -1, 64)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return nil
}
