package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ============================================================================
// CSV — The only persistence this program has
// ============================================================================

// WriteCSV dumps the table to path, overwriting any previous run's file.
func WriteCSV(path string, rows []Transaction) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, t := range rows {
		if err := writer.Write(t.record()); err != nil {
			return fmt.Errorf("write row %s: %w", t.OrderID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// ReadCSV loads a table previously written by WriteCSV. The header must
// match Header exactly; derived date parts are recomputed from the Date
// column rather than trusted.
func ReadCSV(path string) ([]Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []Transaction
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		t, err := fromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, t)
	}
	return rows, nil
}

func checkHeader(got []string) error {
	want := Header()
	if len(got) != len(want) {
		return fmt.Errorf("header has %d columns, want %d", len(got), len(want))
	}
	for i, col := range want {
		if got[i] != col {
			return fmt.Errorf("header column %d is %q, want %q", i, got[i], col)
		}
	}
	return nil
}
