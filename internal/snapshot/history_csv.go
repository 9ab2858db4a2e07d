package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"agrifleet/internal/telemetry"
)

// Historical records are persisted as one wide CSV: fixed identity columns
// followed by one column per observed parameter key, union across all device
// types, empty cells where a device does not report that parameter.
var historyIdentityColumns = []string{"device_id", "device_type", "timestamp"}

func writeHistoryCSV(path string, records []telemetry.HistoricalRecord) error {
	keys := historyParameterKeys(records)

	file, err := os.Create(path)
	if err != nil {
		return &PersistenceError{Op: "write " + filepath.Base(path), Err: err}
	}

	w := csv.NewWriter(file)
	_ = w.Write(append(append([]string{}, historyIdentityColumns...), keys...))
	row := make([]string, 0, len(historyIdentityColumns)+len(keys))
	for _, record := range records {
		row = row[:0]
		row = append(row, record.DeviceID, record.DeviceType, record.Timestamp.Format(time.RFC3339))
		for _, key := range keys {
			if v, ok := record.Values[key]; ok {
				row = append(row, v.String())
			} else {
				row = append(row, "")
			}
		}
		_ = w.Write(row)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return &PersistenceError{Op: "write " + filepath.Base(path), Err: err}
	}
	if err := file.Close(); err != nil {
		return &PersistenceError{Op: "write " + filepath.Base(path), Err: err}
	}
	return nil
}

func readHistoryCSV(path string) ([]telemetry.HistoricalRecord, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: missing %s", ErrNotFound, filepath.Base(path))
	}
	if err != nil {
		return nil, &PersistenceError{Op: "read " + filepath.Base(path), Err: err}
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &PersistenceError{Op: "decode " + filepath.Base(path), Err: err}
	}
	if len(rows) == 0 {
		return nil, &PersistenceError{Op: "decode " + filepath.Base(path), Err: fmt.Errorf("missing header")}
	}

	header := rows[0]
	if len(header) < len(historyIdentityColumns) {
		return nil, &PersistenceError{Op: "decode " + filepath.Base(path), Err: fmt.Errorf("short header: %d columns", len(header))}
	}
	keys := header[len(historyIdentityColumns):]

	records := make([]telemetry.HistoricalRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, &PersistenceError{Op: "decode " + filepath.Base(path), Err: fmt.Errorf("row %d: %d columns, want %d", i+2, len(row), len(header))}
		}
		ts, err := time.Parse(time.RFC3339, row[2])
		if err != nil {
			return nil, &PersistenceError{Op: "decode " + filepath.Base(path), Err: fmt.Errorf("row %d: %v", i+2, err)}
		}
		record := telemetry.HistoricalRecord{
			DeviceID:   row[0],
			DeviceType: row[1],
			Timestamp:  ts,
			Values:     make(map[string]telemetry.Value, len(keys)),
		}
		for j, key := range keys {
			if v, ok := telemetry.ParseValue(row[len(historyIdentityColumns)+j]); ok {
				record.Values[key] = v
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func historyParameterKeys(records []telemetry.HistoricalRecord) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		for key := range record.Values {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
