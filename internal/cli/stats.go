package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// statsRow is one line of a performance file: date, score, seconds and run ID.
type statsRow struct {
	Date    time.Time
	Score   float64
	Elapsed time.Duration
	RunID   string
}

func (r statsRow) record() []string {
	return []string{
		r.Date.Format(dateLayout),
		strconv.FormatFloat(r.Score, 'f', -1, 64),
		strconv.FormatFloat(r.Elapsed.Seconds(), 'f', 3, 64),
		r.RunID,
	}
}

// statsPath returns the performance file of pilot inside dir.
func statsPath(dir, pilot string) string {
	return filepath.Join(dir, "performance-"+pilot+".csv")
}

// appendStats appends row to the CSV file at path, creating it if needed.
func appendStats(path string, row statsRow) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open stats: %w", err)
	}
	w := csv.NewWriter(f)
	if err = w.Write(row.record()); err != nil {
		f.Close()
		return fmt.Errorf("write stats: %w", err)
	}
	w.Flush()
	if err = w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write stats: %w", err)
	}

	return f.Close()
}
