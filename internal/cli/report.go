package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AlonMell/wordfreq/internal/wordcount"
)

// Summary totals a report.
type Summary struct {
	Distinct int
	Total    int
}

// WriteReport prints one "count word" row per entry with counts right
// aligned, then the summary line when s is not nil.
func WriteReport(w io.Writer, entries []wordcount.Entry, s *Summary) error {
	width := 0
	for _, e := range entries {
		width = max(width, len(strconv.Itoa(e.Count)))
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%*d %s\n", width, e.Count, e.Word); err != nil {
			return err
		}
	}

	if s != nil {
		if _, err := fmt.Fprintf(w, "distinct=%d total=%d\n", s.Distinct, s.Total); err != nil {
			return err
		}
	}
	return nil
}
