package quote

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearPrefix is the two-digit year used to scope sequence ids.
func YearPrefix(now time.Time) string {
	return fmt.Sprintf("%02d", now.Year()%100)
}

// NextSequenceID allocates the next id for the year of now from history.
// Ids whose suffix is not a plain number are skipped.
func NextSequenceID(history []Quote, now time.Time) string {
	prefix := YearPrefix(now)
	var last uint64
	for _, q := range history {
		if !strings.HasPrefix(q.SequenceID, prefix) {
			continue
		}
		n, err := strconv.ParseUint(q.SequenceID[len(prefix):], 10, 64)
		if err != nil {
			continue
		}
		last = max(last, n)
	}
	return fmt.Sprintf("%s%04d", prefix, last+1)
}
