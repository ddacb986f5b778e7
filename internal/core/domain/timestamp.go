package domain

import (
	"strconv"
	"time"
)

// UnixSeconds renders t as fractional Unix seconds, the timestamp form
// stored in every ledger record.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// FormatTimestamp renders a ledger timestamp in its canonical textual form,
// the shortest decimal string that round-trips the value. Both record
// hashes include timestamps rendered this way, so the form must not change.
func FormatTimestamp(ts float64) string {
	return strconv.FormatFloat(ts, 'f', -1, 64)
}
