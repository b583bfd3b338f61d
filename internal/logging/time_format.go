package logging

import "time"

// A run rarely spans midnight, so console lines carry only the wall clock,
// down to the millisecond.
const consoleTimeLayout = "15:04:05.000"

func formatTimestamp(ts time.Time) string {
	return ts.Local().Format(consoleTimeLayout)
}
