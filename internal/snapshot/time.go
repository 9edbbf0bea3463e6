package snapshot

import "time"

const timestampLayout = time.RFC3339Nano

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
