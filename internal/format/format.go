// Package format holds the small pure formatting helpers shared by the
// view layer.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// queueNames maps queue IDs to display names.
var queueNames = map[int]string{
	420:  "Ranked Solo/Duo",
	440:  "Ranked Flex",
	400:  "Normal (Draft)",
	430:  "Normal (Blind)",
	450:  "ARAM",
	1700: "Arena",
	1900: "URF",
}

// QueueName returns the display name for a queue ID, falling back to
// "Other (id)" for queues we don't have a label for.
func QueueName(queueID int) string {
	if name, ok := queueNames[queueID]; ok {
		return name
	}
	return fmt.Sprintf("Other (%d)", queueID)
}

// Duration formats a game duration in seconds as "Xm YYs".
func Duration(seconds int) string {
	minutes := seconds / 60
	remaining := seconds % 60
	return fmt.Sprintf("%dm %02ds", minutes, remaining)
}

// Timestamp formats an epoch-millisecond timestamp as a local
// "2006-01-02 15:04" string.
func Timestamp(millis int64) string {
	return time.UnixMilli(millis).Format("2006-01-02 15:04")
}

// Number formats an integer with thousands separators, e.g. 23841 ->
// "23,841".
func Number(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Ratio formats a KDA-style ratio with two decimals.
func Ratio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Percent formats a win rate with one decimal, without the sign.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
