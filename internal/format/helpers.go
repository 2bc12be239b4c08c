package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FmtDuration formats d as "Xm Ys", "Y.Zs" or "Nms".
func FmtDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		s := int(d.Seconds())
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	case d >= time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// Truncate shortens s to maxLen bytes, ending in "..." when cut.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func BoolMark(v bool) string {
	if v {
		return "✓"
	}
	return "✗"
}

// Ints joins values with commas; an empty list renders as "-".
func Ints(vals []int) string {
	if len(vals) == 0 {
		return "-"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
