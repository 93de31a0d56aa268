package size

import (
	"strconv"
)

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// Human formats a byte count with binary units and one decimal place,
// e.g. "1.5 MB". Non-positive counts have no representation.
func Human(bytes int64) (string, bool) {
	if bytes <= 0 {
		return "", false
	}
	switch {
	case bytes >= gib:
		return fmtFloat1(float64(bytes)/gib) + " GB", true
	case bytes >= mib:
		return fmtFloat1(float64(bytes)/mib) + " MB", true
	case bytes >= kib:
		return fmtFloat1(float64(bytes)/kib) + " KB", true
	}
	return strconv.FormatInt(bytes, 10) + " B", true
}

// HumanPtr is Human for an optional count.
func HumanPtr(bytes *int64) (string, bool) {
	if bytes == nil {
		return "", false
	}
	return Human(*bytes)
}

func fmtFloat1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
