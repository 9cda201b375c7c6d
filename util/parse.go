package util

import (
	"fmt"
	"strings"
)

// ParseSize parses a human-readable size string (e.g. "10MB", "512KB", "2GB")
// into bytes. Returns defaultBytes if the string cannot be parsed.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var multiplier int64 = 1
	switch {
	case strings.HasSuffix(s, "GB"):
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "MB"):
		multiplier = 1024 * 1024
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "KB"):
		multiplier = 1024
		s = s[:len(s)-2]
	}

	var val int64
	if _, err := fmt.Sscanf(s, "%d", &val); err == nil {
		return val * multiplier
	}
	return defaultBytes
}

// ParseSizeMB parses a human-readable size string into whole megabytes,
// rounding sub-megabyte sizes up to 1. Returns defaultMB if the string
// cannot be parsed.
func ParseSizeMB(s string, defaultMB int) int {
	bytes := ParseSize(s, int64(defaultMB)*1024*1024)
	if bytes <= 0 {
		return defaultMB
	}
	mb := bytes / (1024 * 1024)
	if mb == 0 {
		return 1
	}
	return int(mb)
}
