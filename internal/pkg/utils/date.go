package utils

import (
	"regexp"
	"strings"
	"time"
)

const (
	// ISODate is the internal and creation-payload date layout.
	ISODate = "2006-01-02"
	// USDate is the MM/DD/YYYY layout the backend uses for week_starting and display dates.
	USDate = "01/02/2006"
)

var (
	isoPrefixRegex = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
	usDateRegex    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// ToMMDDYYYY converts YYYY-MM-DD into MM/DD/YYYY, returning "" for anything else.
func ToMMDDYYYY(iso string) string {
	t, err := time.Parse(ISODate, iso)
	if err != nil {
		return ""
	}
	return t.Format(USDate)
}

// FromMMDDYYYY converts MM/DD/YYYY into YYYY-MM-DD, returning "" for anything else.
func FromMMDDYYYY(us string) string {
	if !usDateRegex.MatchString(us) {
		return ""
	}
	t, err := time.Parse(USDate, us)
	if err != nil {
		return ""
	}
	return t.Format(ISODate)
}

// NormalizeDate turns any date shape the backend emits (ISO, ISO datetime,
// MM/DD/YYYY) into YYYY-MM-DD. Unknown shapes yield "".
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if m := isoPrefixRegex.FindStringSubmatch(s); m != nil {
		if _, err := time.Parse(ISODate, m[1]); err == nil {
			return m[1]
		}
		return ""
	}
	if iso := FromMMDDYYYY(s); iso != "" {
		return iso
	}
	// RFC1123 style, e.g. "Mon, 02 Jun 2025 00:00:00 GMT" from Flask's default encoder
	if t, err := time.Parse(time.RFC1123, s); err == nil {
		return t.Format(ISODate)
	}
	return ""
}

// NormalizeTime strips seconds from a clock value: "08:00:00" becomes "08:00".
func NormalizeTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return s
	}
	return parts[0] + ":" + parts[1]
}
