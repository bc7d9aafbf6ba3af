// Package period converts between free-text date-range strings and ISO dates.
//
// A period string looks like "2024.01 ~ 2024.06" or "2023.03 ~ 재직": a start
// half and an end half joined by a tilde, where the end half may instead be a
// marker word meaning "still ongoing". Section forms edit periods as a single
// text field, so both the editor and the synchronizer go through this package
// at the section boundary.
package period

import (
	"fmt"
	"regexp"
	"strings"
)

// Range is the parsed form of a period string. Dates are ISO YYYY-MM-DD
// strings; an empty string means the half was absent or unparsable.
// When Current is true EndDate is always empty.
type Range struct {
	StartDate string
	EndDate   string
	Current   bool
}

// datePattern accepts year.month[.day] with '.', '-' or '/' separators.
var datePattern = regexp.MustCompile(`(\d{4})[.\-/](\d{1,2})(?:[.\-/](\d{1,2}))?`)

// currentMarkers are the literal words recognized as "still enrolled/employed".
// The Korean markers come from the original UI; the English ones are accepted
// so documents edited by hand round-trip too.
var currentMarkers = []string{"재학", "재직", "현재", "current", "present", "now"}

// DefaultCurrentMarker is what Format emits when Current is set and the
// caller does not pick a marker.
const DefaultCurrentMarker = "현재"

// Parse splits text on '~' and extracts a date from each half. The end half
// is checked against the current markers first; a match sets Current and
// leaves EndDate empty. A blank or unparsable half yields an empty date, not
// an error: the form tolerates partial input.
func Parse(text string) Range {
	if strings.TrimSpace(text) == "" {
		return Range{}
	}

	parts := strings.SplitN(text, "~", 2)
	startRaw := strings.TrimSpace(parts[0])
	endRaw := ""
	if len(parts) > 1 {
		endRaw = strings.TrimSpace(parts[1])
	}

	r := Range{StartDate: toDateStr(startRaw)}

	if endRaw != "" {
		if isCurrentMarker(endRaw) {
			r.Current = true
		} else {
			r.EndDate = toDateStr(endRaw)
		}
	}

	return r
}

// Format renders a Range back into display form at year-month granularity,
// e.g. "2024.01 ~ 2024.06" or "2023.03 ~ 현재". Either half may be empty, in
// which case only the non-empty half (or nothing) is returned. marker is the
// word used for an ongoing range; empty selects DefaultCurrentMarker.
func Format(r Range, marker string) string {
	start := toYearMonth(r.StartDate)

	var end string
	if r.Current {
		if marker == "" {
			marker = DefaultCurrentMarker
		}
		end = marker
	} else {
		end = toYearMonth(r.EndDate)
	}

	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start
	default:
		return fmt.Sprintf("%s ~ %s", start, end)
	}
}

// toDateStr extracts a date from raw text and normalizes it to YYYY-MM-DD,
// defaulting the day to 01. Returns "" when no date is found.
func toDateStr(raw string) string {
	m := datePattern.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	month := m[2]
	if len(month) == 1 {
		month = "0" + month
	}
	day := m[3]
	if day == "" {
		day = "01"
	} else if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%s-%s-%s", m[1], month, day)
}

// toYearMonth truncates an ISO date to "YYYY.MM". Day information is dropped
// here, which is why a parse/format round trip is lossy below month
// granularity.
func toYearMonth(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	parts := strings.Split(dateStr, "-")
	if len(parts) < 2 {
		return dateStr
	}
	return parts[0] + "." + parts[1]
}

func isCurrentMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range currentMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
