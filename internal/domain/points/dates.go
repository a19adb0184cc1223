package points

import (
	"regexp"
	"strconv"
	"time"
)

const isoDate = "2006-01-02"

var (
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	brDatePattern  = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4}|\d{2})\b`)
)

// NormalizeDate converts invoice dates to YYYY-MM-DD.
// DD/MM/YYYY (also D/M/YY, dashes or dots) is reordered, YYYY-MM-DD passes through,
// anything unreadable becomes the date of now.
func NormalizeDate(raw string, now time.Time) string {
	date, _ := normalizeDate(raw, now)

	return date
}

func normalizeDate(raw string, now time.Time) (string, bool) {
	if m := isoDatePattern.FindStringSubmatch(raw); m != nil {
		if _, err := time.Parse(isoDate, m[0]); err == nil {
			return m[0], false
		}
	}

	if m := brDatePattern.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year += 2000
		}

		if t, ok := validDate(year, month, day); ok {
			return t.Format(isoDate), false
		}
	}

	return now.Format(isoDate), true
}

// validDate rejects values time.Date would silently roll over, such as 31/02.
func validDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}

	return t, true
}
