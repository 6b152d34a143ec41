package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayLayout is the canonical textual form of a CalendarDate.
const DayLayout = "2006-01-02"

var (
	slashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:[ T].*)?$`)
	isoDate   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})(?:[ T].*)?$`)
)

// genericLayouts are tried last, in order, once the slash and ISO forms
// have been ruled out.
var genericLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
	"Mon, Jan 2, 2006",
	"2006/01/02",
	"01-02-2006",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseDate normalises a spreadsheet date cell into a calendar day at
// midnight in loc. Slash dates are read as M/D/YYYY, then ISO
// YYYY-MM-DD, then a list of generic layouts. The second return value is
// false when nothing matched or the components do not form a real date
// (for example 2/30/2024); callers treat that as "no date".
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if m := slashDate.FindStringSubmatch(s); m != nil {
		return civil(m[3], m[1], m[2], loc)
	}
	if m := isoDate.FindStringSubmatch(s); m != nil {
		return civil(m[1], m[2], m[3], loc)
	}
	for _, layout := range genericLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		// Layouts carrying an explicit offset are converted so the day is
		// the one observed in the reporting location.
		return Truncate(t, loc), true
	}
	return time.Time{}, false
}

func civil(ys, ms, ds string, loc *time.Location) (time.Time, bool) {
	y, err1 := strconv.Atoi(ys)
	m, err2 := strconv.Atoi(ms)
	d, err3 := strconv.Atoi(ds)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	// time.Date normalises overflow (Feb 30 -> Mar 1); reject it.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// maxSerial is the Sheets serial number of 9999-12-31.
const maxSerial = 2958465

// SerialDate converts a Sheets/Excel serial day number (days since
// 1899-12-30, fraction is time of day) into a calendar day in loc.
func SerialDate(serial float64, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	if serial < 1 || serial >= maxSerial+1 {
		return time.Time{}, false
	}
	return time.Date(1899, time.December, 30+int(serial), 0, 0, 0, 0, loc), true
}

// Truncate returns midnight of t's calendar day as observed in loc.
func Truncate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
// Time of day is ignored.
func SameDay(a, b time.Time, loc *time.Location) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	if loc == nil {
		loc = time.UTC
	}
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}

// AddDays moves a calendar day forward by n days, staying at midnight
// across DST transitions.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// DayKey formats a day as YYYY-MM-DD in loc; zero time yields "".
func DayKey(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return Truncate(t, loc).Format(DayLayout)
}

// MonthKey formats a day as YYYY-MM in loc; zero time yields "".
func MonthKey(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return Truncate(t, loc).Format("2006-01")
}
