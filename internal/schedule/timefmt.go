package schedule

import (
	"fmt"
	"time"
)

// Timestamp layouts the hydrate payload has been observed to use. The zoned
// form wins when both could parse; either way the instant is kept as given,
// never converted to a local zone.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseStartTime(iso string) (time.Time, bool) {
	if iso == "" {
		return time.Time{}, false
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatClock renders a start timestamp as a compact 12-hour clock, "9:00AM"
// style with no leading zero and no space before the meridiem. Midnight is
// "12:00AM" and noon "12:00PM". Unparseable input yields nil.
func FormatClock(iso string) *string {
	t, ok := parseStartTime(iso)
	if !ok {
		return nil
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "AM"
	if t.Hour() >= 12 {
		meridiem = "PM"
	}
	s := fmt.Sprintf("%d:%02d%s", hour, t.Minute(), meridiem)
	return &s
}

// FormatWeekday renders a start timestamp as its three-letter weekday
// ("Sat"). Unparseable input yields nil.
func FormatWeekday(iso string) *string {
	t, ok := parseStartTime(iso)
	if !ok {
		return nil
	}
	s := t.Format("Mon")
	return &s
}
