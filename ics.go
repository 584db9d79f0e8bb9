package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
)

// writeCalendar emits one event per triplet, placed into the week of the
// supplied reference time. Triplets without a recognizable day or time
// range are skipped, there is nowhere to anchor them.
func writeCalendar(triplets []Triplet, now time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	monday := startOfWeek(now)
	for i, t := range triplets {
		dayOffset := weekdayIndex(t.Day)
		if dayOffset == -1 {
			continue
		}
		start, end, ok := parseTimeRange(t.Time)
		if !ok {
			continue
		}

		day := monday.AddDate(0, 0, dayOffset)
		startAt := day.Add(time.Duration(start) * time.Minute)
		endAt := day.Add(time.Duration(end) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s-%d", startAt.Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(startAt)
		event.SetEndAt(endAt)
		event.SetSummary(t.Topic)
		event.SetDescription(fmt.Sprintf("Study block: %s", t.Topic))
	}

	return cal.SerializeTo(w)
}

// startOfWeek returns midnight of the Monday in now's week.
func startOfWeek(now time.Time) time.Time {
	offset := (int(now.Weekday()) + 6) % 7
	day := now.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

func weekdayIndex(day string) int {
	for i, d := range weekdays {
		if strings.EqualFold(d, day) {
			return i
		}
	}
	return -1
}

// parseTimeRange reads "9:00-10:30" into start and end minutes from
// midnight.
func parseTimeRange(s string) (int, int, bool) {
	m := timeRangePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	start, ok1 := parseClock(m[1])
	end, ok2 := parseClock(m[2])
	if !ok1 || !ok2 || end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
