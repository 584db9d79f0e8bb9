package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const dayStartMinutes = 9 * 60 // plans start at 09:00
const breakMinutes = 10

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimetableEntry is the flat display shape used by daily and monthly plans.
type TimetableEntry struct {
	Period   string `json:"period"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// slot is one contiguous span of the day, either a topic or a break.
type slot struct {
	activity string
	start    int // minutes from midnight
	minutes  int
	isBreak  bool
}

func (s slot) timeRange() string {
	return formatClock(s.start) + "-" + formatClock(s.start+s.minutes)
}

func formatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", (mins/60)%24, mins%60)
}

var integerPattern = regexp.MustCompile(`\d+`)

// parseTopics splits the comma-separated topics field. An empty result falls
// back to the subject itself so the generator always has at least one topic.
func parseTopics(subject, topics string) []string {
	var out []string
	for _, t := range strings.Split(topics, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		subject = strings.TrimSpace(subject)
		if subject == "" {
			subject = "Study"
		}
		out = append(out, subject)
	}
	return out
}

// parseHours pulls the first integer out of the free-time field
// ("2 hours", "about 3", ...). Defaults to 1 when nothing numeric is found.
func parseHours(freeTime string) int {
	if m := integerPattern.FindString(freeTime); m != "" {
		if h, err := strconv.Atoi(m); err == nil {
			return h
		}
	}
	return 1
}

// buildSlots lays out the day: study spans separated by 10-minute breaks,
// starting at 09:00. Study minutes are split evenly, with the first
// (total mod n) topics absorbing one extra minute each so the spans always
// sum to the exact study budget.
func buildSlots(topics []string, hours int) []slot {
	n := len(topics)
	totalStudy := hours*60 - breakMinutes*(n-1)
	if totalStudy < n {
		// Budget too small for the breaks alone. Keep every topic visible
		// with at least one minute instead of emitting zero-width spans.
		totalStudy = n
	}
	base := totalStudy / n
	extra := totalStudy % n

	clock := dayStartMinutes
	var slots []slot
	for i, topic := range topics {
		mins := base
		if i < extra {
			mins++
		}
		slots = append(slots, slot{activity: topic, start: clock, minutes: mins})
		clock += mins
		if i < n-1 {
			slots = append(slots, slot{activity: "Break", start: clock, minutes: breakMinutes, isBreak: true})
			clock += breakMinutes
		}
	}
	return slots
}

// generatePlan is the deterministic timetable generator. It returns entries
// for daily/monthly shapes or a grid for the weekly shape, never both.
func generatePlan(subject, topics, freeTime, planType string) ([]TimetableEntry, *WeeklyGrid) {
	slots := buildSlots(parseTopics(subject, topics), parseHours(freeTime))

	switch planType {
	case "weekly":
		// The same intra-day schedule repeats across the week.
		grid := &WeeklyGrid{Days: append([]string(nil), weekdays...)}
		for _, s := range slots {
			row := GridRow{Time: s.timeRange(), Cells: make(map[string]string, len(weekdays))}
			for _, day := range weekdays {
				row.Cells[day] = s.activity
			}
			grid.Rows = append(grid.Rows, row)
		}
		return nil, grid

	case "monthly":
		// Study spans only, one per week, capped at four weeks.
		var entries []TimetableEntry
		for _, s := range slots {
			if s.isBreak || len(entries) == 4 {
				continue
			}
			entries = append(entries, TimetableEntry{
				Period:   fmt.Sprintf("Week %d", len(entries)+1),
				Time:     s.timeRange(),
				Activity: s.activity,
			})
		}
		// Fewer study slots than weeks: repeat the last one up to the cap.
		for len(entries) < 4 {
			last := entries[len(entries)-1]
			last.Period = fmt.Sprintf("Week %d", len(entries)+1)
			entries = append(entries, last)
		}
		return entries, nil

	default:
		// "daily", and the fallback shape for unrecognized plan types.
		var entries []TimetableEntry
		for i, s := range slots {
			entries = append(entries, TimetableEntry{
				Period:   fmt.Sprintf("Slot %d", i+1),
				Time:     s.timeRange(),
				Activity: s.activity,
			})
		}
		return entries, nil
	}
}
