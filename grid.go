package main

import (
	"strconv"
	"strings"
)

// WeeklyGrid is the weekly display shape: fixed day columns and
// time-labelled rows. Every row has a cell for every day, possibly empty.
type WeeklyGrid struct {
	Days []string  `json:"days"`
	Rows []GridRow `json:"rows"`
}

type GridRow struct {
	Time  string            `json:"time"`
	Cells map[string]string `json:"cells"`
}

// defaultBellTimes is the fallback schedule when no usable times can be
// recovered: 50-minute periods on the hour from 08:00.
var defaultBellTimes = []string{
	"08:00-08:50", "09:00-09:50", "10:00-10:50", "11:00-11:50",
	"12:00-12:50", "13:00-13:50", "14:00-14:50", "15:00-15:50",
	"16:00-16:50", "17:00-17:50", "18:00-18:50", "19:00-19:50",
}

// entriesFromReply is the fallback chain for raw model output: JSON first,
// then an embedded HTML table, then the plain-text heuristics. It returns
// either a ready-made grid (when the model answered with one) or a flat
// entry list, or neither when the reply is unusable as structured data.
func entriesFromReply(reply string) ([]TimetableEntry, *WeeklyGrid) {
	if parsed, ok := tryParseJSON(reply); ok {
		if _, isStr := parsed.(string); !isStr {
			if g := asGrid(parsed); g != nil {
				return nil, g
			}
			if entries := resolveEntries(parsed); len(entries) > 0 {
				return entries, nil
			}
		}
	}
	if entries := parseHTMLTable(reply); len(entries) > 0 {
		return entries, nil
	}
	if entries := parseTextToTable(reply); len(entries) > 0 {
		return entries, nil
	}
	return nil, nil
}

// buildWeeklyGrid normalizes any of {grid, entry list, parsed JSON value,
// raw string} into a canonical five-day grid. It never returns nil: with no
// usable entries the result is the empty default bell schedule.
func buildWeeklyGrid(input any) *WeeklyGrid {
	if s, ok := input.(string); ok {
		entries, grid := entriesFromReply(s)
		if grid != nil {
			return grid
		}
		if len(entries) == 0 {
			return defaultGrid()
		}
		input = entries
	}

	if g := asGrid(input); g != nil {
		return g
	}

	entries := resolveEntries(input)
	if len(entries) == 0 {
		return defaultGrid()
	}

	times := distinctTimes(entries)
	if len(times) < 5 {
		// Too few distinct times to be a believable schedule, use the
		// reduced default set instead.
		times = append([]string(nil), defaultBellTimes[:5]...)
	}

	grid := emptyGrid(times)
	placed := make(map[string]int, len(grid.Days))
	for _, e := range entries {
		day := resolveDay(e.Period)
		if day == "" {
			day = leastLoadedDay(grid.Days, placed)
		}
		row := resolveRow(grid.Rows, e.Time)
		if row == -1 {
			row = placed[day] % len(grid.Rows)
		}
		if e.Activity != "" {
			if cell := grid.Rows[row].Cells[day]; cell != "" {
				grid.Rows[row].Cells[day] = cell + "; " + e.Activity
			} else {
				grid.Rows[row].Cells[day] = e.Activity
			}
		}
		placed[day]++
	}
	return grid
}

func defaultGrid() *WeeklyGrid {
	return emptyGrid(defaultBellTimes)
}

func emptyGrid(times []string) *WeeklyGrid {
	grid := &WeeklyGrid{Days: append([]string(nil), weekdays...)}
	for _, t := range times {
		row := GridRow{Time: t, Cells: make(map[string]string, len(grid.Days))}
		for _, day := range grid.Days {
			row.Cells[day] = ""
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// asGrid recognizes inputs that already are a grid, including the
// days+rows map shape a JSON reply decodes into.
func asGrid(input any) *WeeklyGrid {
	switch v := input.(type) {
	case *WeeklyGrid:
		return v
	case WeeklyGrid:
		return &v
	case map[string]any:
		return gridFromMap(v)
	}
	return nil
}

func gridFromMap(m map[string]any) *WeeklyGrid {
	rawDays, okDays := m["days"].([]any)
	rawRows, okRows := m["rows"].([]any)
	if !okDays || !okRows {
		return nil
	}

	grid := &WeeklyGrid{}
	for _, d := range rawDays {
		if s, ok := d.(string); ok && s != "" {
			grid.Days = append(grid.Days, s)
		}
	}
	if len(grid.Days) == 0 {
		grid.Days = append(grid.Days, weekdays...)
	}

	for _, r := range rawRows {
		rm, ok := r.(map[string]any)
		if !ok {
			continue
		}
		row := GridRow{Cells: make(map[string]string, len(grid.Days))}
		if t, ok := rm["time"].(string); ok {
			row.Time = t
		}
		for _, day := range grid.Days {
			if s, ok := rm[day].(string); ok {
				row.Cells[day] = s
			} else {
				row.Cells[day] = ""
			}
		}
		grid.Rows = append(grid.Rows, row)
	}
	if len(grid.Rows) == 0 {
		return nil
	}
	return grid
}

// resolveEntries coerces list or wrapper shapes into a flat entry list.
func resolveEntries(input any) []TimetableEntry {
	switch v := input.(type) {
	case []TimetableEntry:
		return v
	case TimetableEntry:
		return []TimetableEntry{v}
	case []any:
		return coerceEntries(v)
	case map[string]any:
		if list, ok := v["timetable"].([]any); ok {
			return coerceEntries(list)
		}
	case string:
		entries, _ := entriesFromReply(v)
		return entries
	}
	return nil
}

// coerceEntries reads decoded JSON list items into entries, tolerating the
// key spellings models tend to use.
func coerceEntries(list []any) []TimetableEntry {
	var entries []TimetableEntry
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			e := TimetableEntry{
				Period:   firstString(v, "period", "day", "week", "slot"),
				Time:     firstString(v, "time", "time_slot", "hours"),
				Activity: firstString(v, "activity", "task", "topic", "subject"),
			}
			if e.Period != "" || e.Time != "" || e.Activity != "" {
				entries = append(entries, e)
			}
		case string:
			if s := strings.TrimSpace(v); s != "" {
				entries = append(entries, TimetableEntry{Activity: s})
			}
		}
	}
	return entries
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func distinctTimes(entries []TimetableEntry) []string {
	seen := make(map[string]bool)
	var times []string
	for _, e := range entries {
		if e.Time != "" && !seen[e.Time] {
			seen[e.Time] = true
			times = append(times, e.Time)
		}
	}
	return times
}

// resolveDay maps a period label to a weekday: a "Day N" phrase is
// 1-indexed into the week (wrapping past Friday), otherwise the first
// weekday name contained in the label wins. Empty when neither applies.
func resolveDay(period string) string {
	if m := dayLabelPattern.FindStringSubmatch(period); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return weekdays[(n-1)%len(weekdays)]
		}
	}
	lower := strings.ToLower(period)
	for _, day := range weekdays {
		if strings.Contains(lower, strings.ToLower(day)) {
			return day
		}
	}
	return ""
}

// leastLoadedDay assigns round-robin: the day with the fewest entries
// placed so far, ties broken by day order.
func leastLoadedDay(days []string, placed map[string]int) string {
	best := days[0]
	for _, day := range days[1:] {
		if placed[day] < placed[best] {
			best = day
		}
	}
	return best
}

// resolveRow matches an entry time to a row by substring containment in
// either direction, so "09:00" lands in the "09:00-09:50" row.
func resolveRow(rows []GridRow, timeStr string) int {
	if timeStr == "" {
		return -1
	}
	for i, row := range rows {
		if row.Time == "" {
			continue
		}
		if strings.Contains(row.Time, timeStr) || strings.Contains(timeStr, row.Time) {
			return i
		}
	}
	return -1
}
