package main

import "testing"

func TestBuildWeeklyGridUnparseableString(t *testing.T) {
	grid := buildWeeklyGrid("")
	if grid == nil {
		t.Fatal("grid must never be nil")
	}
	if len(grid.Days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(grid.Days))
	}
	if len(grid.Rows) != len(defaultBellTimes) {
		t.Fatalf("expected the %d-slot default schedule, got %d rows", len(defaultBellTimes), len(grid.Rows))
	}
	for _, row := range grid.Rows {
		if len(row.Cells) != 5 {
			t.Fatalf("row %q: expected a cell per day, got %d", row.Time, len(row.Cells))
		}
		for day, cell := range row.Cells {
			if cell != "" {
				t.Errorf("row %q day %s: expected empty cell, got %q", row.Time, day, cell)
			}
		}
	}
}

func TestBuildWeeklyGridNeverNil(t *testing.T) {
	for _, input := range []any{nil, "", "just some words", []any{}, map[string]any{"foo": "bar"}} {
		if grid := buildWeeklyGrid(input); grid == nil || len(grid.Days) != 5 || len(grid.Rows) == 0 {
			t.Errorf("buildWeeklyGrid(%v): expected a populated default grid", input)
		}
	}
}

func TestBuildWeeklyGridPlacesDayLabelledEntries(t *testing.T) {
	entries := []TimetableEntry{
		{Period: "Day 1", Time: "09:00-10:00", Activity: "Algebra"},
		{Period: "Day 2", Time: "10:00-11:00", Activity: "Geometry"},
		{Period: "Day 3", Time: "11:00-12:00", Activity: "Calculus"},
		{Period: "Day 4", Time: "12:00-13:00", Activity: "Statistics"},
		{Period: "Day 5", Time: "13:00-14:00", Activity: "Review"},
	}

	grid := buildWeeklyGrid(entries)
	if len(grid.Rows) != 5 {
		t.Fatalf("expected 5 rows from 5 distinct times, got %d", len(grid.Rows))
	}

	placements := map[string]string{
		"Monday":    "Algebra",
		"Tuesday":   "Geometry",
		"Wednesday": "Calculus",
		"Thursday":  "Statistics",
		"Friday":    "Review",
	}
	for i, day := range grid.Days {
		if got := grid.Rows[i].Cells[day]; got != placements[day] {
			t.Errorf("row %d %s: expected %q, got %q", i, day, placements[day], got)
		}
	}
}

func TestBuildWeeklyGridWeekdayNameResolution(t *testing.T) {
	entries := []TimetableEntry{
		{Period: "Every Wednesday morning", Time: "09:00-10:00", Activity: "Physics"},
	}
	grid := buildWeeklyGrid(entries)

	found := false
	for _, row := range grid.Rows {
		if row.Cells["Wednesday"] == "Physics" {
			found = true
		}
		for _, day := range []string{"Monday", "Tuesday", "Thursday", "Friday"} {
			if row.Cells[day] != "" {
				t.Errorf("unexpected placement on %s: %q", day, row.Cells[day])
			}
		}
	}
	if !found {
		t.Error("expected the entry on Wednesday")
	}
}

func TestBuildWeeklyGridRoundRobinFallback(t *testing.T) {
	entries := []TimetableEntry{
		{Activity: "A"},
		{Activity: "B"},
		{Activity: "C"},
	}
	grid := buildWeeklyGrid(entries)

	// No day hints at all: entries spread across the least-loaded days in
	// day order.
	if grid.Rows[0].Cells["Monday"] != "A" {
		t.Errorf("expected A on Monday, got %q", grid.Rows[0].Cells["Monday"])
	}
	if grid.Rows[0].Cells["Tuesday"] != "B" {
		t.Errorf("expected B on Tuesday, got %q", grid.Rows[0].Cells["Tuesday"])
	}
	if grid.Rows[0].Cells["Wednesday"] != "C" {
		t.Errorf("expected C on Wednesday, got %q", grid.Rows[0].Cells["Wednesday"])
	}
}

func TestBuildWeeklyGridAppendsCollidingCells(t *testing.T) {
	entries := []TimetableEntry{
		{Period: "Day 1", Time: "09:00-10:00", Activity: "Algebra"},
		{Period: "Day 2", Time: "10:00-11:00", Activity: "Geometry"},
		{Period: "Day 3", Time: "11:00-12:00", Activity: "Calculus"},
		{Period: "Day 4", Time: "12:00-13:00", Activity: "Statistics"},
		{Period: "Day 5", Time: "13:00-14:00", Activity: "Review"},
		{Period: "Day 1", Time: "09:00-10:00", Activity: "Practice"},
	}
	grid := buildWeeklyGrid(entries)

	if got := grid.Rows[0].Cells["Monday"]; got != "Algebra; Practice" {
		t.Errorf("expected colliding activities joined with '; ', got %q", got)
	}
}

func TestBuildWeeklyGridFewDistinctTimesUsesDefaults(t *testing.T) {
	entries := []TimetableEntry{
		{Period: "Day 1", Time: "09:00-10:00", Activity: "Algebra"},
		{Period: "Day 2", Time: "10:00-11:00", Activity: "Geometry"},
	}
	grid := buildWeeklyGrid(entries)
	if len(grid.Rows) != 5 {
		t.Fatalf("expected the 5-slot default set for sparse times, got %d rows", len(grid.Rows))
	}
	for i, row := range grid.Rows {
		if row.Time != defaultBellTimes[i] {
			t.Errorf("row %d: expected default time %q, got %q", i, defaultBellTimes[i], row.Time)
		}
	}
}

func TestBuildWeeklyGridPassThrough(t *testing.T) {
	original := buildWeeklyGrid([]TimetableEntry{
		{Period: "Day 1", Time: "09:00-10:00", Activity: "Algebra"},
	})
	if got := buildWeeklyGrid(original); got != original {
		t.Error("an existing grid should pass through unchanged")
	}
}

func TestBuildWeeklyGridFromDecodedJSON(t *testing.T) {
	reply := `{"timetable": [
		{"period": "Day 1", "time": "9:00-10:00", "activity": "Algebra"},
		{"period": "Day 2", "time": "10:00-11:00", "activity": "Geometry"}
	]}`
	grid := buildWeeklyGrid(reply)

	var cells []string
	for _, row := range grid.Rows {
		for _, day := range grid.Days {
			if row.Cells[day] != "" {
				cells = append(cells, day+"="+row.Cells[day])
			}
		}
	}
	if len(cells) != 2 {
		t.Fatalf("expected 2 placed cells, got %v", cells)
	}
}

func TestGridFromMapShape(t *testing.T) {
	input := map[string]any{
		"days": []any{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		"rows": []any{
			map[string]any{"time": "09:00-10:00", "Monday": "Algebra", "Tuesday": "Geometry"},
		},
	}
	grid := buildWeeklyGrid(input)
	if len(grid.Rows) != 1 {
		t.Fatalf("expected the supplied row to pass through, got %d rows", len(grid.Rows))
	}
	row := grid.Rows[0]
	if row.Time != "09:00-10:00" || row.Cells["Monday"] != "Algebra" || row.Cells["Wednesday"] != "" {
		t.Errorf("unexpected row: %+v", row)
	}
}

func TestCoerceEntriesAlternateKeys(t *testing.T) {
	entries := coerceEntries([]any{
		map[string]any{"day": "Day 1", "time_slot": "9:00-10:00", "task": "Algebra"},
		map[string]any{"topic": "Geometry"},
		"Just a string item",
		map[string]any{},
	})
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Period != "Day 1" || entries[0].Time != "9:00-10:00" || entries[0].Activity != "Algebra" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[2].Activity != "Just a string item" {
		t.Errorf("unexpected string item coercion: %+v", entries[2])
	}
}
