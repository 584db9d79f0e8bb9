package main

import "testing"

func TestParseHTMLTable(t *testing.T) {
	text := `Here is your plan:
<table>
  <tr><th>Period</th><th>Time</th><th>Activity</th></tr>
  <tr><td>Day 1</td><td>9:00-10:00</td><td>Algebra</td></tr>
  <tr><td>Day 2</td><td>10:00-11:00</td><td>Geometry</td></tr>
</table>`

	entries := parseHTMLTable(text)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}
	want := TimetableEntry{Period: "Day 1", Time: "9:00-10:00", Activity: "Algebra"}
	if entries[0] != want {
		t.Errorf("expected %+v, got %+v", want, entries[0])
	}
}

func TestParseHTMLTableTwoColumns(t *testing.T) {
	entries := parseHTMLTable("<table><tr><td>9:00-10:00</td><td>Algebra</td></tr></table>")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Time != "9:00-10:00" || entries[0].Activity != "Algebra" || entries[0].Period != "" {
		t.Errorf("expected the time column detected by pattern, got %+v", entries[0])
	}
}

func TestParseHTMLTableNoTable(t *testing.T) {
	if entries := parseHTMLTable("just plain prose, nothing tabular"); entries != nil {
		t.Errorf("expected nil without a table, got %+v", entries)
	}
	if entries := parseHTMLTable("<table></table>"); entries != nil {
		t.Errorf("expected nil for an empty table, got %+v", entries)
	}
}
