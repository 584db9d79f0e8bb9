package main

// Triplet is a flattened (topic, day, time) record derived from either
// display shape. It feeds the calendar export.
type Triplet struct {
	Topic string `json:"topic"`
	Day   string `json:"day"`
	Time  string `json:"time"`
}

// convertToTriplets flattens a grid, entry list, or raw string. Grid cells
// that are empty are skipped; entries with no resolvable day keep an empty
// day rather than being assigned one.
func convertToTriplets(input any) []Triplet {
	if s, ok := input.(string); ok {
		entries, grid := entriesFromReply(s)
		if grid != nil {
			input = grid
		} else {
			input = entries
		}
	}

	if g := asGrid(input); g != nil {
		var out []Triplet
		for _, row := range g.Rows {
			for _, day := range g.Days {
				if cell := row.Cells[day]; cell != "" {
					out = append(out, Triplet{Topic: cell, Day: day, Time: row.Time})
				}
			}
		}
		return out
	}

	var out []Triplet
	for _, e := range resolveEntries(input) {
		if e.Activity == "" {
			continue
		}
		out = append(out, Triplet{Topic: e.Activity, Day: resolveDay(e.Period), Time: e.Time})
	}
	return out
}
