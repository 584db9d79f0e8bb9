package main

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseHTMLTable handles replies where the model answers with an HTML
// <table> instead of JSON or prose. Returns nil when there is no table or
// no usable rows.
func parseHTMLTable(text string) []TimetableEntry {
	if !strings.Contains(strings.ToLower(text), "<table") {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil
	}

	var entries []TimetableEntry
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return // header row
		}
		var cells []string
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if e := entryFromCells(cells); e != nil {
			entries = append(entries, *e)
		}
	})
	if len(entries) == 0 {
		return nil
	}
	return entries
}

// entryFromCells maps one table row to an entry. Three or more cells map
// positionally; with two, the time goes wherever the range pattern matches.
func entryFromCells(cells []string) *TimetableEntry {
	switch {
	case len(cells) >= 3:
		return &TimetableEntry{Period: cells[0], Time: cells[1], Activity: strings.Join(cells[2:], "; ")}
	case len(cells) == 2:
		if timeRangePattern.MatchString(cells[0]) {
			return &TimetableEntry{Time: cells[0], Activity: cells[1]}
		}
		return &TimetableEntry{Period: cells[0], Activity: cells[1]}
	case len(cells) == 1 && cells[0] != "":
		return &TimetableEntry{Activity: cells[0]}
	}
	return nil
}
