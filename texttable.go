package main

import (
	"regexp"
	"strings"
)

var timeRangePattern = regexp.MustCompile(`\b(\d{1,2}:\d{2})\s*[-–—]\s*(\d{1,2}:\d{2})`)
var dayLabelPattern = regexp.MustCompile(`(?i)\bday\s*(\d+)\b`)
var blankLinePattern = regexp.MustCompile(`\n[ \t]*\n`)

// parseTextToTable heuristically segments free text into (period, time,
// activity) rows. If the text contains time ranges, each range anchors one
// row; otherwise blank-line-delimited blocks become rows with no time.
// Returns nil when nothing non-empty could be produced.
func parseTextToTable(text string) []TimetableEntry {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")

	matches := timeRangePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return parseBlocks(text)
	}

	var entries []TimetableEntry
	for i, m := range matches {
		timeStr := text[m[2]:m[3]] + "-" + text[m[4]:m[5]]

		segEnd := len(text)
		if i+1 < len(matches) {
			segEnd = matches[i+1][0]
		}
		activity := cleanActivity(text[m[1]:segEnd])
		period := findPeriod(text, m[0])

		if activity == "" && period == "" {
			continue
		}
		entries = append(entries, TimetableEntry{Period: period, Time: timeStr, Activity: activity})
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}

// cleanActivity trims the text following a time range down to the activity
// itself: cut at the next blank line, drop bare "Day N" header lines, join
// the rest with spaces.
func cleanActivity(seg string) string {
	if loc := blankLinePattern.FindStringIndex(seg); loc != nil {
		seg = seg[:loc[0]]
	}
	var parts []string
	for _, line := range strings.Split(seg, "\n") {
		line = strings.Trim(line, " :-–—")
		if line == "" {
			continue
		}
		if strings.TrimSpace(dayLabelPattern.ReplaceAllString(line, "")) == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " ")
}

// findPeriod labels the row anchored at matchStart. It scans back to the
// nearest preceding blank line and looks for a "Day N" phrase in that block,
// falling back to the block's first non-empty line.
func findPeriod(text string, matchStart int) string {
	blockStart := 0
	for _, loc := range blankLinePattern.FindAllStringIndex(text[:matchStart], -1) {
		blockStart = loc[1]
	}
	block := text[blockStart:matchStart]

	if m := dayLabelPattern.FindString(block); m != "" {
		return m
	}
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

// parseBlocks is the no-time-ranges fallback: blank-line-delimited blocks,
// first line as the period, remaining lines joined as the activity.
func parseBlocks(text string) []TimetableEntry {
	var entries []TimetableEntry
	for _, block := range blankLinePattern.Split(text, -1) {
		var lines []string
		for _, line := range strings.Split(block, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) == 0 {
			continue
		}
		entries = append(entries, TimetableEntry{
			Period:   lines[0],
			Activity: strings.Join(lines[1:], " "),
		})
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}
