package domain

import "strings"

// RoadmapResult is the outcome of one generation call. Exactly one of the
// three kinds is produced; callers never see a raised error.
type RoadmapResult struct {
	Kind RoadmapKind
	Text string
}

type RoadmapKind int

const (
	RoadmapSuccess RoadmapKind = iota
	RoadmapEmpty
	RoadmapServiceError
)

// RoadmapLine is one classified line of the generated text.
type RoadmapLine struct {
	Kind LineKind `json:"kind"`
	Text string   `json:"text"`
}

type LineKind string

const (
	LineHeading   LineKind = "heading"
	LineListItem  LineKind = "list_item"
	LineParagraph LineKind = "paragraph"
)

// ParseRoadmap splits the generated text on newlines and classifies each
// line by its prefix: '#' runs mark headings, '-' or '*' mark list items,
// anything else is a paragraph. Blank lines are skipped. Other markdown
// constructs pass through as literal paragraph text.
func ParseRoadmap(text string) []RoadmapLine {
	var lines []RoadmapLine
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		kind := LineParagraph
		switch {
		case strings.HasPrefix(line, "#"):
			kind = LineHeading
			line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*"):
			kind = LineListItem
			line = strings.TrimSpace(line[1:])
		}

		// A bare marker strips down to nothing: emit no blank headings
		// or empty list items.
		if line == "" {
			continue
		}
		lines = append(lines, RoadmapLine{Kind: kind, Text: line})
	}
	return lines
}
