package uifx

import (
	"fmt"
	"strings"
)

// Direction selects the axis and sense along which the outline gradient is
// sampled.
type Direction int

const (
	// TopToBottom samples along -Y.
	TopToBottom Direction = iota
	// BottomToTop samples along +Y.
	BottomToTop
	// LeftToRight samples along -X.
	LeftToRight
	// RightToLeft samples along +X.
	RightToLeft
)

var directionNames = [...]string{
	TopToBottom: "top-to-bottom",
	BottomToTop: "bottom-to-top",
	LeftToRight: "left-to-right",
	RightToLeft: "right-to-left",
}

// String returns the configuration name of the direction.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses a direction name. Matching ignores case and treats
// '-', '_' and spaces as optional separators, so "top-to-bottom",
// "TopToBottom" and "top_to_bottom" are all accepted.
func ParseDirection(s string) (Direction, error) {
	key := normalizeName(s)
	for d, name := range directionNames {
		if normalizeName(name) == key {
			return Direction(d), nil
		}
	}
	return TopToBottom, fmt.Errorf("uifx: unknown direction %q", s)
}

// Layout selects how the four outline copies are arranged in the output
// vertex stream.
type Layout int

const (
	// LayoutChained keeps the original block first and appends four
	// chained offset copies after it.
	LayoutChained Layout = iota
	// LayoutUnderlay emits four copies offset directly from the original,
	// followed by the original block, so the graphic draws on top of its
	// outline.
	LayoutUnderlay
)

// String returns the configuration name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutChained:
		return "chained"
	case LayoutUnderlay:
		return "underlay"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout parses a layout name as produced by String.
func ParseLayout(s string) (Layout, error) {
	switch normalizeName(s) {
	case "", "chained":
		return LayoutChained, nil
	case "underlay":
		return LayoutUnderlay, nil
	}
	return LayoutChained, fmt.Errorf("uifx: unknown layout %q", s)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		if 'A' <= r && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}, strings.TrimSpace(s))
}
