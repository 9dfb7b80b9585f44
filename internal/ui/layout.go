package ui

import (
	"strings"

	"github.com/oakwood-commons/jx/internal/explorer"
	"github.com/oakwood-commons/jx/internal/formatter"
)

// markerCol is where the cursor marker is drawn; the key column sits past it
// so marker and key text never collide.
const (
	markerCol   = 0
	keyCol      = 2
	chromeLines = 2 // breadcrumb above the rows, footer below
)

// emptyPlaceholder is shown in place of the row list for empty containers.
const emptyPlaceholder = "Entry is empty"

// Layout carries the computed column offsets for one frame.
type Layout struct {
	KeyCol   int
	ValueCol int
}

// ComputeLayout derives column offsets from the frame's rows. The value
// column clears the widest formatted key regardless of key length, at the
// cost of ragged alignment across levels — acceptable for a
// one-level-at-a-time view.
func ComputeLayout(rows []explorer.Row) Layout {
	maxKey := 0
	for _, row := range rows {
		if w := formatter.Width(row.KeyText); w > maxKey {
			maxKey = w
		}
	}
	return Layout{
		KeyCol:   keyCol,
		ValueCol: keyCol + 1 + maxKey,
	}
}

// Breadcrumb renders the path line: "root" joined with "/" to each
// selector's display text. Selectors pass through the value formatter, so
// string keys appear quoted while array indexes stay bare.
func Breadcrumb(path []explorer.PathEntry) string {
	var b strings.Builder
	b.WriteString("root")
	for _, entry := range path {
		b.WriteString("/")
		b.WriteString(entry.Selector.Display())
	}
	return b.String()
}

// clampScroll adjusts a scroll offset so the cursor stays inside a viewport
// of height rows. A non-positive height disables scrolling.
func clampScroll(scroll, cursor, rowCount, height int) int {
	if height <= 0 || rowCount <= height {
		return 0
	}
	if cursor < scroll {
		scroll = cursor
	}
	if cursor >= scroll+height {
		scroll = cursor - height + 1
	}
	if max := rowCount - height; scroll > max {
		scroll = max
	}
	if scroll < 0 {
		scroll = 0
	}
	return scroll
}
