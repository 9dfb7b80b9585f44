// Package formatter renders generic tree values into the compact display
// strings used by the explorer table and breadcrumb.
package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Stringify returns the single-line display string for an arbitrary node.
//
// Containers are summarized rather than expanded: the row list is the place
// to inspect their children. Strings are wrapped in double quotes verbatim
// (no escaping beyond the quotes) so they are distinguishable from container
// summaries and numbers.
func Stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return `"` + flattenNewlines(t) + `"`
	case map[string]interface{}:
		if len(t) == 1 {
			return "Dictionary, 1 key"
		}
		return fmt.Sprintf("Dictionary, %d keys", len(t))
	case []interface{}:
		if len(t) == 1 {
			return "List, 1 entry"
		}
		return fmt.Sprintf("List, %d entries", len(t))
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

// flattenNewlines keeps scalar strings on a single table row by rendering
// line breaks as literal "\n".
func flattenNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}

// Width returns the terminal display width of s, accounting for wide runes.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth display columns, appending an
// ellipsis when content is cut. maxWidth <= 0 leaves s untouched.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// TypeLabel maps a node to a short type name for the status footer.
func TypeLabel(node interface{}) string {
	switch node.(type) {
	case map[string]interface{}:
		return "dict"
	case []interface{}:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, int, int64, uint64, float64:
		return "number"
	case nil:
		return "null"
	default:
		return "value"
	}
}
