// Package explorer implements the navigation state machine over a parsed
// document: the current path into the tree, the cursor within the current
// level, and the deterministic row list derived from the node at the path.
//
// The document is owned read-only for the lifetime of a Session; none of the
// navigation operations mutate it, and none of them can fail under any state
// reachable through the public API.
package explorer

import (
	"fmt"
	"sort"

	"github.com/oakwood-commons/jx/internal/formatter"
)

// Row is one displayable (key, value) pair of the current node. Scalar nodes
// produce exactly one Row whose Key is the leaf variant and whose value is
// the scalar itself.
type Row struct {
	Key       RowKey
	KeyText   string // formatted key, "" for leaf rows
	Value     interface{}
	ValueText string
}

// PathEntry records one descend step: the selector chosen, plus the cursor
// position held at the parent level so ascending can restore it exactly.
type PathEntry struct {
	Selector    RowKey // KindString or KindIndex, never KindLeaf
	SavedCursor int
}

// Session is the navigation state over one immutable document. It is not
// safe for concurrent use; the render loop is the single owner.
type Session struct {
	root   interface{}
	path   []PathEntry
	cursor int
}

// NewSession starts a session at the document root with the cursor on the
// first row.
func NewSession(root interface{}) *Session {
	return &Session{root: root}
}

// Node returns the value at the current path.
//
// The path is validated on every descend, so resolution cannot fail unless
// the document was mutated externally — which the Session contract forbids.
// A resolution failure is therefore an internal-consistency violation and
// panics rather than surfacing as a recoverable error.
func (s *Session) Node() interface{} {
	cur := s.root
	for _, entry := range s.path {
		switch entry.Selector.Kind {
		case KindString:
			m, ok := cur.(map[string]interface{})
			if !ok {
				panic(fmt.Sprintf("explorer: path entry %q selects into non-object %T", entry.Selector.Name, cur))
			}
			v, ok := m[entry.Selector.Name]
			if !ok {
				panic(fmt.Sprintf("explorer: path entry %q no longer present", entry.Selector.Name))
			}
			cur = v
		case KindIndex:
			a, ok := cur.([]interface{})
			if !ok {
				panic(fmt.Sprintf("explorer: path entry [%d] selects into non-array %T", entry.Selector.Index, cur))
			}
			if entry.Selector.Index < 0 || entry.Selector.Index >= len(a) {
				panic(fmt.Sprintf("explorer: path entry [%d] out of range (len %d)", entry.Selector.Index, len(a)))
			}
			cur = a[entry.Selector.Index]
		default:
			panic("explorer: leaf selector on navigation path")
		}
	}
	return cur
}

// Rows computes the display rows for the current node.
//
// Object members are sorted by shape rank first (scalars, then arrays, then
// nested objects) and by formatted key text second, so row order is
// deterministic and independent of source key order — a requirement for
// stable re-entry after ascending. Array elements keep index order, which is
// semantically meaningful. Scalars yield a single leaf row. Empty containers
// yield no rows.
func (s *Session) Rows() []Row {
	return nodeRows(s.Node())
}

func nodeRows(node interface{}) []Row {
	switch t := node.(type) {
	case map[string]interface{}:
		rows := make([]Row, 0, len(t))
		for k, v := range t {
			rows = append(rows, Row{
				Key:       StringKey(k),
				KeyText:   StringKey(k).Display(),
				Value:     v,
				ValueText: formatter.Stringify(v),
			})
		}
		sort.SliceStable(rows, func(i, j int) bool {
			ri, rj := shapeRank(rows[i].Value), shapeRank(rows[j].Value)
			if ri != rj {
				return ri < rj
			}
			return rows[i].KeyText < rows[j].KeyText
		})
		return rows
	case []interface{}:
		rows := make([]Row, 0, len(t))
		for i, v := range t {
			rows = append(rows, Row{
				Key:       IndexKey(i),
				KeyText:   IndexKey(i).Display(),
				Value:     v,
				ValueText: formatter.Stringify(v),
			})
		}
		return rows
	default:
		return []Row{{
			Key:       LeafKey(),
			Value:     node,
			ValueText: formatter.Stringify(node),
		}}
	}
}

// shapeRank orders values for object-row sorting: simple fields first,
// arrays next, nested objects last.
func shapeRank(v interface{}) int {
	switch v.(type) {
	case []interface{}:
		return 1
	case map[string]interface{}:
		return 2
	default:
		return 0
	}
}

// RowCount returns the number of rows at the current node.
func (s *Session) RowCount() int {
	switch t := s.Node().(type) {
	case map[string]interface{}:
		return len(t)
	case []interface{}:
		return len(t)
	default:
		return 1
	}
}

// Cursor returns the index of the highlighted row. It is always in
// [0, RowCount) while rows exist, and pinned to 0 for empty containers.
func (s *Session) Cursor() int {
	return s.cursor
}

// Path returns the descend steps from the root to the current node. The
// returned slice is shared; callers must not modify it.
func (s *Session) Path() []PathEntry {
	return s.path
}

// Depth returns how many levels below the root the session currently sits.
func (s *Session) Depth() int {
	return len(s.path)
}

// MoveDown descends into the row under the cursor. Leaf rows and scalar
// values absorb the request silently; only objects and arrays can be
// entered. The cursor position at this level is remembered on the path so
// MoveUp restores it.
func (s *Session) MoveDown() {
	rows := s.Rows()
	if len(rows) == 0 {
		return
	}
	row := rows[s.cursor]
	if row.Key.IsLeaf() {
		return
	}
	switch row.Value.(type) {
	case map[string]interface{}, []interface{}:
		s.path = append(s.path, PathEntry{Selector: row.Key, SavedCursor: s.cursor})
		s.cursor = 0
	}
}

// MoveUp ascends one level, restoring the cursor position held before the
// matching MoveDown. At the root it is a no-op.
func (s *Session) MoveUp() {
	if len(s.path) == 0 {
		return
	}
	last := s.path[len(s.path)-1]
	s.path = s.path[:len(s.path)-1]
	s.cursor = last.SavedCursor
}

// CursorNext advances the cursor one row, wrapping from the last row to the
// first. With no rows the cursor stays pinned at 0.
func (s *Session) CursorNext() {
	n := s.RowCount()
	if n == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % n
}

// CursorPrev moves the cursor one row back, wrapping from the first row to
// the last. With no rows the cursor stays pinned at 0.
func (s *Session) CursorPrev() {
	n := s.RowCount()
	if n == 0 {
		return
	}
	s.cursor = (s.cursor - 1 + n) % n
}

// CursorFirst jumps to the first row.
func (s *Session) CursorFirst() {
	s.cursor = 0
}

// CursorLast jumps to the last row.
func (s *Session) CursorLast() {
	if n := s.RowCount(); n > 0 {
		s.cursor = n - 1
	}
}
