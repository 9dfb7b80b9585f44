package explorer

import (
	"encoding/json"
	"strings"
	"testing"
)

func mustParse(t *testing.T, src string) interface{} {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("bad fixture %q: %v", src, err)
	}
	return v
}

func TestRowsObjectSortedByRankThenKey(t *testing.T) {
	s := NewSession(mustParse(t, `{"b":1,"a":[1,2],"c":{"x":1}}`))
	rows := s.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// Scalars first, then arrays, then nested objects.
	want := []string{"b", "a", "c"}
	for i, k := range want {
		if rows[i].Key.Name != k {
			t.Errorf("row %d: expected key %q, got %q", i, k, rows[i].Key.Name)
		}
	}
}

func TestRowsObjectOrderIndependentOfSource(t *testing.T) {
	a := NewSession(mustParse(t, `{"x":1,"y":2,"z":3}`))
	b := NewSession(mustParse(t, `{"z":3,"y":2,"x":1}`))
	ra, rb := a.Rows(), b.Rows()
	if len(ra) != len(rb) {
		t.Fatalf("row counts differ: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i].Key.Name != rb[i].Key.Name {
			t.Errorf("row %d: %q vs %q", i, ra[i].Key.Name, rb[i].Key.Name)
		}
	}
}

func TestRowsArrayKeepsIndexOrder(t *testing.T) {
	s := NewSession(mustParse(t, `["c","a","b"]`))
	rows := s.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if row.Key.Kind != KindIndex || row.Key.Index != i {
			t.Errorf("row %d: expected index key %d, got %+v", i, i, row.Key)
		}
	}
	if rows[0].ValueText != `"c"` {
		t.Errorf("expected first value to stay \"c\", got %s", rows[0].ValueText)
	}
}

func TestScalarNodeHasSingleLeafRow(t *testing.T) {
	s := NewSession(mustParse(t, `"hello"`))
	rows := s.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row for scalar root, got %d", len(rows))
	}
	if !rows[0].Key.IsLeaf() {
		t.Errorf("expected leaf key, got %+v", rows[0].Key)
	}
	if rows[0].ValueText != `"hello"` {
		t.Errorf("expected quoted scalar, got %s", rows[0].ValueText)
	}
	// Descending into a leaf is a silent no-op.
	s.MoveDown()
	if s.Depth() != 0 {
		t.Errorf("expected depth 0 after MoveDown on leaf, got %d", s.Depth())
	}
}

func TestDescendAscendRoundTrip(t *testing.T) {
	s := NewSession(mustParse(t, `{"scalar":1,"list":[1,2,3],"obj":{"k":1}}`))
	// Rows: scalar, list, obj. Park the cursor on "list".
	s.CursorNext()
	if s.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", s.Cursor())
	}

	s.MoveDown()
	if s.Depth() != 1 || s.Cursor() != 0 {
		t.Fatalf("after descend: depth=%d cursor=%d", s.Depth(), s.Cursor())
	}

	s.MoveUp()
	if s.Depth() != 0 {
		t.Fatalf("expected depth 0 after ascend, got %d", s.Depth())
	}
	if s.Cursor() != 1 {
		t.Errorf("expected cursor restored to 1, got %d", s.Cursor())
	}
}

func TestAscendPastRootIsNoOp(t *testing.T) {
	s := NewSession(mustParse(t, `{"a":1}`))
	s.MoveUp()
	if s.Depth() != 0 || s.Cursor() != 0 {
		t.Errorf("ascend at root changed state: depth=%d cursor=%d", s.Depth(), s.Cursor())
	}
}

func TestCursorWraparound(t *testing.T) {
	s := NewSession(mustParse(t, `{"a":1,"b":2,"c":3}`))
	n := s.RowCount()

	for i := 0; i < n; i++ {
		s.CursorNext()
	}
	if s.Cursor() != 0 {
		t.Errorf("expected cursor back at 0 after %d increments, got %d", n, s.Cursor())
	}

	s.CursorPrev()
	if s.Cursor() != n-1 {
		t.Errorf("expected wrap to last row %d, got %d", n-1, s.Cursor())
	}
	for i := 0; i < n-1; i++ {
		s.CursorPrev()
	}
	if s.Cursor() != 0 {
		t.Errorf("expected cursor back at 0 after full backward cycle, got %d", s.Cursor())
	}
}

func TestEmptyContainerDisablesCursor(t *testing.T) {
	s := NewSession(mustParse(t, `{"empty":{}}`))
	s.MoveDown()
	if s.RowCount() != 0 {
		t.Fatalf("expected 0 rows inside empty object, got %d", s.RowCount())
	}

	// Cursor navigation must neither move nor fail.
	s.CursorNext()
	s.CursorPrev()
	s.CursorLast()
	if s.Cursor() != 0 {
		t.Errorf("cursor moved on empty node: %d", s.Cursor())
	}

	// MoveDown with no rows is absorbed too.
	s.MoveDown()
	if s.Depth() != 1 {
		t.Errorf("descend on empty node changed depth: %d", s.Depth())
	}

	s.MoveUp()
	if s.Depth() != 0 || s.Cursor() != 0 {
		t.Errorf("ascend from empty node: depth=%d cursor=%d", s.Depth(), s.Cursor())
	}
}

func TestEmptyArrayBehavesLikeEmptyObject(t *testing.T) {
	s := NewSession(mustParse(t, `{"empty":[]}`))
	s.MoveDown()
	if s.RowCount() != 0 {
		t.Fatalf("expected 0 rows inside empty array, got %d", s.RowCount())
	}
	s.CursorNext()
	if s.Cursor() != 0 {
		t.Errorf("cursor moved on empty array: %d", s.Cursor())
	}
}

func TestEndToEndScenario(t *testing.T) {
	s := NewSession(mustParse(t, `{"user":{"name":"Ann","tags":["x","y"]}}`))

	rows := s.Rows()
	if len(rows) != 1 || rows[0].Key.Name != "user" || rows[0].ValueText != "Dictionary, 2 keys" {
		t.Fatalf("root rows wrong: %+v", rows)
	}

	s.MoveDown() // into user
	rows = s.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows in user, got %d", len(rows))
	}
	// Scalar before array.
	if rows[0].Key.Name != "name" || rows[0].ValueText != `"Ann"` {
		t.Errorf("row 0: %+v", rows[0])
	}
	if rows[1].Key.Name != "tags" || rows[1].ValueText != "List, 2 entries" {
		t.Errorf("row 1: %+v", rows[1])
	}

	s.CursorNext() // onto tags
	s.MoveDown()   // into tags
	rows = s.Rows()
	if len(rows) != 2 || rows[0].ValueText != `"x"` || rows[1].ValueText != `"y"` {
		t.Fatalf("tags rows wrong: %+v", rows)
	}

	s.MoveUp()
	if s.Cursor() != 1 {
		t.Errorf("expected cursor restored to tags (1), got %d", s.Cursor())
	}
	s.MoveUp()
	if s.Depth() != 0 || s.Cursor() != 0 {
		t.Errorf("expected root with cursor 0, got depth=%d cursor=%d", s.Depth(), s.Cursor())
	}
}

func TestOperationsNeverPanicOnReachableStates(t *testing.T) {
	doc := mustParse(t, `{"a":{"b":[{"c":1},{}]},"d":[],"e":"leaf","f":null}`)
	ops := []func(s *Session){
		(*Session).MoveDown,
		(*Session).MoveUp,
		(*Session).CursorNext,
		(*Session).CursorPrev,
	}

	// Exhaustively walk short operation sequences; none may panic and the
	// cursor must stay in bounds throughout.
	var walk func(s *Session, depth int)
	walk = func(s *Session, depth int) {
		if depth == 0 {
			return
		}
		for _, op := range ops {
			clone := NewSession(doc)
			replaySessionState(clone, s)
			op(clone)
			if n := clone.RowCount(); n > 0 && (clone.Cursor() < 0 || clone.Cursor() >= n) {
				t.Fatalf("cursor %d out of bounds for %d rows", clone.Cursor(), n)
			}
			walk(clone, depth-1)
		}
	}
	walk(NewSession(doc), 4)
}

// replaySessionState copies navigation state between sessions over the same
// document.
func replaySessionState(dst, src *Session) {
	dst.path = append(dst.path[:0], src.path...)
	dst.cursor = src.cursor
}
