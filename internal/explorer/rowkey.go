package explorer

import (
	"strconv"

	"github.com/oakwood-commons/jx/internal/formatter"
)

// KeyKind discriminates the three row-key variants. Leaf rows carry no key
// at all; the row IS the value. Keeping the variant tagged (rather than a
// sentinel value mixed into the key space) makes "is this a real key" a
// switch, not an equality test.
type KeyKind int

const (
	// KindLeaf marks the synthetic row of a scalar node.
	KindLeaf KeyKind = iota
	// KindString is an object member key.
	KindString
	// KindIndex is an array element index.
	KindIndex
)

// RowKey identifies a row within its parent node.
type RowKey struct {
	Kind  KeyKind
	Name  string // valid when Kind == KindString
	Index int    // valid when Kind == KindIndex
}

// LeafKey returns the key for a scalar node's single synthetic row.
func LeafKey() RowKey { return RowKey{Kind: KindLeaf} }

// StringKey returns an object-member key.
func StringKey(name string) RowKey { return RowKey{Kind: KindString, Name: name} }

// IndexKey returns an array-element key.
func IndexKey(i int) RowKey { return RowKey{Kind: KindIndex, Index: i} }

// IsLeaf reports whether the key marks a scalar node's synthetic row.
func (k RowKey) IsLeaf() bool { return k.Kind == KindLeaf }

// Display returns the formatted key text. Selectors render through the same
// formatter as values, so string keys appear quoted while indexes stay bare.
// Leaf keys have no display text.
func (k RowKey) Display() string {
	switch k.Kind {
	case KindString:
		return formatter.Stringify(k.Name)
	case KindIndex:
		return strconv.Itoa(k.Index)
	default:
		return ""
	}
}
