// Package nav answers structural queries about a tokenized JSON document
// without building a tree.
//
// A Doc pairs a flat pre-order token sequence with the text it was produced
// from.  Tokens carry no links to their parent, children or siblings: the
// children of a token are the Size complete subtrees that immediately follow
// it.  Every operation below reconstructs adjacency from Size alone, using
// index arithmetic on the token slice.  Nothing is allocated, cached or
// modified.
//
// Positions are indexes into Doc.Tokens.  Lookups that fail return the index
// they were given, unchanged, together with a non-nil error, so callers can
// either compare positions or check the error.
//
// Passing an index outside [0, Len()) panics like any out of range slice
// access.  A sequence that claims more children than it holds is reported as
// ErrMalformed rather than read out of bounds.
package nav

import (
	"iter"

	"github.com/arnodel/jsmnav/token"
)

// A Doc is a token sequence together with the text it describes.  Both are
// owned by the caller and must not be modified while the Doc is in use.  A
// Doc is safe for concurrent use.
type Doc struct {
	Tokens []token.Token
	Text   []byte
}

// New returns a Doc reading toks and text.
func New(toks []token.Token, text []byte) Doc {
	return Doc{Tokens: toks, Text: text}
}

// Len returns the number of tokens in the document.
func (d Doc) Len() int {
	return len(d.Tokens)
}

// Kind returns the kind of the token at i.
func (d Doc) Kind(i int) token.Kind {
	return d.Tokens[i].Kind
}

// Skip returns the position just after the subtree rooted at i, i.e. the
// position of i's next sibling, or Len() if there is none.
//
// It counts the subtrees still to be walked instead of recursing: each token
// visited completes one of them and opens one per child.  Memory use is
// constant whatever the nesting depth.
func (d Doc) Skip(i int) int {
	pending := 1
	for pending > 0 && i < len(d.Tokens) {
		pending += d.Tokens[i].Size - 1
		i++
	}
	return i
}

// Size returns the number of tokens in the subtree rooted at i, i included.
func (d Doc) Size(i int) int {
	return d.Skip(i) - i
}

// IsName reports whether the token at i is an object key, i.e. a string with
// exactly one child (its value).
func (d Doc) IsName(i int) bool {
	tok := d.Tokens[i]
	return tok.Kind == token.String && tok.Size == 1
}

// IsLeaf reports whether the token at i has no children.  This is also true
// of empty objects and arrays; use IsScalar to exclude them.
func (d Doc) IsLeaf(i int) bool {
	return d.Tokens[i].Size == 0
}

// IsScalar reports whether the token at i is a childless string or
// primitive.
func (d Doc) IsScalar(i int) bool {
	tok := d.Tokens[i]
	return tok.Size == 0 && (tok.Kind == token.String || tok.Kind == token.Primitive)
}

// TextEquals reports whether the text spanned by the token at i is exactly
// needle, byte for byte.  No unescaping is done.
func (d Doc) TextEquals(i int, needle string) bool {
	return string(d.Tokens[i].Bytes(d.Text)) == needle
}

// Span returns the text spanned by the token at i.  The slice shares storage
// with d.Text.
func (d Doc) Span(i int) []byte {
	return d.Tokens[i].Bytes(d.Text)
}

// String returns the text spanned by the token at i.
func (d Doc) String(i int) string {
	return string(d.Span(i))
}

// ValueOf returns the position of the value of i if i is a name, and i
// otherwise.
func (d Doc) ValueOf(i int) int {
	if d.IsName(i) {
		return i + 1
	}
	return i
}

// container returns the position of the value of i, checking it exists.
func (d Doc) container(i int) (int, error) {
	v := d.ValueOf(i)
	if v >= len(d.Tokens) {
		return v, ErrMalformed
	}
	return v, nil
}

// ChildAt returns the position of the n-th child of i (or of i's value if i
// is a name).  The children of an object are its keys.
//
// If i is not an object or array, or has no n-th child, ChildAt returns i
// and an error.
func (d Doc) ChildAt(i, n int) (int, error) {
	v, err := d.container(i)
	if err != nil {
		return i, err
	}
	tok := d.Tokens[v]
	if !tok.IsContainer() {
		return i, ErrNotContainer
	}
	if n < 0 || n >= tok.Size {
		return i, ErrNotFound
	}
	j := v + 1
	for ; n > 0; n-- {
		j = d.Skip(j)
	}
	if j >= len(d.Tokens) {
		return i, ErrMalformed
	}
	return j, nil
}

// ChildNamed returns the position of the first key of i (or of i's value if
// i is a name) whose text is name.  The key is returned, not its value: use
// ValueOf to get it.
//
// If i is not an object or has no such key, ChildNamed returns i and an
// error.  Finding something other than a key where a key should be is
// reported as ErrMalformed.
func (d Doc) ChildNamed(i int, name string) (int, error) {
	v, err := d.container(i)
	if err != nil {
		return i, err
	}
	tok := d.Tokens[v]
	if tok.Kind != token.Object {
		return i, ErrNotObject
	}
	j := v + 1
	for range tok.Size {
		if j >= len(d.Tokens) || !d.IsName(j) {
			return i, ErrMalformed
		}
		if d.TextEquals(j, name) {
			return j, nil
		}
		j = d.Skip(j)
	}
	return i, ErrNotFound
}

// LeafNamed is like ChildNamed but returns the position of the key's value,
// and only if that value has no children.  Otherwise it returns i and an
// error (ErrNotLeaf if the key exists but its value has children).
func (d Doc) LeafNamed(i int, name string) (int, error) {
	j, err := d.ChildNamed(i, name)
	if err != nil {
		return i, err
	}
	v, err := d.container(j)
	if err != nil {
		return i, err
	}
	if !d.IsLeaf(v) {
		return i, ErrNotLeaf
	}
	return v, nil
}

// Children yields the position of each child of i (or of i's value if i is
// a name), in document order.  It yields nothing if i is not an object or
// array.
func (d Doc) Children(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		v, err := d.container(i)
		if err != nil {
			return
		}
		tok := d.Tokens[v]
		if !tok.IsContainer() {
			return
		}
		j := v + 1
		for range tok.Size {
			if j >= len(d.Tokens) || !yield(j) {
				return
			}
			j = d.Skip(j)
		}
	}
}

// Roots yields the position of each top level value.  Lenient input may
// hold several of them, e.g. "1 2 3".
func (d Doc) Roots() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < len(d.Tokens); i = d.Skip(i) {
			if !yield(i) {
				return
			}
		}
	}
}
