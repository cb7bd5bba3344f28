package nav

import "errors"

var (
	// ErrNotFound is returned by ChildAt for an index out of range and by
	// ChildNamed and LeafNamed when no key has the name.
	ErrNotFound = errors.New("not found")

	// ErrNotContainer is returned by ChildAt on a string or primitive.
	ErrNotContainer = errors.New("not an object or array")

	// ErrNotObject is returned by ChildNamed and LeafNamed on anything but
	// an object.
	ErrNotObject = errors.New("not an object")

	// ErrNotLeaf is returned by LeafNamed when the key's value has children.
	ErrNotLeaf = errors.New("value has children")

	// ErrMalformed means the token sequence does not have the structure its
	// sizes claim.
	ErrMalformed = errors.New("malformed token sequence")

	// ErrBadPath is returned by ParsePath and Lookup for a path that does
	// not follow the path syntax.
	ErrBadPath = errors.New("invalid path")
)
