package token

import "fmt"

// A Token is an entry in the flat pre-order description of a JSON document.
// For example, the JSON value
//
//	{"id": 123, "tags": ["important", "new"]}
//
// is described by the sequence of Token (Start and End omitted):
//
//	{            -> Object, Size 2
//	"id":        -> String, Size 1
//	123,         -> Primitive, Size 0
//	"tags":      -> String, Size 1
//	[            -> Array, Size 2
//	"important", -> String, Size 0
//	"new"        -> String, Size 0
//
// There are no end markers and no links between tokens: a token's children
// are the Size complete subtrees that follow it in the sequence.
type Token struct {

	// Kind of the token
	Kind Kind

	// Byte span [Start, End) in the original text.
	// - a string token excludes the surrounding quotes
	// - a primitive token covers the literal, e.g. 123.5 or true
	// - an object or array token runs from '{' or '[' to just after the
	//   matching '}' or ']'
	Start, End int

	// Number of immediate children.  A name token (an object key) has
	// exactly 1 child, its value.
	Size int
}

// Len returns the length in bytes of the token's span.
func (t Token) Len() int {
	return t.End - t.Start
}

// Bytes returns the part of js covered by the token.  The returned slice
// shares storage with js.
func (t Token) Bytes(js []byte) []byte {
	return js[t.Start:t.End]
}

// IsContainer is true for objects and arrays.
func (t Token) IsContainer() bool {
	return t.Kind == Object || t.Kind == Array
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d](%d)", t.Kind, t.Start, t.End, t.Size)
}

// Kind is the closed set of token kinds a tokenizer can emit.
type Kind uint8

const (
	Undefined Kind = iota // zero value, never emitted for a complete token
	Object                // {...}
	Array                 // [...]
	String                // "..." (span excludes the quotes)
	Primitive             // number, boolean, null (or any bare word in non-strict mode)
)

var kindNames = [...]string{
	Undefined: "Undefined",
	Object:    "Object",
	Array:     "Array",
	String:    "String",
	Primitive: "Primitive",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
