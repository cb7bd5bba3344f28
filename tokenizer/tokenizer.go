// Package tokenizer splits JSON text into a flat pre-order sequence of
// token.Token, the way the jsmn C library does.
//
// The tokenizer never decodes anything: strings keep their escapes and
// numbers are not converted.  It only records the kind, byte span and number
// of children of each value.
//
// By default the tokenizer is lenient: commas are optional, object keys may
// appear at top level or inside arrays, and any unexpected bare word is
// taken to be a primitive.  Use WithStrict to reject those inputs.
package tokenizer

import (
	"errors"

	"github.com/arnodel/jsmnav/internal/debug"
	"github.com/arnodel/jsmnav/internal/stack"
	"github.com/arnodel/jsmnav/token"
)

// A Parser holds the state of a tokenization so that it can be resumed after
// Parse returned ErrNoMem.  Create one with NewParser.
type Parser struct {
	// Current offset in the input
	pos int

	// Number of tokens written so far
	next int

	// Index of the token that will receive the next value as a child, or -1
	// at top level.
	super int

	// Indexes of the objects and arrays that have not been closed yet, the
	// innermost on top
	open *stack.Stack[int]

	strict   bool
	maxDepth int
}

// An Option configures a Parser.
type Option func(*Parser)

// WithStrict makes the parser reject input that is not JSON: primitives must
// be numbers, booleans or null, and only strings can be object keys.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// WithMaxDepth limits how deeply objects and arrays can be nested.  A value
// of 0 or less means no limit.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// NewParser returns a parser ready to tokenize a new input.
func NewParser(opts ...Option) *Parser {
	p := &Parser{super: -1, open: stack.NewWithCapacity[int](initialDepth)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset prepares the parser for a new input, keeping its options.
func (p *Parser) Reset() {
	p.pos = 0
	p.next = 0
	p.super = -1
	p.open.Reset()
}

// Offset returns how far into the input the parser has got.
func (p *Parser) Offset() int {
	return p.pos
}

// Parse tokenizes js into toks and returns the total number of tokens
// written.  A NUL byte in js is treated as the end of the input.
//
// If toks is too small, Parse returns ErrNoMem.  The caller can then pass a
// larger slice whose beginning holds the tokens already written and call
// Parse again with the same js: parsing resumes where it stopped.
//
// Other errors are returned as a *SyntaxError wrapping ErrInvalid,
// ErrPartial or ErrTooDeep; the parser cannot be resumed after those.
func (p *Parser) Parse(js []byte, toks []token.Token) (int, error) {
	for ; p.pos < len(js) && js[p.pos] != 0; p.pos++ {
		c := js[p.pos]
		switch c {
		case '{', '[':
			if p.maxDepth > 0 && p.open.Size() >= p.maxDepth {
				return p.next, syntaxError(ErrTooDeep, p.pos)
			}
			if p.strict && p.super != -1 && toks[p.super].Kind == token.Object {
				// An object or array can't be a key
				return p.next, syntaxError(ErrInvalid, p.pos)
			}
			i, err := p.alloc(toks)
			if err != nil {
				return p.next, err
			}
			if p.super != -1 {
				toks[p.super].Size++
			}
			kind := token.Object
			if c == '[' {
				kind = token.Array
			}
			toks[i] = token.Token{Kind: kind, Start: p.pos, End: -1}
			p.super = i
			p.open.Push(i)
		case '}', ']':
			kind := token.Object
			if c == ']' {
				kind = token.Array
			}
			i, ok := p.open.Peek()
			if !ok || toks[i].Kind != kind {
				return p.next, syntaxError(ErrInvalid, p.pos)
			}
			p.open.Pop()
			toks[i].End = p.pos + 1
			p.super = -1
			if outer, ok := p.open.Peek(); ok {
				p.super = outer
			}
		case '"':
			if err := p.parseString(js, toks); err != nil {
				return p.next, err
			}
			if p.super != -1 {
				toks[p.super].Size++
			}
		case ':':
			p.super = p.next - 1
		case ',':
			if p.super != -1 && !toks[p.super].IsContainer() {
				if outer, ok := p.open.Peek(); ok {
					p.super = outer
				}
			}
		default:
			if isSpace(c) {
				continue
			}
			if p.strict {
				if !isStrictPrimitiveStart(c) {
					return p.next, syntaxError(ErrInvalid, p.pos)
				}
				// Primitives must not be keys of an object
				if p.super != -1 {
					t := toks[p.super]
					if t.Kind == token.Object || t.Kind == token.String && t.Size != 0 {
						return p.next, syntaxError(ErrInvalid, p.pos)
					}
				}
			}
			if err := p.parsePrimitive(js, toks); err != nil {
				return p.next, err
			}
			if p.super != -1 {
				toks[p.super].Size++
			}
		}
	}
	if i, ok := p.open.Peek(); ok {
		// Unmatched opened object or array
		return p.next, syntaxError(ErrPartial, toks[i].Start)
	}
	return p.next, nil
}

// parseString reads a string token starting at the opening quote.  On
// success pos is left on the closing quote, on failure it is left on the
// opening quote.
func (p *Parser) parseString(js []byte, toks []token.Token) error {
	start := p.pos
	for p.pos++; p.pos < len(js) && js[p.pos] != 0; p.pos++ {
		c := js[p.pos]
		if c == '"' {
			i, err := p.alloc(toks)
			if err != nil {
				p.pos = start
				return err
			}
			toks[i] = token.Token{Kind: token.String, Start: start + 1, End: p.pos}
			return nil
		}
		if c == '\\' && p.pos+1 < len(js) {
			p.pos++
			switch js[p.pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
			case 'u':
				p.pos++
				for i := 0; i < 4 && p.pos < len(js) && js[p.pos] != 0; i++ {
					if !isHexDigit(js[p.pos]) {
						err := syntaxError(ErrInvalid, p.pos)
						p.pos = start
						return err
					}
					p.pos++
				}
				p.pos--
			default:
				err := syntaxError(ErrInvalid, p.pos)
				p.pos = start
				return err
			}
		}
	}
	p.pos = start
	return syntaxError(ErrPartial, start)
}

// parsePrimitive reads a primitive token.  On success pos is left on the
// last byte of the primitive, on failure it is left on the first.
func (p *Parser) parsePrimitive(js []byte, toks []token.Token) error {
	start := p.pos
	for ; p.pos < len(js) && js[p.pos] != 0; p.pos++ {
		c := js[p.pos]
		if p.endsPrimitive(c) {
			break
		}
		if isNonPrintable(c) {
			err := syntaxError(ErrInvalid, p.pos)
			p.pos = start
			return err
		}
	}
	if p.strict && (p.pos >= len(js) || js[p.pos] == 0) {
		// In strict mode a primitive must be followed by a delimiter
		p.pos = start
		return syntaxError(ErrPartial, start)
	}
	i, err := p.alloc(toks)
	if err != nil {
		p.pos = start
		return err
	}
	toks[i] = token.Token{Kind: token.Primitive, Start: start, End: p.pos}
	p.pos--
	return nil
}

func (p *Parser) endsPrimitive(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',', ']', '}':
		return true
	case ':':
		return !p.strict
	}
	return false
}

func (p *Parser) alloc(toks []token.Token) (int, error) {
	if p.next >= len(toks) {
		return -1, ErrNoMem
	}
	i := p.next
	p.next++
	toks[i] = token.Token{Start: -1, End: -1}
	return i, nil
}

// Tokenize returns the tokens of js, growing the token slice as needed.
func Tokenize(js []byte, opts ...Option) ([]token.Token, error) {
	p := NewParser(opts...)
	toks := make([]token.Token, initialCapacity(len(js)))
	for {
		n, err := p.Parse(js, toks)
		if errors.Is(err, ErrNoMem) {
			grown := make([]token.Token, 2*len(toks))
			copy(grown, toks)
			debug.Printf("growing token buffer from %d to %d at offset %d", len(toks), len(grown), p.Offset())
			toks = grown
			continue
		}
		if err != nil {
			return nil, err
		}
		return toks[:n], nil
	}
}

// Rough guess at the number of tokens in a text of the given length.
func initialCapacity(textLen int) int {
	return max(textLen/4, minCapacity)
}

const minCapacity = 8

// Room for the open containers of typical documents before the stack grows.
const initialDepth = 16
