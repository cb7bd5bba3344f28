package format

import (
	"fmt"

	"github.com/arnodel/jsmnav/internal/stack"
	"github.com/arnodel/jsmnav/nav"
)

// PrintTokens outputs one line per token: position, kind, span, size and,
// for strings and primitives, the text.
func PrintTokens(p Printer, c *Colorizer, d nav.Doc) {
	var buf []byte
	for i, tok := range d.Tokens {
		buf = fmt.Appendf(buf[:0], "%5d %-9s %6d %6d %4d", i, tok.Kind, tok.Start, tok.End, tok.Size)
		p.PrintBytes(buf)
		if !tok.IsContainer() {
			p.PrintBytes(space)
			c.PrintQuotedToken(p, d, i)
		}
		p.NewLine()
	}
}

// PrintTree outputs the structure of the document, one token per line
// indented by depth.  A name and its value share a line.  Containers show
// their kind and number of children rather than their text.
//
// Depth is tracked with a stack holding, for each enclosing container, the
// number of children not printed yet, so nesting does not use the call
// stack.
func PrintTree(p Printer, c *Colorizer, d nav.Doc) {
	var pending stack.Stack[int]
	for i, tok := range d.Tokens {
		for n, ok := pending.Peek(); ok && n == 0; n, ok = pending.Peek() {
			pending.Pop()
		}
		// The value of a name takes the slot of the name, on the same line.
		if i == 0 || !d.IsName(i-1) {
			if i > 0 {
				p.NewLine()
			}
			p.SetIndentLevel(pending.Size())
			if n, ok := pending.Pop(); ok {
				pending.Push(n - 1)
			}
		}
		if tok.Size > 0 && !d.IsName(i) {
			pending.Push(tok.Size)
		}

		switch {
		case d.IsName(i):
			c.PrintQuotedToken(p, d, i)
			p.PrintBytes(colonSpace)
		case tok.IsContainer():
			c.PrintBytes(p, tok.Kind, fmt.Appendf(nil, "%s(%d)", tok.Kind, tok.Size))
		default:
			c.PrintQuotedToken(p, d, i)
		}
	}
	if len(d.Tokens) > 0 {
		p.NewLine()
	}
}

var (
	space      = []byte{' '}
	colonSpace = []byte(": ")
)
