package format

import (
	"github.com/arnodel/jsmnav/nav"
	"github.com/arnodel/jsmnav/token"
)

// A Colorizer holds the terminal escape codes used to highlight tokens.  A nil
// *Colorizer is valid and outputs no escape codes.
type Colorizer struct {
	NameColorCode  []byte
	KindColorCodes [5][]byte
	ResetCode      []byte
}

// ColorCode returns the code to print before the token at i.
func (c *Colorizer) ColorCode(d nav.Doc, i int) []byte {
	if d.IsName(i) {
		return c.NameColorCode
	}
	kind := d.Kind(i)
	if int(kind) >= len(c.KindColorCodes) {
		return nil
	}
	return c.KindColorCodes[kind]
}

// PrintToken outputs the text spanned by the token at i.
func (c *Colorizer) PrintToken(p Printer, d nav.Doc, i int) {
	c.print(p, d, i, false)
}

// PrintQuotedToken is like PrintToken but surrounds strings with quotes.
func (c *Colorizer) PrintQuotedToken(p Printer, d nav.Doc, i int) {
	c.print(p, d, i, d.Kind(i) == token.String)
}

func (c *Colorizer) print(p Printer, d nav.Doc, i int, quoted bool) {
	if c != nil {
		p.PrintBytes(c.ColorCode(d, i))
	}
	if quoted {
		p.PrintBytes(quote)
	}
	p.PrintBytes(d.Span(i))
	if quoted {
		p.PrintBytes(quote)
	}
	if c != nil {
		p.PrintBytes(c.ResetCode)
	}
}

// PrintBytes outputs b in the color of the given kind.
func (c *Colorizer) PrintBytes(p Printer, kind token.Kind, b []byte) {
	if c != nil && int(kind) < len(c.KindColorCodes) {
		p.PrintBytes(c.KindColorCodes[kind])
		defer p.PrintBytes(c.ResetCode)
	}
	p.PrintBytes(b)
}

var quote = []byte{'"'}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Green   = []byte("\033[32m")
	Yellow  = []byte("\033[33m")
	Magenta = []byte("\033[35m")
	White   = []byte("\033[37m")

	DimWhite = []byte("\033[37;2m")

	BrightBlue = []byte("\033[34;1m")
)

// DefaultColorizer is used by the jn command on terminals.
var DefaultColorizer = Colorizer{
	NameColorCode: BrightBlue,
	KindColorCodes: [5][]byte{
		token.Undefined: Magenta,
		token.Object:    DimWhite,
		token.Array:     DimWhite,
		token.String:    Green,
		token.Primitive: Yellow,
	},
	ResetCode: Reset,
}
