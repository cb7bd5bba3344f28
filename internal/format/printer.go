package format

import (
	"fmt"
	"io"
)

// The Printer interface is used to output lines of text.
//
// SetIndentLevel() sets the indentation of lines started after the call
// NewLine() start a new line at the current indentation level
// PrintBytes() outputs bytes at the current position
//
// The methods do not return an error because for this program it's assumed
// to be an exceptional case that outputting results in an error and the only
// sensible outcome is to stop the program.
// Instead, implementations are expected to panic with a *PrinterError when
// they encounter an error.  A user of the Printer interface can use
//
//	func printingFunction(p Printer) (err error) {
//	    defer CatchPrinterError(&err)
//	    return doSomePrinting(printer)
//	}
//
// to capture such errors.
type Printer interface {
	SetIndentLevel(int)
	NewLine()
	PrintBytes([]byte)
}

// CatchPrinterError can be used to capture panics caused by a Printer because
// of an error encountered while attempting to send output.  See the Printer
// interface documentation for details.
func CatchPrinterError(err *error) {
	if r := recover(); r != nil {
		perr, ok := r.(*PrinterError)
		if ok {
			*err = perr
		} else {
			panic(r)
		}
	}
}

// A PrinterError contains an error that occurred while a Printer implementation
// was sending some output.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("printer error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}

// A Flusher is notified at the end of each line, e.g. a *bufio.Writer so that
// output to a terminal appears line by line.
type Flusher interface {
	Flush() error
}

// DefaultPrinter implements a Printer which uses an io.Writer to send output,
// using IndentSize spaces for each indent level.
type DefaultPrinter struct {
	io.Writer
	IndentSize  int
	Flusher     Flusher
	indentLevel int
	lineStarted bool
}

var _ Printer = &DefaultPrinter{}

// SetIndentLevel changes the indentation of the next lines.  The current line
// is not affected.
func (p *DefaultPrinter) SetIndentLevel(level int) {
	p.indentLevel = max(level, 0)
}

// NewLine ends the current line.  The indentation of the next line is output
// with its first bytes.
func (p *DefaultPrinter) NewLine() {
	p.write([]byte{'\n'})
	p.lineStarted = false
	if p.Flusher != nil {
		if err := p.Flusher.Flush(); err != nil {
			panic(wrapError(err))
		}
	}
}

// PrintBytes sends the gives bytes verbatim to the printer's writer.
func (p *DefaultPrinter) PrintBytes(b []byte) {
	if !p.lineStarted {
		p.lineStarted = true
		for i := p.IndentSize * p.indentLevel; i > 0; i-- {
			p.write([]byte{' '})
		}
	}
	p.write(b)
}

func (p *DefaultPrinter) write(b []byte) {
	_, err := p.Write(b)
	if err != nil {
		panic(wrapError(err))
	}
}

func wrapError(err error) *PrinterError {
	return &PrinterError{Err: err}
}
