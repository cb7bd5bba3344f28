package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/arnodel/jsmnav"
	"github.com/arnodel/jsmnav/internal/config"
	"github.com/arnodel/jsmnav/internal/format"
	"github.com/arnodel/jsmnav/nav"
	"github.com/arnodel/jsmnav/tokenizer"
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see run).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
			os.Exit(2)
		}
	}()

	env := environment{
		stdin:          os.Stdin,
		stdout:         os.Stdout,
		stderr:         os.Stderr,
		stdoutTerminal: isatty.IsTerminal(os.Stdout.Fd()),
		stderrTerminal: isatty.IsTerminal(os.Stderr.Fd()),
	}
	os.Exit(run(os.Args[1:], env))
}

// environment is what the command reads from and writes to.
type environment struct {
	stdin          io.Reader
	stdout         io.Writer
	stderr         io.Writer
	stdoutTerminal bool
	stderrTerminal bool
}

// run executes jn and returns its exit status.
func run(args []string, env environment) int {
	cfg, err := config.Parse(args, env.stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	errorLabel := color.New(color.FgRed, color.Bold)
	useColor := env.stderrTerminal
	if cfg != nil {
		useColor = cfg.UseColor(env.stderrTerminal)
	}
	if useColor {
		errorLabel.EnableColor()
	} else {
		errorLabel.DisableColor()
	}
	fail := func(msg string, args ...any) {
		errorLabel.Fprint(env.stderr, "error:")
		fmt.Fprintf(env.stderr, " "+msg+"\n", args...)
	}
	if err != nil {
		fail("%s", err)
		return 1
	}

	text, err := readInput(cfg.Input, env.stdin)
	if err != nil {
		fail("unable to read input: %s", err)
		return 1
	}

	opts := []tokenizer.Option{tokenizer.WithMaxDepth(cfg.MaxDepth)}
	if cfg.Strict {
		opts = append(opts, tokenizer.WithStrict())
	}
	doc, err := jsmnav.Parse(text, opts...)
	if err != nil {
		fail("unable to tokenize input: %s", err)
		return 1
	}

	// Set up stdout for handling colors
	var colorizer *format.Colorizer
	stdout := env.stdout
	if cfg.UseColor(env.stdoutTerminal) {
		colorizer = &format.DefaultColorizer
		if f, ok := stdout.(*os.File); ok && f == os.Stdout {
			stdout = colorable.NewColorableStdout()
		}
	}
	out := bufio.NewWriter(stdout)
	printer := &format.DefaultPrinter{
		Writer:     out,
		IndentSize: cfg.Indent,
	}

	// If we are writing to a terminal, flush after each line so user gets feedback early.
	if env.stdoutTerminal {
		printer.Flusher = out
	}

	status, err := output(cfg, printer, colorizer, doc, fail)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return status
		}
		fail("%s", err)
		return 1
	}
	return status
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// output prints what cfg asks for.  A path that cannot be resolved is
// reported and makes the status 1, but the following paths are still
// resolved.
func output(cfg *config.Config, p format.Printer, c *format.Colorizer, doc nav.Doc, fail func(string, ...any)) (status int, err error) {
	defer format.CatchPrinterError(&err)

	switch cfg.Dump {
	case config.DumpTokens:
		format.PrintTokens(p, c, doc)
		return 0, nil
	case config.DumpTree:
		format.PrintTree(p, c, doc)
		return 0, nil
	}

	if len(cfg.Queries) == 0 {
		for i := range doc.Roots() {
			c.PrintToken(p, doc, i)
			p.NewLine()
		}
		return 0, nil
	}

	if doc.Len() == 0 {
		fail("no JSON value in input")
		return 1, nil
	}
	for _, query := range cfg.Queries {
		i, lookupErr := doc.Lookup(0, query)
		if lookupErr != nil {
			fail("%s: %s", query, lookupErr)
			status = 1
			continue
		}
		if !cfg.PrintNames {
			i = doc.ValueOf(i)
		}
		c.PrintToken(p, doc, i)
		p.NewLine()
	}
	return status, nil
}
