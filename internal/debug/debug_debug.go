//go:build debug

package debug

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "jsmnav: ", log.Lmicroseconds)

// Printf logs to stderr.  It is a no-op unless built with -tags debug.
func Printf(msg string, args ...any) {
	logger.Printf(msg, args...)
}

const On = true
