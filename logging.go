package tuikit

import (
	"fmt"
	"log"
	"os"
)

// LogToFile redirects the standard logger to path, prefixing every line.
// It's off by default and meant for development: since stdout is the live
// region, ordinary log output would corrupt the render, so debug logging
// only ever goes to a file. The returned closer must be called before the
// program exits.
func LogToFile(path, prefix string) (close func() error, err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("tuikit: open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return f.Close, nil
}
