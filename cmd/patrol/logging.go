package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// setupLogging routes the standard logger. Without debug all output is
// discarded. With debug it goes to logPath when set, else to stderr.
// The returned file, if any, must be closed by the caller.
func setupLogging(debug bool, logPath string, stderr io.Writer) (*os.File, error) {
	log.SetPrefix("patrol: ")
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if logPath == "" {
		log.SetOutput(stderr)
		return nil, nil
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
