package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points the standard logger away from the terminal the game
// draws on. Without debug, logs are discarded; with it they go to
// logs/snake.log, which is moved aside to snake.log.old once it grows past
// maxLogSize. If it cannot be moved it is truncated instead.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if rotateErr = os.Rename(logPath, logPath+".old"); rotateErr != nil {
			flags |= os.O_TRUNC
		}
	}

	f, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if rotateErr != nil {
		log.Printf("could not rotate %s, truncated instead: %v", logPath, rotateErr)
	}
	return f
}
