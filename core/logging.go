package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Debug log location, relative to the working directory
const (
	LogDir      = "logs"
	LogFileName = "multipong.log"
	MaxLogSize  = 10 << 20 // Rotate above 10 MiB
)

// SetupLogging routes the standard logger to LogDir/LogFileName when debug is set and discards it otherwise,
// so log output never lands on the terminal the game draws on. An oversized log is renamed with a
// timestamp before opening. The caller closes the returned file; nil when logging is off or unavailable
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(LogDir, LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(LogDir, fmt.Sprintf("multipong_%s.log", time.Now().Format("20060102_150405")))
		// Failure leaves the old file in place; appending is still safe
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("log opened (pid %d)", os.Getpid())
	return f
}
