// Package common holds process-wide helpers shared by the commands.
package common

import (
	"os"

	"github.com/phuslu/log"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
	"github.com/ternarybob/arbor/writers"
)

// NewLogger creates a console logger writing to stderr at the given level.
// stdout is reserved for report output and the MCP stdio transport.
// Level "off" discards everything.
func NewLogger(level string) arbor.ILogger {
	switch level {
	case "":
		level = "info"
	case "off":
		return NewSilentLogger()
	}
	return arbor.NewLogger().
		WithConsoleWriter(models.WriterConfiguration{
			Type:       models.LogWriterTypeConsole,
			Writer:     os.Stderr,
			TimeFormat: "15:04:05",
		}).
		WithLevelFromString(level)
}

// discardWriter drops every event so nothing reaches the globally registered writers.
type discardWriter struct{}

func (w *discardWriter) Write(p []byte) (int, error)           { return len(p), nil }
func (w *discardWriter) WithLevel(_ log.Level) writers.IWriter { return w }
func (w *discardWriter) GetFilePath() string                   { return "" }
func (w *discardWriter) Close() error                          { return nil }

// NewSilentLogger creates a logger that discards all output.
func NewSilentLogger() arbor.ILogger {
	return arbor.NewLogger().WithWriters([]writers.IWriter{&discardWriter{}})
}
