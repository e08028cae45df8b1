package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	successText = color.New(color.FgGreen).SprintFunc()
	warnText    = color.New(color.FgYellow).SprintFunc()
	errorText   = color.New(color.FgRed, color.Bold).SprintFunc()
	debugText   = color.New(color.FgCyan).SprintFunc()
)

// Console prints user-facing progress lines and mirrors each one into the log.
type Console struct {
	out   io.Writer
	debug bool
}

// NewConsole returns a Console writing to out (stdout when nil).
func NewConsole(out io.Writer, debug bool) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out, debug: debug}
}

// Writer exposes the underlying destination for callers that render their own blocks.
func (c *Console) Writer() io.Writer { return c.out }

// Println prints an uncolored line.
func (c *Console) Println(a ...any) {
	msg := fmt.Sprintln(a...)
	c.emit("INFO", msg, msg)
}

// Printf prints an uncolored formatted line. A trailing newline is added.
func (c *Console) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...) + "\n"
	c.emit("INFO", msg, msg)
}

// Success prints a green line.
func (c *Console) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.emit("SUCCESS", msg, successText(msg)+"\n")
}

// Warn prints a yellow line.
func (c *Console) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.emit("WARN", msg, warnText(msg)+"\n")
}

// Error prints a red line. Errors are reported, never fatal.
func (c *Console) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.emit("ERROR", msg, errorText(msg)+"\n")
}

// Debug prints a cyan line only when debug output is enabled. The log always gets it.
func (c *Console) Debug(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !c.debug {
		LogLevel("DEBUG", msg)
		return
	}
	c.emit("DEBUG", msg, debugText(msg)+"\n")
}

func (c *Console) emit(level, plain, rendered string) {
	_, _ = io.WriteString(c.out, rendered)
	if plain == "\n" {
		return
	}
	LogLevel(level, plain)
}
