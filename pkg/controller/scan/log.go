package scan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type colorFunc func(a ...any) string

// Logger prints recoverable errors and notices for users on stdout.
type Logger struct {
	stdout io.Writer
	red    colorFunc
}

func NewLogger(stdout io.Writer) *Logger {
	return &Logger{
		red:    color.New(color.FgRed).SprintFunc(),
		stdout: stdout,
	}
}

func (l *Logger) Error(message string, err error) {
	fmt.Fprintf(l.stdout, "%s %s: %v\n", l.red("ERROR"), message, err)
}

func (l *Logger) Notice(message string) {
	fmt.Fprintln(l.stdout, message)
}
