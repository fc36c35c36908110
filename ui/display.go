package ui

import (
	"fmt"
	"io"
	"strings"
)

func Printfln(out io.Writer, format string, args ...interface{}) {
	Println(out, fmt.Sprintf(format, args...))
}

func Printlns(out io.Writer, lines []string) {
	Println(out, strings.Join(lines, "\n"))
}

func Println(out io.Writer, args ...interface{}) {
	_, _ = fmt.Fprintln(out, args...)
}
