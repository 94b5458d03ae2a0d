package effects

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/on-the-ground/funtom_go/effio"
	"github.com/on-the-ground/funtom_go/maybe"
)

// Println writes args to w followed by a newline when run.
func Println(w io.Writer, args ...any) effio.IO[error] {
	return effio.New(func() error {
		_, err := fmt.Fprintln(w, args...)
		return err
	})
}

// Printf writes a formatted line to w when run.
func Printf(w io.Writer, format string, args ...any) effio.IO[error] {
	return effio.New(func() error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

// ReadLine reads one line from r when run, without its line terminator.
// It yields Nothing at end of input or on a read error.
func ReadLine(r *bufio.Reader) effio.IO[maybe.Maybe[string]] {
	return effio.New(func() maybe.Maybe[string] {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return maybe.Nothing[string]()
		}
		return maybe.Just(strings.TrimRight(line, "\r\n"))
	})
}

// FileDescriptor is implemented by *os.File.
type FileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether f is attached to a terminal when run.
func IsTerminal(f FileDescriptor) effio.IO[bool] {
	return effio.New(func() bool {
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	})
}
