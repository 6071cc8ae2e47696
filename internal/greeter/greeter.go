// Package greeter writes the greeting to an output stream.
package greeter

import (
	"bufio"
	"fmt"
	"io"
)

// Message is the exact greeting text, without the trailing newline.
const Message = "Hello, World!"

// WriteError reports a failed write to the greeting destination.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "An error occurred: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// Greet writes Message plus a newline to w and flushes before
// returning, so the line is visible even when w buffers. Any failure,
// including a failed flush, is returned as *WriteError.
func Greet(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Message); err != nil {
		return &WriteError{Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
