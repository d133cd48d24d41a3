package writers

import (
	"errors"
	"io"
	"syscall"
)

// Deliver writes a fully rendered document to w in one call. A reader that
// stopped early (`mathstencil add | head`) is not an error.
func Deliver(w io.Writer, doc []byte) error {
	if len(doc) == 0 {
		return nil
	}
	if _, err := w.Write(doc); err != nil && !closedPipe(err) {
		return err
	}
	return nil
}

func closedPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
