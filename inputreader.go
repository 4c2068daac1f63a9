package tuikit

import (
	"io"
	"time"

	"github.com/muesli/cancelreader"
)

// cancelableByteReader adapts a cancelreader.CancelReader to the decoder's
// byteReader interface. A pump goroutine performs the blocking reads and
// hands each byte over a channel, so ReadByte can honor a timeout with a
// select without the underlying Read call supporting deadlines itself.
// Grounded on the teacher's driver.go, which reads through
// muesli/cancelreader for exactly this reason: so program teardown can
// unblock a pending read instead of leaking a blocked goroutine.
type cancelableByteReader struct {
	cr     cancelreader.CancelReader
	bytes  chan readResult
	closed chan struct{}
}

type readResult struct {
	b   byte
	err error
}

func newCancelableByteReader(r io.Reader) (*cancelableByteReader, error) {
	cr, err := cancelreader.NewReader(r)
	if err != nil {
		return nil, err
	}
	c := &cancelableByteReader{
		cr:     cr,
		bytes:  make(chan readResult),
		closed: make(chan struct{}),
	}
	go c.pump()
	return c, nil
}

// pump is the single goroutine allowed to call Read on the underlying
// reader, so concurrent ReadByte calls never race on the stream.
func (c *cancelableByteReader) pump() {
	var buf [1]byte
	for {
		n, err := c.cr.Read(buf[:])
		if n > 0 {
			select {
			case c.bytes <- readResult{b: buf[0]}:
			case <-c.closed:
				return
			}
		}
		if err != nil {
			select {
			case c.bytes <- readResult{err: err}:
			case <-c.closed:
			}
			return
		}
	}
}

// Cancel unblocks any in-flight Read, used during program teardown.
func (c *cancelableByteReader) Cancel() bool { return c.cr.Cancel() }

// Close releases the underlying reader and stops the pump goroutine.
func (c *cancelableByteReader) Close() error {
	close(c.closed)
	return c.cr.Close()
}

func (c *cancelableByteReader) ReadByte(timeout time.Duration) (byte, bool, error) {
	if timeout < 0 {
		r, ok := <-c.bytes
		if !ok {
			return 0, false, io.EOF
		}
		return r.b, r.err == nil, r.err
	}

	select {
	case r, ok := <-c.bytes:
		if !ok {
			return 0, false, io.EOF
		}
		if r.err != nil {
			return 0, false, r.err
		}
		return r.b, true, nil
	case <-time.After(timeout):
		return 0, false, nil
	}
}
