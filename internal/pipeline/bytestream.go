package pipeline

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/google/uuid"

	"github.com/fennewald/nushell/internal/interrupt"
	"github.com/fennewald/nushell/internal/span"
)

// ErrIO reports an OS-level failure reading an external stream. It is
// never retried here; retry policy belongs to the calling command.
var ErrIO = errors.New("stream read failed")

// chunkSize is the read granularity for external byte streams: small
// enough that a consumer reacts long before the producing process
// terminates.
const chunkSize = 8 * 1024

// ByteStream is a lazy, single-pass byte-chunk sequence, typically
// backed by an external process pipe. Reads block until the producer
// supplies bytes or closes its end of the channel.
type ByteStream struct {
	id   string
	sp   span.Span
	sig  *interrupt.Signal
	r    io.Reader
	done bool
}

// NewByteStream wraps a reader. The interrupt signal is polled before
// every read; sig may be nil.
func NewByteStream(r io.Reader, sig *interrupt.Signal, sp span.Span) *ByteStream {
	return &ByteStream{
		id:  uuid.New().String(),
		sp:  sp,
		sig: sig,
		r:   r,
	}
}

// ID returns the stream identity used in debug logging.
func (b *ByteStream) ID() string {
	return b.id
}

// Span returns the source region the stream originated from.
func (b *ByteStream) Span() span.Span {
	return b.sp
}

// Chunks iterates the stream in chunks of at most 8 KiB. The interrupt
// flag is checked before each read; read failures end the iteration
// with ErrIO. However the iteration ends, the stream is sealed.
func (b *ByteStream) Chunks() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		if b.done {
			return
		}
		defer func() { b.done = true }()
		for {
			if err := b.sig.Err(); err != nil {
				yield(nil, err)
				return
			}
			buf := make([]byte, chunkSize)
			n, err := b.r.Read(buf)
			if n > 0 {
				if !yield(buf[:n], nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("%w: %v", ErrIO, err))
				return
			}
		}
	}
}

// Bytes drains the stream into memory.
func (b *ByteStream) Bytes() ([]byte, error) {
	var out []byte
	for chunk, err := range b.Chunks() {
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// ExternalStream is the result of invoking an external process:
// independently lazy byte streams for standard output and error
// (either may be nil) and a deferred handle to the exit status.
// Nothing is buffered up front.
type ExternalStream struct {
	Stdout *ByteStream
	Stderr *ByteStream

	// ExitCode blocks until the process ends and reports its status.
	// Nil when no status will ever be known, such as an adopted pipe.
	ExitCode func() int
}
