package pipeline

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fennewald/nushell/internal/interrupt"
	"github.com/fennewald/nushell/internal/span"
)

type failingReader struct {
	err error
}

func (r failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestByteStreamChunking(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{'x'}, 20*1024)
	b := NewByteStream(bytes.NewReader(payload), nil, span.Unknown())

	var sizes []int
	var drained []byte
	for chunk, err := range b.Chunks() {
		if err != nil {
			t.Fatalf("Chunks() error = %v", err)
		}
		sizes = append(sizes, len(chunk))
		drained = append(drained, chunk...)
	}

	want := []int{8192, 8192, 4096}
	if len(sizes) != len(want) {
		t.Fatalf("chunk sizes = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("chunk sizes = %v, want %v", sizes, want)
		}
	}
	if !bytes.Equal(drained, payload) {
		t.Fatalf("drained %d bytes do not match the payload", len(drained))
	}
}

func TestByteStreamBytes(t *testing.T) {
	t.Parallel()

	b := NewByteStream(strings.NewReader("hello"), nil, span.Unknown())
	got, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("Bytes() = %q, want %q", got, "hello")
	}
}

func TestByteStreamSealedAfterDrain(t *testing.T) {
	t.Parallel()

	b := NewByteStream(strings.NewReader("hello"), nil, span.Unknown())
	if _, err := b.Bytes(); err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	got, err := b.Bytes()
	if err != nil {
		t.Fatalf("second Bytes() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("second Bytes() = %q, want nothing", got)
	}
}

func TestByteStreamReadFailure(t *testing.T) {
	t.Parallel()

	r := io.MultiReader(strings.NewReader("ab"), failingReader{err: errors.New("pipe broke")})
	b := NewByteStream(r, nil, span.Unknown())

	_, err := b.Bytes()
	if !errors.Is(err, ErrIO) {
		t.Fatalf("Bytes() error = %v, want ErrIO", err)
	}
	if !strings.Contains(err.Error(), "pipe broke") {
		t.Fatalf("Bytes() error = %q, want the cause preserved", err)
	}
}

func TestByteStreamInterrupted(t *testing.T) {
	t.Parallel()

	sig := interrupt.New()
	sig.Trip()

	b := NewByteStream(strings.NewReader("hello"), sig, span.Unknown())
	if _, err := b.Bytes(); !errors.Is(err, interrupt.ErrInterrupted) {
		t.Fatalf("Bytes() error = %v, want ErrInterrupted", err)
	}
}
