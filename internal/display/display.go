// Package display renders a pipeline result onto an output writer.
package display

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/fennewald/nushell/internal/codec"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/value"
)

// Renderer writes pipeline output in a chosen format, optionally
// pacing streamed elements through a rate limiter.
type Renderer struct {
	Out     io.Writer
	Format  codec.Format
	Limiter *rate.Limiter
}

// Flush consumes data and writes it out. Streamed inputs are written
// element by element, so cancellation lands between elements instead
// of after a full drain.
func (r *Renderer) Flush(ctx context.Context, data *pipeline.Data) error {
	switch r.resolve(data) {
	case codec.FormatJSON:
		return r.flushEncoded(codec.FormatJSON, data)
	case codec.FormatYAML:
		return r.flushEncoded(codec.FormatYAML, data)
	case codec.FormatRaw:
		return r.flushRaw(ctx, data)
	default:
		return r.flushText(ctx, data)
	}
}

// resolve picks the concrete format, letting upstream metadata decide
// when the renderer was left on auto.
func (r *Renderer) resolve(data *pipeline.Data) codec.Format {
	if r.Format != codec.FormatAuto && r.Format != "" {
		return r.Format
	}
	if m := data.Metadata(); m != nil && m.FormatHint != "" {
		if f, err := codec.ParseFormat(m.FormatHint); err == nil {
			return f
		}
	}
	return codec.FormatText
}

func (r *Renderer) flushText(ctx context.Context, data *pipeline.Data) error {
	if e, ok := data.External(); ok {
		return r.passthrough(e)
	}
	if v, ok := data.Value(); ok && value.KindOf(v) == value.KindNothing {
		return nil
	}

	for v, err := range pipeline.Throttle(ctx, data.Values(), r.Limiter) {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.Out, value.IntoString(v)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func (r *Renderer) flushRaw(ctx context.Context, data *pipeline.Data) error {
	if e, ok := data.External(); ok {
		return r.passthrough(e)
	}

	for v, err := range pipeline.Throttle(ctx, data.Values(), r.Limiter) {
		if err != nil {
			return err
		}
		if err := r.writeRaw(v); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeRaw(v value.Value) error {
	var err error
	switch v := v.(type) {
	case value.Binary:
		_, err = r.Out.Write(v.Val)
	case value.String:
		_, err = io.WriteString(r.Out, v.Val)
	default:
		_, err = io.WriteString(r.Out, value.IntoString(v))
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (r *Renderer) flushEncoded(format codec.Format, data *pipeline.Data) error {
	v, err := data.Collect()
	if err != nil {
		return err
	}
	out, err := codec.Encode(format, v)
	if err != nil {
		return err
	}
	if _, err := r.Out.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if format == codec.FormatJSON {
		if _, err := io.WriteString(r.Out, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// passthrough copies external stdout verbatim, byte chunks untouched.
func (r *Renderer) passthrough(e *pipeline.ExternalStream) error {
	if e.Stdout == nil {
		return nil
	}
	for chunk, err := range e.Stdout.Chunks() {
		if err != nil {
			return err
		}
		if _, err := r.Out.Write(chunk); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
