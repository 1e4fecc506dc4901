// Package shell wires one invocation together: it ingests standard
// input into a pipeline envelope, runs the requested command over it
// and renders the result.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/fennewald/nushell/internal/codec"
	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/command/builtin"
	"github.com/fennewald/nushell/internal/config"
	"github.com/fennewald/nushell/internal/display"
	"github.com/fennewald/nushell/internal/exit"
	"github.com/fennewald/nushell/internal/interrupt"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/span"
)

type Runner struct {
	config    *config.Config
	registry  *command.Registry
	logger    zerolog.Logger
	signal    *interrupt.Signal
	limiter   *rate.Limiter
	input     io.Reader
	output    io.Writer
	errOutput io.Writer
}

func New(cfg *config.Config) *Runner {
	reg := command.NewRegistry()
	builtin.RegisterAll(reg)

	return &Runner{
		config:    cfg,
		registry:  reg,
		logger:    newLogger(cfg.LogLevel, os.Stderr),
		signal:    interrupt.New(),
		limiter:   pipeline.NewLimiter(cfg.Throttle),
		input:     os.Stdin,
		output:    os.Stdout,
		errOutput: os.Stderr,
	}
}

func newLogger(level zerolog.Level, w io.Writer) zerolog.Logger {
	if level == zerolog.Disabled {
		return zerolog.Nop()
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(level)
}

func (r *Runner) SetInput(in io.Reader)      { r.input = in }
func (r *Runner) SetOutput(w io.Writer)      { r.output = w }
func (r *Runner) SetErrorOutput(w io.Writer) { r.errOutput = w }

// Run executes the invocation and returns the process exit code.
func (r *Runner) Run(ctx context.Context) int {
	stop := r.signal.Notify()
	defer stop()

	data, err := r.ingest()
	if err != nil {
		return r.fail(err)
	}

	out, err := r.execute(ctx, data)
	if err != nil {
		return r.fail(err)
	}

	renderer := &display.Renderer{Out: r.output, Format: r.config.Out, Limiter: r.limiter}
	if err := renderer.Flush(ctx, out); err != nil {
		return r.fail(err)
	}

	// A surviving external input hands its exit status through.
	if code := externalExitCode(out); code != 0 {
		return code
	}
	return exit.CodeSuccess
}

func externalExitCode(out *pipeline.Data) int {
	if e, ok := out.External(); ok && e.ExitCode != nil {
		return e.ExitCode()
	}
	return 0
}

// ingest turns standard input into the initial pipeline envelope. Raw
// mode adopts the reader as a byte stream, everything else reads the
// whole document and decodes it.
func (r *Runner) ingest() (*pipeline.Data, error) {
	if r.config.In == codec.FormatRaw {
		bs := pipeline.NewByteStream(r.input, r.signal, span.Unknown())
		return pipeline.FromExternal(&pipeline.ExternalStream{Stdout: bs}, nil), nil
	}

	data, err := io.ReadAll(r.input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pipeline.ErrIO, err)
	}
	if len(data) == 0 {
		return pipeline.Empty(), nil
	}

	format := r.config.In
	if format == codec.FormatAuto {
		format = codec.Detect(data)
	}
	v, err := codec.Decode(format, data, span.Unknown())
	if err != nil {
		return nil, err
	}
	return pipeline.FromValue(v, &pipeline.Metadata{FormatHint: string(format)}), nil
}

func (r *Runner) execute(ctx context.Context, input *pipeline.Data) (*pipeline.Data, error) {
	if r.config.Command == "" {
		return input, nil
	}

	cmd, err := r.registry.Lookup(r.config.Command)
	if err != nil {
		return nil, err
	}

	args := make([]command.Arg, len(r.config.Args))
	for i, text := range r.config.Args {
		args[i] = command.Arg{Text: text, Span: r.config.ArgSpans[i]}
	}
	if err := cmd.Validate(args); err != nil {
		return nil, err
	}

	env := command.NewEnv(r.logger, r.signal, r.config.Head)
	start := time.Now()
	out, err := cmd.Run(ctx, env, args, input)
	r.logger.Debug().
		Str("command", cmd.Name()).
		Str("invocation", env.ID).
		Dur("elapsed", time.Since(start)).
		Err(err).
		Msg("command finished")
	return out, err
}

func (r *Runner) fail(err error) int {
	res := resultFor(err)
	res.Output = r.errOutput
	res.Print()
	return res.ExitCode
}

func resultFor(err error) *exit.Result {
	switch {
	case errors.Is(err, interrupt.ErrInterrupted), errors.Is(err, context.Canceled):
		return exit.Interrupted("Interrupted\n")
	case errors.Is(err, command.ErrUsage), errors.Is(err, command.ErrUnknownCommand):
		return exit.UsageErrorf("Error: %v\n", err)
	default:
		return exit.Errorf("Error: %v\n", err)
	}
}
