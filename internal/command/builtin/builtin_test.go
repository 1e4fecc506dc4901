package builtin

import (
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"github.com/fennewald/nushell/internal/command"
	"github.com/fennewald/nushell/internal/interrupt"
	"github.com/fennewald/nushell/internal/pipeline"
	"github.com/fennewald/nushell/internal/span"
	"github.com/fennewald/nushell/internal/value"
)

func testEnv() *command.Env {
	return command.NewEnv(zerolog.Nop(), interrupt.New(), span.Unknown())
}

func arg(text string) command.Arg {
	return command.Arg{Text: text, Span: span.Unknown()}
}

func args(texts ...string) []command.Arg {
	out := make([]command.Arg, len(texts))
	for i, text := range texts {
		out[i] = arg(text)
	}
	return out
}

// mealRows is the table [[meal size]; [arepa small] [taco '']].
func mealRows() []value.Value {
	return []value.Value{
		value.Record{Fields: []value.Field{
			{Name: "meal", Value: value.String{Val: "arepa"}},
			{Name: "size", Value: value.String{Val: "small"}},
		}},
		value.Record{Fields: []value.Field{
			{Name: "meal", Value: value.String{Val: "taco"}},
			{Name: "size", Value: value.String{Val: ""}},
		}},
	}
}

func valueInput(v value.Value) *pipeline.Data {
	return pipeline.FromValue(v, nil)
}

func streamInput(sig *interrupt.Signal, vals ...value.Value) *pipeline.Data {
	s := pipeline.NewListStream(slices.Values(vals), sig, span.Unknown())
	return pipeline.FromListStream(s, nil)
}

func outputValue(t *testing.T, data *pipeline.Data) value.Value {
	t.Helper()
	v, ok := data.Value()
	if !ok {
		t.Fatalf("output kind = %v, want a value", data.Kind())
	}
	return v
}

func outputBool(t *testing.T, data *pipeline.Data) bool {
	t.Helper()
	v := outputValue(t, data)
	b, ok := v.(value.Bool)
	if !ok {
		t.Fatalf("output = %T, want Bool", v)
	}
	return b.Val
}
