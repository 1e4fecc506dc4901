package value

import (
	"testing"
	"time"

	"github.com/fennewald/nushell/internal/span"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{name: "nothing", v: Nothing{}, want: true},
		{name: "empty_string", v: String{}, want: true},
		{name: "nonempty_string", v: String{Val: "a"}, want: false},
		{name: "empty_binary", v: Binary{}, want: true},
		{name: "nonempty_binary", v: Binary{Val: []byte{0}}, want: false},
		{name: "empty_list", v: List{}, want: true},
		{name: "nonempty_list", v: List{Items: []Value{Nothing{}}}, want: false},
		{name: "empty_record", v: Record{}, want: true},
		{name: "nonempty_record", v: Record{Fields: []Field{{Name: "a", Value: Int{Val: 1}}}}, want: false},
		{name: "bool_false", v: Bool{}, want: false},
		{name: "int_zero", v: Int{}, want: false},
		{name: "float_zero", v: Float{}, want: false},
		{name: "duration_zero", v: Duration{}, want: false},
		{name: "filesize_zero", v: Filesize{}, want: false},
		{name: "date_zero", v: Date{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsEmpty(tt.v); got != tt.want {
				t.Fatalf("IsEmpty(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{name: "int_int", a: Int{Val: 1}, b: Int{Val: 1}, want: true},
		{name: "int_int_differ", a: Int{Val: 1}, b: Int{Val: 2}, want: false},
		{name: "int_float_cross", a: Int{Val: 1}, b: Float{Val: 1.0}, want: true},
		{name: "float_int_cross", a: Float{Val: 2.5}, b: Int{Val: 2}, want: false},
		{name: "spans_ignored", a: String{Val: "x", Span: span.New(0, 1)}, b: String{Val: "x", Span: span.New(9, 10)}, want: true},
		{name: "string_int", a: String{Val: "1"}, b: Int{Val: 1}, want: false},
		{name: "nothing_nothing", a: Nothing{}, b: Nothing{}, want: true},
		{name: "nothing_empty_string", a: Nothing{}, b: String{}, want: false},
		{name: "binary", a: Binary{Val: []byte{1, 2}}, b: Binary{Val: []byte{1, 2}}, want: true},
		{
			name: "record_order_matters",
			a:    Record{Fields: []Field{{Name: "a", Value: Int{Val: 1}}, {Name: "b", Value: Int{Val: 2}}}},
			b:    Record{Fields: []Field{{Name: "b", Value: Int{Val: 2}}, {Name: "a", Value: Int{Val: 1}}}},
			want: false,
		},
		{
			name: "nested_list",
			a:    List{Items: []Value{Int{Val: 1}, List{Items: []Value{Bool{Val: true}}}}},
			b:    List{Items: []Value{Int{Val: 1}, List{Items: []Value{Bool{Val: true}}}}},
			want: true,
		},
		{name: "duration", a: Duration{Val: time.Second}, b: Duration{Val: time.Second}, want: true},
		{name: "date", a: Date{Val: time.Unix(10, 0)}, b: Date{Val: time.Unix(10, 0).UTC()}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Fatalf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	src := Record{Fields: []Field{
		{Name: "rows", Value: List{Items: []Value{Int{Val: 1}, Int{Val: 2}}}},
		{Name: "raw", Value: Binary{Val: []byte{1, 2, 3}}},
	}}

	got, ok := Clone(src).(Record)
	if !ok {
		t.Fatalf("Clone changed variant: %T", Clone(src))
	}
	if !Equal(got, src) {
		t.Fatalf("Clone(%v) = %v, want equal", src, got)
	}

	got.Set("rows", Nothing{})
	bin := got.Fields[1].Value.(Binary)
	bin.Val[0] = 9

	if v, _ := src.Get("rows"); KindOf(v) != KindList {
		t.Fatalf("mutating the clone changed the source field: %v", v)
	}
	if srcBin := src.Fields[1].Value.(Binary); srcBin.Val[0] != 1 {
		t.Fatalf("mutating cloned bytes changed source bytes: %v", srcBin.Val)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    Value
		want Kind
		name string
	}{
		{v: Nothing{}, want: KindNothing, name: "nothing"},
		{v: Bool{}, want: KindBool, name: "bool"},
		{v: Int{}, want: KindInt, name: "int"},
		{v: Float{}, want: KindFloat, name: "float"},
		{v: String{}, want: KindString, name: "string"},
		{v: Binary{}, want: KindBinary, name: "binary"},
		{v: Record{}, want: KindRecord, name: "record"},
		{v: List{}, want: KindList, name: "list"},
		{v: Duration{}, want: KindDuration, name: "duration"},
		{v: Filesize{}, want: KindFilesize, name: "filesize"},
		{v: Date{}, want: KindDate, name: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := KindOf(tt.v); got != tt.want {
				t.Fatalf("KindOf(%T) = %v, want %v", tt.v, got, tt.want)
			}
			if got := tt.want.String(); got != tt.name {
				t.Fatalf("Kind.String() = %q, want %q", got, tt.name)
			}
		})
	}
}

func TestSpanOf(t *testing.T) {
	t.Parallel()

	sp := span.New(3, 9)
	if got := SpanOf(String{Val: "x", Span: sp}); got != sp {
		t.Fatalf("SpanOf = %v, want %v", got, sp)
	}
	if got := SpanOf(nil); !got.IsUnknown() {
		t.Fatalf("SpanOf(nil) = %v, want unknown", got)
	}
}
