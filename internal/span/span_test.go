package span

import "testing"

func TestNewClampsReversedRange(t *testing.T) {
	t.Parallel()

	sp := New(7, 3)
	if sp.Start != 7 || sp.End != 7 {
		t.Fatalf("New(7, 3) = %v, want 7..7", sp)
	}
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	if !Unknown().IsUnknown() {
		t.Fatal("Unknown().IsUnknown() = false")
	}
	if New(0, 0).IsUnknown() {
		t.Fatal("New(0, 0).IsUnknown() = true")
	}
	if got := Unknown().String(); got != "unknown" {
		t.Fatalf("Unknown().String() = %q, want %q", got, "unknown")
	}
}

func TestShift(t *testing.T) {
	t.Parallel()

	if got := New(2, 5).Shift(10); got != New(12, 15) {
		t.Fatalf("Shift(10) = %v, want 12..15", got)
	}
	if got := Unknown().Shift(10); !got.IsUnknown() {
		t.Fatalf("Unknown().Shift(10) = %v, want unknown", got)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if got := New(5, 17).String(); got != "5..17" {
		t.Fatalf("String() = %q, want %q", got, "5..17")
	}
}
