package fftfilter

import (
	"reflect"
	"testing"
)

func TestSeriesBufferAppendAndLen(t *testing.T) {
	b := NewSeriesBuffer()
	if b.Len("x") != 0 {
		t.Fatal("empty buffer reports samples")
	}

	b.Append("x", 1)
	b.Append("x", 2)
	b.Append("y", 9)

	if b.Len("x") != 2 || b.Len("y") != 1 {
		t.Fatalf("lengths x=%d y=%d, want 2 and 1", b.Len("x"), b.Len("y"))
	}
}

func TestSeriesBufferFull(t *testing.T) {
	b := NewSeriesBuffer()
	for i := 0; i < 4; i++ {
		b.Append("x", float64(i))
	}

	if b.Full("x", 5) {
		t.Fatal("4 samples reported full for batch 5")
	}
	if !b.Full("x", 4) {
		t.Fatal("4 samples not full for batch 4")
	}
	// Over-full series stay triggerable after a batch-size shrink.
	if !b.Full("x", 3) {
		t.Fatal("4 samples not full for batch 3")
	}
	if b.Full("x", 0) || b.Full("x", -1) {
		t.Fatal("non-positive batch reported full")
	}
}

func TestSeriesBufferTakePreservesOrderAndRemainder(t *testing.T) {
	b := NewSeriesBuffer()
	for i := 1; i <= 5; i++ {
		b.Append("x", float64(i))
	}

	got := b.Take("x", 3)
	if !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Fatalf("Take returned %v, want oldest [1 2 3]", got)
	}
	if b.Len("x") != 2 {
		t.Fatalf("remainder length %d, want 2", b.Len("x"))
	}

	rest := b.Take("x", 2)
	if !reflect.DeepEqual(rest, []float64{4, 5}) {
		t.Fatalf("second Take returned %v, want [4 5]", rest)
	}
	if b.Len("x") != 0 {
		t.Fatalf("buffer not empty after draining: %d", b.Len("x"))
	}
}

func TestSeriesBufferTakeInsufficient(t *testing.T) {
	b := NewSeriesBuffer()
	b.Append("x", 1)

	if got := b.Take("x", 2); got != nil {
		t.Fatalf("Take beyond length returned %v, want nil", got)
	}
	if got := b.Take("x", 0); got != nil {
		t.Fatalf("Take(0) returned %v, want nil", got)
	}
	if b.Len("x") != 1 {
		t.Fatal("failed Take mutated the buffer")
	}
}

func TestSeriesBufferNamesSorted(t *testing.T) {
	b := NewSeriesBuffer()
	for _, name := range []string{"z", "a", "m"} {
		b.Append(name, 0)
	}

	if got := b.Names(); !reflect.DeepEqual(got, []string{"a", "m", "z"}) {
		t.Fatalf("Names() = %v, want sorted", got)
	}
}

func TestSeriesBufferEntryPersistsAfterTake(t *testing.T) {
	b := NewSeriesBuffer()
	b.Append("x", 1)
	b.Take("x", 1)

	if got := b.Names(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("series entry dropped after Take: %v", got)
	}
}
