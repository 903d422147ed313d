package render

import (
	"testing"

	"github.com/bryanchance/framekit"
	"github.com/pkg/errors"
)

func TestNewFrameRange(t *testing.T) {
	r, err := NewFrameRange(1, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v := len(r); v != 5 {
		t.Fatalf("expected 5 frames; received %d", v)
	}
	for i, f := range r {
		if f != i+1 {
			t.Errorf("expected frame %d; received %d", i+1, f)
		}
	}
}

func TestNewFrameRangeStride(t *testing.T) {
	r, err := NewFrameRange(1, 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{1, 4, 7, 10}
	if v := len(r); v != len(expected) {
		t.Fatalf("expected %d frames; received %d", len(expected), v)
	}
	for i, f := range expected {
		if r[i] != f {
			t.Errorf("expected frame %d; received %d", f, r[i])
		}
	}
}

func TestNewFrameRangeInverted(t *testing.T) {
	if _, err := NewFrameRange(10, 1, 1); errors.Cause(err) != framekit.ErrInvalidFrameRange {
		t.Fatalf("expected ErrInvalidFrameRange; received %v", err)
	}
}

func TestNewFrameRangeBadStride(t *testing.T) {
	if _, err := NewFrameRange(1, 10, 0); errors.Cause(err) != framekit.ErrInvalidFrameRange {
		t.Fatalf("expected ErrInvalidFrameRange; received %v", err)
	}
}

func TestPartitionTwoHosts(t *testing.T) {
	r, err := NewFrameRange(1, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	assignments, err := Partition(r, []string{"localhost", "worker1"})
	if err != nil {
		t.Fatal(err)
	}
	if v := len(assignments); v != 2 {
		t.Fatalf("expected 2 assignments; received %d", v)
	}
	assertFrames(t, assignments[0], "localhost", []int{1, 2, 3, 4, 5})
	assertFrames(t, assignments[1], "worker1", []int{6, 7, 8, 9, 10})
}

func TestPartitionRemainderFrontLoaded(t *testing.T) {
	r, err := NewFrameRange(1, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	assignments, err := Partition(r, []string{"a", "b", "c"})
	if err != nil {
		t.Fatal(err)
	}
	assertFrames(t, assignments[0], "a", []int{1, 2, 3})
	assertFrames(t, assignments[1], "b", []int{4, 5})
	assertFrames(t, assignments[2], "c", []int{6, 7})
}

func TestPartitionSingleHost(t *testing.T) {
	r, err := NewFrameRange(1, 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	assignments, err := Partition(r, []string{"localhost"})
	if err != nil {
		t.Fatal(err)
	}
	if v := len(assignments); v != 1 {
		t.Fatalf("expected 1 assignment; received %d", v)
	}
	if v := len(assignments[0].Frames); v != 20 {
		t.Fatalf("expected 20 frames; received %d", v)
	}
}

func TestPartitionMoreHostsThanFrames(t *testing.T) {
	r, err := NewFrameRange(1, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	assignments, err := Partition(r, []string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatal(err)
	}
	assertFrames(t, assignments[0], "a", []int{1})
	assertFrames(t, assignments[1], "b", []int{2})
	assertFrames(t, assignments[2], "c", []int{})
	assertFrames(t, assignments[3], "d", []int{})
}

func TestPartitionEmptyRange(t *testing.T) {
	assignments, err := Partition(FrameRange{}, []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}
	for _, a := range assignments {
		if v := len(a.Frames); v != 0 {
			t.Errorf("expected empty assignment for %s; received %d frames", a.Host, v)
		}
	}
}

func TestPartitionNoHosts(t *testing.T) {
	r, err := NewFrameRange(1, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Partition(r, nil); errors.Cause(err) != framekit.ErrNoHosts {
		t.Fatalf("expected ErrNoHosts; received %v", err)
	}
}

func TestPartitionCompleteAndBalanced(t *testing.T) {
	for n := 0; n <= 25; n++ {
		var r FrameRange
		if n > 0 {
			var err error
			r, err = NewFrameRange(1, n, 1)
			if err != nil {
				t.Fatal(err)
			}
		} else {
			r = FrameRange{}
		}
		for k := 1; k <= 6; k++ {
			hosts := make([]string, k)
			for i := range hosts {
				hosts[i] = "host"
			}
			assignments, err := Partition(r, hosts)
			if err != nil {
				t.Fatal(err)
			}

			min, max := n, 0
			merged := FrameRange{}
			for _, a := range assignments {
				merged = append(merged, a.Frames...)
				if len(a.Frames) < min {
					min = len(a.Frames)
				}
				if len(a.Frames) > max {
					max = len(a.Frames)
				}
			}
			if len(merged) != len(r) {
				t.Fatalf("n=%d k=%d: expected %d total frames; received %d", n, k, len(r), len(merged))
			}
			for i := range merged {
				if merged[i] != r[i] {
					t.Fatalf("n=%d k=%d: frame order not preserved at index %d", n, k, i)
				}
			}
			if max-min > 1 {
				t.Fatalf("n=%d k=%d: chunk sizes differ by more than one (%d..%d)", n, k, min, max)
			}
		}
	}
}

func assertFrames(t *testing.T, a HostAssignment, host string, frames []int) {
	t.Helper()
	if a.Host != host {
		t.Fatalf("expected host %s; received %s", host, a.Host)
	}
	if len(a.Frames) != len(frames) {
		t.Fatalf("host %s: expected %d frames; received %d", host, len(frames), len(a.Frames))
	}
	for i, f := range frames {
		if a.Frames[i] != f {
			t.Errorf("host %s: expected frame %d at index %d; received %d", host, f, i, a.Frames[i])
		}
	}
}
